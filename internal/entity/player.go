package entity

type Controller string

const (
	ControllerHuman    Controller = "human"
	ControllerComputer Controller = "computer"
)

// Player - who controls a marker. Difficulty is only set for computer players.
type Player struct {
	ID         string     `json:"id,omitempty"`
	Controller Controller `json:"controller"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Mark       Marker     `json:"mark"`
}

func NewHumanPlayer(mark Marker) *Player {
	return &Player{
		Controller: ControllerHuman,
		Mark:       mark,
	}
}

func NewComputerPlayer(mark Marker, difficulty Difficulty) *Player {
	return &Player{
		Controller: ControllerComputer,
		Difficulty: difficulty,
		Mark:       mark,
	}
}

func (that *Player) IsBot() bool {
	return that.Controller == ControllerComputer
}
