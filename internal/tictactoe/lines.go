package tictactoe

// Line is three cells of the board in keypad numbering.
type Line [3]int

// Contains - reports whether both cells are part of the line.
func (that Line) Contains(a, b int) bool {
	return that.has(a) && that.has(b) && a != b
}

// Remaining - the cell of the line that is neither a nor b. Only meaningful when Contains(a, b).
func (that Line) Remaining(a, b int) int {
	for _, cell := range that {
		if cell != a && cell != b {
			return cell
		}
	}

	return 0
}

func (that Line) has(cell int) bool {
	return that[0] == cell || that[1] == cell || that[2] == cell
}

const CenterCell = 5

// The order of the tables below decides ties, keep it stable.
var (
	WinningLines = [8]Line{
		{7, 8, 9},
		{4, 5, 6},
		{1, 2, 3},
		{7, 4, 1},
		{8, 5, 2},
		{9, 6, 3},
		{1, 5, 9},
		{7, 5, 3},
	}

	// ForkLines - two of these cells held with the third free threatens two lines at once.
	ForkLines = [8]Line{
		{7, 5, 9},
		{9, 5, 3},
		{3, 5, 1},
		{1, 5, 7},
		{1, 7, 9},
		{7, 9, 3},
		{9, 3, 1},
		{3, 1, 7},
	}

	CornerPairs = [2][2]int{
		{1, 9},
		{3, 7},
	}

	Corners = [4]int{1, 9, 3, 7}
	Sides   = [4]int{2, 4, 6, 8}
)

// OppositeCorner - the other corner of the pair holding cell, 0 if cell is not a corner.
func OppositeCorner(cell int) int {
	for _, pair := range CornerPairs {
		switch cell {
		case pair[0]:
			return pair[1]
		case pair[1]:
			return pair[0]
		}
	}

	return 0
}
