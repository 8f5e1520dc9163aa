package terminal

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const bannerWidth = 50

type Opponent string

const (
	OpponentComputer Opponent = "computer"
	OpponentFriend   Opponent = "friend"
)

// Setup - answers given up front. Empty fields are asked for on the terminal.
type Setup struct {
	Opponent   Opponent
	Difficulty entity.Difficulty
	Token      entity.Marker
}

type Session interface {
	Run() error
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

type session struct {
	logger *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	botService botService
	setup      Setup
}

func NewSession(logger *slog.Logger, in io.Reader, out io.Writer, botService botService, setup Setup) Session {
	return &session{
		logger:     logger.With("component", "terminal"),
		in:         bufio.NewScanner(in),
		out:        out,
		botService: botService,
		setup:      setup,
	}
}

// Run - greets, asks for the missing setup, then plays rounds until the player declines a replay.
// Closed input ends the session with io.EOF.
func (that *session) Run() error {
	that.greet()

	if err := that.configure(); err != nil {
		return err
	}

	for {
		if err := that.playRound(); err != nil {
			return err
		}

		again, err := that.ask("Play again? Y/N\n", "Play again? Y/N\n", func(answer string) bool {
			answer = strings.ToUpper(answer)
			return answer == "Y" || answer == "N"
		})
		if err != nil {
			return err
		}

		if strings.EqualFold(again, "N") {
			that.println(banner(" Thanks for playing "))
			return nil
		}
	}
}

func (that *session) greet() {
	that.println(strings.Repeat("*", bannerWidth))
	that.println(banner(" Welcome to Tic-Tac-Toe "))
	that.println(banner("  Use the keypad to play!!  "))
	that.println(strings.Repeat("*", bannerWidth))
}

func (that *session) configure() error {
	if that.setup.Opponent == "" {
		answer, err := that.ask(
			"Play against computer (Select 1)\nPlay against friend   (Select 2)\n",
			"Invalid opponent, pick again!\n",
			func(answer string) bool { return answer == "1" || answer == "2" },
		)
		if err != nil {
			return err
		}

		that.setup.Opponent = OpponentFriend
		if answer == "1" {
			that.setup.Opponent = OpponentComputer
		}
	}

	if that.setup.Opponent == OpponentComputer && that.setup.Difficulty == "" {
		answer, err := that.ask(
			"Choose difficulty:\nEasy (Select 0)\nMedium (Select 1)\nImpossible (Select 2)\n",
			"Choose valid difficulty:\n",
			func(answer string) bool {
				_, err := entity.ParseDifficulty(answer)
				return err == nil
			},
		)
		if err != nil {
			return err
		}

		that.setup.Difficulty, _ = entity.ParseDifficulty(answer)
	}

	if that.setup.Token == "" {
		answer, err := that.ask(
			"Pick a token, X or O (X goes first):\n",
			"Invalid token, pick again!\n",
			func(answer string) bool {
				_, err := entity.ParseMarker(answer)
				return err == nil
			},
		)
		if err != nil {
			return err
		}

		that.setup.Token, _ = entity.ParseMarker(answer)
	}

	that.logger.Debug("session configured",
		"opponent", that.setup.Opponent,
		"difficulty", that.setup.Difficulty,
		"token", that.setup.Token,
	)

	return nil
}

func (that *session) players() []*entity.Player {
	players := []*entity.Player{entity.NewHumanPlayer(that.setup.Token)}

	other := that.setup.Token.Opponent()
	if that.setup.Opponent == OpponentComputer {
		return append(players, entity.NewComputerPlayer(other, that.setup.Difficulty))
	}

	return append(players, entity.NewHumanPlayer(other))
}

func (that *session) playRound() error {
	game := entity.NewGame("")
	game.Players = that.players()

	if err := game.ValidatePlayers(); err != nil {
		return fmt.Errorf("failed to set up game: %w", err)
	}

	that.print(game.Board.String())

	for game.IsOngoing() {
		if err := that.takeTurn(game); err != nil {
			return err
		}

		that.print("\n" + game.Board.String())
	}

	if game.Status == entity.StateWon {
		that.println(banner(fmt.Sprintf(" %s wins! ", game.Winner)))
	} else {
		that.println(banner(" It's a draw "))
	}

	that.logger.Debug("round finished", "status", game.Status, "winner", game.Winner, "board", game.Board.Compact())

	return nil
}

func (that *session) takeTurn(game *entity.Game) error {
	player := game.CurrentPlayer()

	if player.IsBot() {
		if err := that.botService.MakeTurn(game); err != nil {
			that.println("ERROR: Failed to take turn.")
			return fmt.Errorf("failed to take computer turn: %w", err)
		}

		return nil
	}

	answer, err := that.ask(
		fmt.Sprintf("Player %s, choose where to play: ", player.Mark),
		"Not a valid move, try again: ",
		game.Board.IsValidInput,
	)
	if err != nil {
		return err
	}

	cell, err := strconv.Atoi(answer)
	if err != nil {
		return fmt.Errorf("failed to parse move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, player.Mark, cell); err != nil {
		return fmt.Errorf("failed to take turn: %w", err)
	}

	return nil
}

// ask - prints prompt and reads lines until valid accepts one, printing retry after each rejection.
func (that *session) ask(prompt, retry string, valid func(answer string) bool) (string, error) {
	that.print(prompt)

	for {
		answer, err := that.readLine()
		if err != nil {
			return "", err
		}

		if valid(answer) {
			return answer, nil
		}

		that.print(retry)
	}
}

func (that *session) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *session) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *session) println(text string) {
	that.print(text + "\n")
}

// banner - centers text in a line of stars, the extra star going right.
func banner(text string) string {
	pad := bannerWidth - len(text)
	if pad <= 0 {
		return text
	}

	left := pad / 2

	return strings.Repeat("*", left) + text + strings.Repeat("*", pad-left)
}
