package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func newMoveCmd(e *env) *cobra.Command {
	var (
		board      string
		mark       string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Print the computer's move for a board",
		Example: `  tictactoe move --board "X___O____" --mark X
  tictactoe move --board "OO_XX____" --mark O --difficulty mixed -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedBoard, err := entity.ParseBoard(board)
			if err != nil {
				return fmt.Errorf("failed to parse board: %w", err)
			}

			own, err := entity.ParseMarker(mark)
			if err != nil {
				return fmt.Errorf("failed to parse mark: %w", err)
			}

			level, err := e.difficulty(difficulty)
			if err != nil {
				return err
			}

			if status := tictactoe.BoardStatus(parsedBoard); status.IsTerminal() {
				return fmt.Errorf("%w: board is %s", apperror.ErrGameFinished, status)
			}

			selector := application.NewMoveSelector(e.logger, e.conf)

			cell, err := selector.SelectMove(parsedBoard, own, own.Opponent(), level)
			if err != nil {
				return fmt.Errorf("failed to select move: %w", err)
			}

			return e.print(cmd.OutOrStdout(), strconv.Itoa(cell), map[string]int{"cell": cell})
		},
	}

	cmd.Flags().StringVarP(&board, "board", "b", "", "Nine cells in order 1..9: X, O, or _ . - for empty")
	cmd.Flags().StringVarP(&mark, "mark", "m", "", "Marker to move for: X or O")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "random, mixed or perfect (default from config)")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("mark")

	return cmd
}

func newStatusCmd(e *env) *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Print whether a board is won, drawn or still in progress",
		Example: `  tictactoe status --board "XOXOXOOXO"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedBoard, err := entity.ParseBoard(board)
			if err != nil {
				return fmt.Errorf("failed to parse board: %w", err)
			}

			status := tictactoe.BoardStatus(parsedBoard)

			return e.print(cmd.OutOrStdout(), status.String(), status)
		},
	}

	cmd.Flags().StringVarP(&board, "board", "b", "", "Nine cells in order 1..9: X, O, or _ . - for empty")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

// difficulty - value, or the configured default when value is empty.
func (that *env) difficulty(value string) (entity.Difficulty, error) {
	if value == "" {
		value = that.conf.Engine.Difficulty
	}

	difficulty, err := entity.ParseDifficulty(value)
	if err != nil {
		return "", fmt.Errorf("failed to parse difficulty: %w", err)
	}

	return difficulty, nil
}
