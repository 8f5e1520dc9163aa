package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/transport/terminal"
)

func newPlayCmd(e *env) *cobra.Command {
	var (
		opponent   string
		difficulty string
		token      string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal against the computer or a friend",
		Long: `Play in the terminal. Setup that is not given by flags is asked for.
Cells are chosen with the numeric keypad layout.`,
		Example: `  tictactoe play
  tictactoe play --opponent computer --difficulty perfect --token O`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setup, err := e.setup(opponent, difficulty, token)
			if err != nil {
				return err
			}

			botService := service.NewBotService(application.NewMoveSelector(e.logger, e.conf))
			session := terminal.NewSession(e.logger, cmd.InOrStdin(), cmd.OutOrStdout(), botService, setup)

			if err = session.Run(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("game session failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opponent, "opponent", "", "computer or friend (asked when empty)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "random, mixed or perfect (asked when empty)")
	cmd.Flags().StringVarP(&token, "token", "t", "", "Your marker, X or O (asked when empty)")

	return cmd
}

func (that *env) setup(opponent, difficulty, token string) (terminal.Setup, error) {
	var setup terminal.Setup

	switch terminal.Opponent(opponent) {
	case "", terminal.OpponentComputer, terminal.OpponentFriend:
		setup.Opponent = terminal.Opponent(opponent)
	default:
		return setup, fmt.Errorf("unknown opponent %q", opponent)
	}

	if difficulty != "" {
		level, err := entity.ParseDifficulty(difficulty)
		if err != nil {
			return setup, fmt.Errorf("failed to parse difficulty: %w", err)
		}

		setup.Difficulty = level
	}

	if token != "" {
		mark, err := entity.ParseMarker(token)
		if err != nil {
			return setup, fmt.Errorf("failed to parse token: %w", err)
		}

		setup.Token = mark
	}

	return setup, nil
}
