package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// env - what every command gets once the persistent flags are parsed.
type env struct {
	configPath string
	logLevel   string
	output     string

	conf   *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe with a rule based computer player",
		Long: `tictactoe plays tic-tac-toe on the numeric keypad layout:

  7 8 9
  4 5 6
  1 2 3

Play in the terminal, ask the engine for a single move, or serve games over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&e.configPath, "config", "config.yml", "Path to the yaml config, environment and defaults are used when missing")
	rootCmd.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the config)")
	rootCmd.PersistentFlags().StringVarP(&e.output, "output", "o", outputText, "Output format: text, json")

	rootCmd.AddCommand(newPlayCmd(e))
	rootCmd.AddCommand(newMoveCmd(e))
	rootCmd.AddCommand(newStatusCmd(e))
	rootCmd.AddCommand(newServeCmd(e))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (that *env) init(logOut io.Writer) error {
	if that.output != outputText && that.output != outputJSON {
		return fmt.Errorf("unknown output format %q", that.output)
	}

	conf, err := config.Load(that.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if that.logLevel != "" {
		conf.LogLevel = that.logLevel
	}

	that.conf = conf
	that.logger = newLogger(logOut, conf.LogLevel)

	return nil
}

// newLogger - JSON logs at level, info for anything unknown.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level

	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
