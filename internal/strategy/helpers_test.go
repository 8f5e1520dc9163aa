package strategy

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustBoard(t *testing.T, text string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(text)
	require.NoError(t, err)

	return board
}
