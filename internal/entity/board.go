package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	FirstCell = 1
	LastCell  = 9
	CellCount = LastCell - FirstCell + 1
)

// Board is the 3x3 grid. Cells are numbered like a numeric keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//
// and cell n is stored at index n-1.
type Board [CellCount]Marker

// At - returns the marker in cell, EmptyCell for cells outside the board.
func (that *Board) At(cell int) Marker {
	if cell < FirstCell || cell > LastCell {
		return EmptyCell
	}

	return that[cell-FirstCell]
}

// IsValidMove - reports whether cell is on the board and empty.
func (that *Board) IsValidMove(cell int) bool {
	if cell < FirstCell || cell > LastCell {
		return false
	}

	return that[cell-FirstCell] == EmptyCell
}

// IsValidInput - same as IsValidMove for raw user input. Anything that is not a plain number is rejected.
func (that *Board) IsValidInput(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}

	cell, err := strconv.Atoi(input)
	if err != nil {
		return false
	}

	return that.IsValidMove(cell)
}

// ApplyMove - places marker into cell. The board is left untouched on error.
func (that *Board) ApplyMove(cell int, marker Marker) error {
	if !marker.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
	}

	if !that.IsValidMove(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidMove, cell)
	}

	that[cell-FirstCell] = marker

	return nil
}

func (that *Board) Reset() {
	*that = Board{}
}

// OccupiedBy - cells held by marker in ascending order.
func (that *Board) OccupiedBy(marker Marker) []int {
	cells := make([]int, 0, CellCount)
	for i, cell := range that {
		if cell == marker {
			cells = append(cells, i+FirstCell)
		}
	}

	return cells
}

func (that *Board) EmptyCells() []int {
	return that.OccupiedBy(EmptyCell)
}

func (that *Board) IsFull() bool {
	return len(that.EmptyCells()) == 0
}

// String - renders the board in keypad layout, empty cells as "_".
func (that *Board) String() string {
	var sb strings.Builder

	for row := LastCell - 2; row >= FirstCell; row -= 3 {
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}

			if marker := that.At(row + col); marker != EmptyCell {
				sb.WriteString(string(marker))
			} else {
				sb.WriteByte('_')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Compact - the board in cell order 1..9, the format ParseBoard reads.
func (that *Board) Compact() string {
	var sb strings.Builder

	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// ParseBoard - reads nine characters in cell order 1..9. X and O are markers in any case,
// '_', '.', '-' and ' ' are empty cells.
func ParseBoard(text string) (Board, error) {
	var board Board

	if len(text) != CellCount {
		return board, fmt.Errorf("%w: board must have %d cells, got %d", apperror.ErrMalformedInput, CellCount, len(text))
	}

	for i, r := range text {
		switch r {
		case 'X', 'x':
			board[i] = PlayerX
		case 'O', 'o':
			board[i] = PlayerO
		case '_', '.', '-', ' ':
			board[i] = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q in cell %d", apperror.ErrMalformedInput, r, i+FirstCell)
		}
	}

	return board, nil
}

// FromCells - builds a board from nine markers in cell order, rejecting anything but X, O and EmptyCell.
func FromCells(cells []Marker) (Board, error) {
	var board Board

	if len(cells) != CellCount {
		return board, fmt.Errorf("%w: board must have %d cells, got %d", apperror.ErrMalformedInput, CellCount, len(cells))
	}

	for i, cell := range cells {
		if cell != EmptyCell && !cell.IsPlayer() {
			return Board{}, fmt.Errorf("%w: unexpected %q in cell %d", apperror.ErrMalformedInput, cell, i+FirstCell)
		}
		board[i] = cell
	}

	return board, nil
}
