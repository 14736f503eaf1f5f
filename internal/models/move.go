package models

import (
	"fmt"
	"strings"
)

const (
	MaxX = 8
	MaxY = 8
)

// Move is a square on the board, the side making it is passed separately.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewMove creates a move from a row and column.
func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

// InBounds checks if the move is on the board.
func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < MaxY && m.Col >= 0 && m.Col < MaxX
}

// Index returns the square index in row-major order (0-63).
func (m Move) Index() int {
	return m.Row*MaxX + m.Col
}

// String returns the field notation of the move, e.g. "d3" for row 2, column 3.
func (m Move) String() string {
	if !m.InBounds() {
		return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// FieldToMove converts a field notation (e.g. "a1", "h8") to a move.
func FieldToMove(field string) (Move, error) {
	if len(field) != 2 {
		return Move{}, fmt.Errorf("%w: invalid field length: %q", ErrIllegalMove, field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Move{}, fmt.Errorf("%w: invalid field: %q", ErrIllegalMove, field)
	}

	return Move{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}
