package models

import "fmt"

// Color is the state of a square, or the side to move.
type Color int8

const (
	BLACK Color = -1
	WHITE Color = 1
	EMPTY Color = 0
	TIE         = EMPTY
)

// Opponent returns the other side. EMPTY stays EMPTY.
func (c Color) Opponent() Color {
	return -c
}

// IsSide returns whether c is BLACK or WHITE.
func (c Color) IsSide() bool {
	return c == BLACK || c == WHITE
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case BLACK:
		return "black"
	case WHITE:
		return "white"
	case EMPTY:
		return "empty"
	default:
		return fmt.Sprintf("Color(%d)", int8(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if c != BLACK && c != WHITE && c != EMPTY {
		return nil, fmt.Errorf("%w: invalid color %d", ErrInvalidBoard, int8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts "black", "white", "empty" and "tie".
func (c *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = color
	return nil
}

// ParseColor parses a color name.
func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "b":
		return BLACK, nil
	case "white", "w":
		return WHITE, nil
	case "empty", "tie", "":
		return EMPTY, nil
	default:
		return EMPTY, fmt.Errorf("unknown color: %q", s)
	}
}

// ParseSide parses a color name that must be BLACK or WHITE.
func ParseSide(s string) (Color, error) {
	color, err := ParseColor(s)
	if err != nil {
		return EMPTY, err
	}
	if !color.IsSide() {
		return EMPTY, fmt.Errorf("%w: got %q", ErrInvalidSide, s)
	}
	return color, nil
}
