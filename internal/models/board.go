package models

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	BoardStringLength = 32
	BoardBytesLength  = 16
)

// directions are the 8 unit vectors as {dRow, dCol}.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 grid of squares. It is a value: assigning or passing a Board copies it.
type Board struct {
	squares [MaxY][MaxX]Color
}

// NewBoardStart creates a board with the starting position.
func NewBoardStart() Board {
	var b Board
	midY, midX := MaxY/2, MaxX/2
	b.squares[midY-1][midX-1] = WHITE
	b.squares[midY][midX] = WHITE
	b.squares[midY-1][midX] = BLACK
	b.squares[midY][midX-1] = BLACK
	return b
}

// NewBoardEmpty creates a board without discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromSquares creates a board from a grid of colors.
// The grid must have exactly 8 rows of 8 squares, each BLACK, WHITE or EMPTY.
func NewBoardFromSquares(squares [][]Color) (Board, error) {
	if len(squares) != MaxY {
		return Board{}, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, MaxY, len(squares))
	}

	var b Board
	for y, row := range squares {
		if len(row) != MaxX {
			return Board{}, fmt.Errorf("%w: row %d has %d squares, expected %d", ErrInvalidBoard, y, len(row), MaxX)
		}

		for x, color := range row {
			if color != BLACK && color != WHITE && color != EMPTY {
				return Board{}, fmt.Errorf("%w: invalid color %d at row %d col %d", ErrInvalidBoard, int8(color), y, x)
			}
			b.squares[y][x] = color
		}
	}

	return b, nil
}

// NewBoardFromRows creates a board from 8 strings of 8 characters.
// 'B'/'X'/'●' are black discs, 'W'/'O'/'○' are white discs, '.' and '-' are empty squares.
func NewBoardFromRows(rows ...string) (Board, error) {
	squares := make([][]Color, len(rows))

	for y, row := range rows {
		squares[y] = make([]Color, 0, MaxX)
		for _, r := range row {
			switch r {
			case 'B', 'b', 'X', 'x', '●':
				squares[y] = append(squares[y], BLACK)
			case 'W', 'w', 'O', 'o', '○':
				squares[y] = append(squares[y], WHITE)
			case '.', '-':
				squares[y] = append(squares[y], EMPTY)
			case ' ':
				continue
			default:
				return Board{}, fmt.Errorf("%w: unexpected character %q in row %d", ErrInvalidBoard, r, y)
			}
		}
	}

	return NewBoardFromSquares(squares)
}

// NewBoardFromBitboards creates a board from a black and a white bitboard.
// Bit index is row*8+col.
func NewBoardFromBitboards(black, white uint64) (Board, error) {
	if black&white != 0 {
		return Board{}, fmt.Errorf("%w: black and white discs cannot overlap", ErrInvalidBoard)
	}

	var b Board
	for index := range MaxX * MaxY {
		mask := uint64(1) << index
		switch {
		case black&mask != 0:
			b.squares[index/MaxX][index%MaxX] = BLACK
		case white&mask != 0:
			b.squares[index/MaxX][index%MaxX] = WHITE
		}
	}

	return b, nil
}

// NewBoardFromString creates a board from its string representation, see String.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != BoardStringLength {
		return Board{}, fmt.Errorf("%w: board string must be %d characters long, got %d", ErrInvalidBoard, BoardStringLength, len(s))
	}

	black, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("%w: invalid black discs: %w", ErrInvalidBoard, err)
	}

	white, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("%w: invalid white discs: %w", ErrInvalidBoard, err)
	}

	return NewBoardFromBitboards(black, white)
}

// NewBoardFromBytes creates a board from its byte representation, see Bytes.
func NewBoardFromBytes(b []byte) (Board, error) {
	if len(b) != BoardBytesLength {
		return Board{}, fmt.Errorf("%w: board bytes must be exactly %d bytes, got %d", ErrInvalidBoard, BoardBytesLength, len(b))
	}

	black := binary.LittleEndian.Uint64(b[:8])
	white := binary.LittleEndian.Uint64(b[8:])

	return NewBoardFromBitboards(black, white)
}

// NewBoardMust works like NewBoardFromRows but panics on invalid input.
func NewBoardMust(rows ...string) Board {
	b, err := NewBoardFromRows(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Get returns the color of a square. Squares outside the board are EMPTY.
func (b Board) Get(row, col int) Color {
	if !NewMove(row, col).InBounds() {
		return EMPTY
	}
	return b.squares[row][col]
}

// Bitboards returns the black and white discs as bitboards.
func (b Board) Bitboards() (uint64, uint64) {
	var black, white uint64
	for y := range MaxY {
		for x := range MaxX {
			mask := uint64(1) << (y*MaxX + x)
			switch b.squares[y][x] {
			case BLACK:
				black |= mask
			case WHITE:
				white |= mask
			}
		}
	}
	return black, white
}

// Count returns the number of discs of a color.
func (b Board) Count(color Color) int {
	black, white := b.Bitboards()
	switch color {
	case BLACK:
		return bits.OnesCount64(black)
	case WHITE:
		return bits.OnesCount64(white)
	default:
		return MaxX*MaxY - bits.OnesCount64(black|white)
	}
}

// CountDiscs returns the number of discs on the board.
func (b Board) CountDiscs() int {
	return MaxX*MaxY - b.Count(EMPTY)
}

// Swapped returns the board with all black and white discs exchanged.
func (b Board) Swapped() Board {
	for y := range MaxY {
		for x := range MaxX {
			b.squares[y][x] = b.squares[y][x].Opponent()
		}
	}
	return b
}

// flanked returns the number of opponent discs between move and the first disc of side in direction
// (dy, dx). It returns 0 if that run ends on an empty square or the edge of the board.
func (b *Board) flanked(side Color, move Move, dy, dx int) int {
	opponent := side.Opponent()
	y, x := move.Row+dy, move.Col+dx
	run := 0

	for y >= 0 && y < MaxY && x >= 0 && x < MaxX {
		switch b.squares[y][x] {
		case opponent:
			run++
		case side:
			return run
		default:
			return 0
		}
		y += dy
		x += dx
	}

	return 0
}

// IsLegal checks if side can play move.
func (b Board) IsLegal(side Color, move Move) bool {
	if !side.IsSide() || !move.InBounds() || b.squares[move.Row][move.Col] != EMPTY {
		return false
	}

	for _, dir := range directions {
		if b.flanked(side, move, dir[0], dir[1]) > 0 {
			return true
		}
	}

	return false
}

// LegalMoves returns all legal moves of side in row-major order.
func (b Board) LegalMoves(side Color) []Move {
	moves := make([]Move, 0, 16)

	for y := range MaxY {
		for x := range MaxX {
			move := NewMove(y, x)
			if b.IsLegal(side, move) {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// MoveCount returns the number of legal moves of side.
func (b Board) MoveCount(side Color) int {
	count := 0
	for y := range MaxY {
		for x := range MaxX {
			if b.IsLegal(side, NewMove(y, x)) {
				count++
			}
		}
	}
	return count
}

// HasAnyLegalMove returns whether side has at least one legal move.
func (b Board) HasAnyLegalMove(side Color) bool {
	for y := range MaxY {
		for x := range MaxX {
			if b.IsLegal(side, NewMove(y, x)) {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns whether neither side has a legal move.
func (b Board) IsTerminal() bool {
	return !b.HasAnyLegalMove(BLACK) && !b.HasAnyLegalMove(WHITE)
}

// DoMove places a disc of side on move and flips all flanked opponent discs.
// It does not check legality, use ApplyMove for that.
func (b Board) DoMove(side Color, move Move) Board {
	b.squares[move.Row][move.Col] = side

	for _, dir := range directions {
		dy, dx := dir[0], dir[1]
		run := b.flanked(side, move, dy, dx)

		for dist := 1; dist <= run; dist++ {
			b.squares[move.Row+dist*dy][move.Col+dist*dx] = side
		}
	}

	return b
}

// ApplyMove checks move and returns the board after side played it.
func (b Board) ApplyMove(side Color, move Move) (Board, error) {
	if !side.IsSide() {
		return b, fmt.Errorf("%w: %s is not a side", ErrIllegalMove, side)
	}

	if !move.InBounds() {
		return b, fmt.Errorf("%w: %s is out of bounds", ErrIllegalMove, move)
	}

	if b.squares[move.Row][move.Col] != EMPTY {
		return b, fmt.Errorf("%w: %s is occupied", ErrIllegalMove, move)
	}

	if !b.IsLegal(side, move) {
		return b, fmt.Errorf("%w: %s flips nothing for %s", ErrIllegalMove, move, side)
	}

	return b.DoMove(side, move), nil
}

// Winner compares disc counts. It returns TIE for equal counts.
func (b Board) Winner() Color {
	black := b.Count(BLACK)
	white := b.Count(WHITE)

	switch {
	case black > white:
		return BLACK
	case white > black:
		return WHITE
	default:
		return TIE
	}
}

// String returns the board as 32 hex characters: the black bitboard followed by the white bitboard.
func (b Board) String() string {
	black, white := b.Bitboards()
	return fmt.Sprintf("%016x%016x", black, white)
}

// Bytes returns the black and white bitboards as 16 little endian bytes.
func (b Board) Bytes() []byte {
	black, white := b.Bitboards()
	buf := make([]byte, BoardBytesLength)
	binary.LittleEndian.PutUint64(buf[:8], black)
	binary.LittleEndian.PutUint64(buf[8:], white)
	return buf
}

// MarshalText implements encoding.TextMarshaler.
func (b Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Board) UnmarshalText(text []byte) error {
	board, err := NewBoardFromString(string(text))
	if err != nil {
		return err
	}
	*b = board
	return nil
}

// ASCIIArtLines returns the ascii art lines for the board. Legal moves of turn are marked with a dot.
func (b Board) ASCIIArtLines(turn Color) []string {
	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := range MaxY {
		line := fmt.Sprintf("%d ", y+1)

		for x := range MaxX {
			switch {
			case b.squares[y][x] == WHITE:
				line += "○ "
			case b.squares[y][x] == BLACK:
				line += "● "
			case b.IsLegal(turn, NewMove(y, x)):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}

// ASCIIArt returns ASCIIArtLines joined by newlines.
func (b Board) ASCIIArt(turn Color) string {
	return strings.Join(b.ASCIIArtLines(turn), "\n")
}
