package models

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomBoards plays random games from the start position and collects every board seen.
func randomBoards(t *testing.T, games int) []Board {
	t.Helper()

	rng := rand.New(rand.NewPCG(16, 64)) //nolint:gosec
	boards := make([]Board, 0, games*60)

	for range games {
		game := NewGame()
		boards = append(boards, game.Board())

		for !game.IsOver() {
			moves := game.LegalMoves()
			if len(moves) == 0 {
				require.NoError(t, game.Pass())
				continue
			}

			move := moves[rng.IntN(len(moves))]
			require.NoError(t, game.PushMove(move))
			boards = append(boards, game.Board())
		}
	}

	return boards
}

func TestNewBoardStart(t *testing.T) {
	board := NewBoardStart()

	require.Equal(t, 2, board.Count(BLACK))
	require.Equal(t, 2, board.Count(WHITE))
	require.Equal(t, 4, board.CountDiscs())

	require.Equal(t, WHITE, board.Get(3, 3))
	require.Equal(t, BLACK, board.Get(3, 4))
	require.Equal(t, BLACK, board.Get(4, 3))
	require.Equal(t, WHITE, board.Get(4, 4))

	require.Len(t, board.LegalMoves(BLACK), 4)
}

func TestBoard_LegalMovesStart(t *testing.T) {
	board := NewBoardStart()

	want := []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}
	require.Equal(t, want, board.LegalMoves(BLACK))

	wantWhite := []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}
	require.Equal(t, wantWhite, board.LegalMoves(WHITE))
}

func TestBoard_ApplyMoveStart(t *testing.T) {
	board := NewBoardStart()

	after, err := board.ApplyMove(BLACK, NewMove(2, 3))
	require.NoError(t, err)

	require.Equal(t, BLACK, after.Get(2, 3))
	require.Equal(t, BLACK, after.Get(3, 3))
	require.Equal(t, 4, after.Count(BLACK))
	require.Equal(t, 1, after.Count(WHITE))

	// The input board is untouched
	require.Equal(t, NewBoardStart(), board)
}

func TestBoard_ApplyMoveIllegal(t *testing.T) {
	board := NewBoardStart()

	tests := []struct {
		name string
		side Color
		move Move
	}{
		{"occupied", BLACK, NewMove(3, 3)},
		{"flips nothing", BLACK, NewMove(0, 0)},
		{"out of bounds row", BLACK, NewMove(8, 0)},
		{"out of bounds col", WHITE, NewMove(0, -1)},
		{"wrong side square", WHITE, NewMove(2, 3)},
		{"empty side", EMPTY, NewMove(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after, err := board.ApplyMove(tt.side, tt.move)
			require.ErrorIs(t, err, ErrIllegalMove)
			require.Equal(t, board, after)
		})
	}
}

func TestBoard_IsLegalAgreesWithLegalMoves(t *testing.T) {
	for _, board := range randomBoards(t, 20) {
		for _, side := range []Color{BLACK, WHITE} {
			legal := make(map[Move]bool)
			for _, move := range board.LegalMoves(side) {
				legal[move] = true
			}

			for y := range MaxY {
				for x := range MaxX {
					move := NewMove(y, x)
					require.Equal(t, legal[move], board.IsLegal(side, move), "board %s side %s move %s", board, side, move)
				}
			}

			require.Equal(t, len(legal) > 0, board.HasAnyLegalMove(side))
		}
	}
}

func TestBoard_ApplyMoveFlipsAllFlankedRuns(t *testing.T) {
	for _, board := range randomBoards(t, 10) {
		for _, side := range []Color{BLACK, WHITE} {
			for _, move := range board.LegalMoves(side) {
				after, err := board.ApplyMove(side, move)
				require.NoError(t, err)

				// Disc count grows by exactly the placed disc
				require.Equal(t, board.CountDiscs()+1, after.CountDiscs())
				require.Greater(t, after.Count(side), board.Count(side)+1)

				for _, dir := range directions {
					run := board.flanked(side, move, dir[0], dir[1])
					for dist := 1; dist <= run; dist++ {
						require.Equal(t, side, after.Get(move.Row+dist*dir[0], move.Col+dist*dir[1]))
					}
				}
			}
		}
	}
}

func TestBoard_DoMoveIsolatesCopies(t *testing.T) {
	board := NewBoardStart()

	first := board.DoMove(BLACK, NewMove(2, 3))
	second := board.DoMove(BLACK, NewMove(5, 4))

	require.Equal(t, NewBoardStart(), board)
	require.NotEqual(t, first, second)
	require.Equal(t, EMPTY, first.Get(5, 4))
	require.Equal(t, EMPTY, second.Get(2, 3))
}

func TestBoard_WhiteCannotMove(t *testing.T) {
	board := NewBoardMust(
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	require.False(t, board.HasAnyLegalMove(WHITE))
	require.True(t, board.HasAnyLegalMove(BLACK))
	require.False(t, board.IsTerminal())

	turn, over := NextTurn(board, BLACK)
	require.False(t, over)
	require.Equal(t, BLACK, turn)
}

func TestBoard_Winner(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Color
	}{
		{
			name: "full board black wins",
			rows: []string{
				"BBBBBBBB",
				"BBBBBBBB",
				"BBBBBBBB",
				"BBBBBBBB",
				"BWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
			},
			want: BLACK,
		},
		{
			name: "isolated white remnants",
			rows: []string{
				"W.......",
				"........",
				"...W....",
				"........",
				"........",
				"........",
				"........",
				".......W",
			},
			want: WHITE,
		},
		{
			name: "tie",
			rows: []string{
				"B......W",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
			},
			want: TIE,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoardMust(tt.rows...)
			require.True(t, board.IsTerminal())
			require.Equal(t, tt.want, board.Winner())
		})
	}
}

func TestNewBoardFromSquares(t *testing.T) {
	valid := make([][]Color, MaxY)
	for y := range valid {
		valid[y] = make([]Color, MaxX)
	}
	valid[0][0] = BLACK

	board, err := NewBoardFromSquares(valid)
	require.NoError(t, err)
	require.Equal(t, BLACK, board.Get(0, 0))

	tests := []struct {
		name    string
		squares [][]Color
	}{
		{"too few rows", valid[:7]},
		{"short row", append(append([][]Color{}, valid[:7]...), make([]Color, 7))},
		{"invalid color", append(append([][]Color{}, valid[:7]...), []Color{0, 0, 0, 3, 0, 0, 0, 0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromSquares(tt.squares)
			require.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestNewBoardFromString(t *testing.T) {
	start := NewBoardStart()
	require.Equal(t, "00000008100000000000001008000000", start.String())

	board, err := NewBoardFromString(start.String())
	require.NoError(t, err)
	require.Equal(t, start, board)

	tests := []struct {
		name  string
		input string
	}{
		{"too short", "0000"},
		{"not hex", "zz000008100000000000001008000000"},
		{"overlap", "00000000000000010000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromString(tt.input)
			require.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestNewBoardFromBytes(t *testing.T) {
	board := NewBoardStart().DoMove(BLACK, NewMove(2, 3))

	got, err := NewBoardFromBytes(board.Bytes())
	require.NoError(t, err)
	require.Equal(t, board, got)

	_, err = NewBoardFromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidBoard)
}

func TestBoard_TextRoundTrip(t *testing.T) {
	var board Board
	require.NoError(t, board.UnmarshalText([]byte(NewBoardStart().String())))
	require.Equal(t, NewBoardStart(), board)

	err := board.UnmarshalText([]byte("nope"))
	require.True(t, errors.Is(err, ErrInvalidBoard))
}

func TestBoard_Swapped(t *testing.T) {
	board := NewBoardStart().DoMove(BLACK, NewMove(2, 3))
	swapped := board.Swapped()

	require.Equal(t, board.Count(BLACK), swapped.Count(WHITE))
	require.Equal(t, board.Count(WHITE), swapped.Count(BLACK))
	require.Equal(t, board, swapped.Swapped())
}

func TestBoard_ASCIIArtLines(t *testing.T) {
	lines := NewBoardStart().ASCIIArtLines(BLACK)

	require.Len(t, lines, 10)
	require.Equal(t, "+-a-b-c-d-e-f-g-h-+", lines[0])
	require.Equal(t, "3       ·         |", lines[3])
	require.Equal(t, "4     · ○ ●       |", lines[4])
	require.Equal(t, "+-----------------+", lines[9])
}

func TestColor_Opponent(t *testing.T) {
	require.Equal(t, WHITE, BLACK.Opponent())
	require.Equal(t, BLACK, WHITE.Opponent())
	require.Equal(t, EMPTY, EMPTY.Opponent())
}
