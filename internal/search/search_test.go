package search

import (
	"math"
	"testing"

	"github.com/lk16/reversi/internal/models"
	"github.com/stretchr/testify/require"
)

// midgame is reached by 20 random plies from the start position, black to move.
var midgame = models.NewBoardMust(
	".B...BB.",
	".B.W.BB.",
	".BWW.WB.",
	"..WBWBB.",
	"..WWWWW.",
	".....WB.",
	"........",
	"........",
)

func afterD3() models.Board {
	return models.NewBoardStart().DoMove(models.BLACK, models.NewMove(2, 3))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board models.Board
		want  float64
	}{
		{"start", models.NewBoardStart(), 0},
		{"after d3", afterD3(), -3},
		{"midgame", midgame, -6},
		{"empty", models.NewBoardEmpty(), 0},
		{
			name: "corner and edges",
			board: models.NewBoardMust(
				"W.W.....",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
			),
			// 2 discs + 20 corner + 2 edge, no moves for anyone
			want: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, Evaluate(tt.board), 1e-9)
		})
	}
}

func TestEvaluate_MobilityIsFractional(t *testing.T) {
	board := models.NewBoardMust(
		"........",
		"........",
		"........",
		"...BW...",
		"........",
		"........",
		"........",
		"........",
	)

	require.Equal(t, 1, board.MoveCount(models.BLACK))
	require.Equal(t, 1, board.MoveCount(models.WHITE))

	board = board.DoMove(models.BLACK, models.NewMove(3, 5))
	// black: 3 discs, no moves. white: 0 discs, no moves.
	require.InDelta(t, -3.0, Evaluate(board), 1e-9)

	mixed := models.NewBoardMust(
		"...BW...",
		"...W....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	// white: 2 discs + 2 edge bonus + 1 move, black: 1 disc + 2 edge bonus + 2 moves
	require.Equal(t, 2, mixed.MoveCount(models.BLACK))
	require.Equal(t, 1, mixed.MoveCount(models.WHITE))
	require.InDelta(t, -0.5, Evaluate(mixed), 1e-9)
}

func TestEvaluate_Antisymmetric(t *testing.T) {
	boards := []models.Board{models.NewBoardStart(), afterD3(), midgame}

	board := models.NewBoardStart()
	side := models.BLACK
	for range 30 {
		move, ok := BestMove(board, side, 1)
		if !ok {
			break
		}
		board = board.DoMove(side, move)
		boards = append(boards, board)
		side, _ = models.NextTurn(board, side)
	}

	for _, board := range boards {
		require.Equal(t, -Evaluate(board), Evaluate(board.Swapped()), "board %s", board)
	}
}

func TestMinimax_DepthZeroIsEvaluate(t *testing.T) {
	for _, board := range []models.Board{models.NewBoardStart(), afterD3(), midgame} {
		for _, maximizing := range []bool{true, false} {
			got := NewBot().Minimax(board, 0, math.Inf(-1), math.Inf(1), maximizing)
			require.Equal(t, Evaluate(board), got)
		}
	}
}

func TestMinimax_TerminalIsEvaluate(t *testing.T) {
	board := models.NewBoardMust(
		"B......W",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	got := NewBot().Minimax(board, 4, math.Inf(-1), math.Inf(1), true)
	require.Equal(t, Evaluate(board), got)
}

func TestMinimax_PassUsesPly(t *testing.T) {
	// White cannot move, black can only play c1.
	board := models.NewBoardMust(
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	tests := []struct {
		name  string
		depth int
		want  float64
	}{
		{"pass ends search", 1, Evaluate(board)},
		{"black replies after pass", 2, Evaluate(board.DoMove(models.BLACK, models.NewMove(0, 2)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBot().Minimax(board, tt.depth, math.Inf(-1), math.Inf(1), true)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name      string
		board     models.Board
		side      models.Color
		depth     int
		wantMove  models.Move
		wantScore float64
	}{
		{"white after d3 depth 1", afterD3(), models.WHITE, 1, models.NewMove(4, 2), -7.5},
		{"white after d3 depth 2", afterD3(), models.WHITE, 2, models.NewMove(4, 2), 1.5},
		{"white after d3 depth 3", afterD3(), models.WHITE, 3, models.NewMove(4, 2), -5.5},
		{"white after d3 depth 4", afterD3(), models.WHITE, 4, models.NewMove(2, 2), 2},
		{"black start depth 1", models.NewBoardStart(), models.BLACK, 1, models.NewMove(2, 3), 1.5},
		{"black start depth 2", models.NewBoardStart(), models.BLACK, 2, models.NewMove(2, 3), -7.5},
		{"black start depth 3", models.NewBoardStart(), models.BLACK, 3, models.NewMove(2, 3), 1.5},
		{"white midgame depth 2", midgame, models.WHITE, 2, models.NewMove(0, 0), 28.5},
		{"black midgame depth 2", midgame, models.BLACK, 2, models.NewMove(5, 4), -7.5},
		{"white midgame depth 3", midgame, models.WHITE, 3, models.NewMove(0, 7), 17},
		{"black midgame depth 3", midgame, models.BLACK, 3, models.NewMove(5, 4), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewBot().Search(tt.board, tt.side, tt.depth)
			require.True(t, result.HasMove)
			require.Equal(t, tt.wantMove, result.Move)
			require.InDelta(t, tt.wantScore, result.Score, 1e-9)
			require.Positive(t, result.Nodes)

			parallel := SearchParallel(tt.board, tt.side, tt.depth)
			require.Equal(t, result.Move, parallel.Move)
			require.Equal(t, result.Score, parallel.Score) //nolint:testifylint

			move, ok := BestMove(tt.board, tt.side, tt.depth)
			require.True(t, ok)
			require.Equal(t, tt.wantMove, move)
		})
	}
}

func TestSearch_NoMoves(t *testing.T) {
	board := models.NewBoardMust(
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	_, ok := BestMove(board, models.WHITE, 3)
	require.False(t, ok)

	result := SearchParallel(board, models.WHITE, 3)
	require.False(t, result.HasMove)

	move, ok := BestMove(board, models.BLACK, 3)
	require.True(t, ok)
	require.Equal(t, models.NewMove(0, 2), move)
}

func TestBot_SearchTwice(t *testing.T) {
	bot := NewBot()

	first := bot.Search(afterD3(), models.WHITE, 2)
	second := bot.Search(afterD3(), models.WHITE, 2)

	require.Equal(t, first, second)
	require.Equal(t, second.Nodes, bot.Nodes())
}

func TestSearch_DoesNotModifyBoard(t *testing.T) {
	board := midgame
	_ = NewBot().Search(board, models.WHITE, 3)
	_ = SearchParallel(board, models.BLACK, 3)
	require.Equal(t, midgame, board)
}

func TestSearch_ReturnsLegalMoves(t *testing.T) {
	game := models.NewGame()

	for !game.IsOver() {
		move, ok := BestMove(game.Board(), game.Turn(), 2)
		require.True(t, ok)
		require.True(t, game.Board().IsLegal(game.Turn(), move))
		require.NoError(t, game.PushMove(move))
	}

	require.True(t, game.Board().IsTerminal())
}
