package search

import (
	"log/slog"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/lk16/reversi/internal/models"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a search from the root.
type Result struct {
	// Move is the best move, only valid if HasMove is set
	Move models.Move

	// HasMove is false if the side to move has no legal move and must pass
	HasMove bool

	// Score is the minimax score of Move, positive favors white
	Score float64

	// Nodes is the number of visited nodes
	Nodes uint64
}

// Bot searches othello game trees with minimax and alpha-beta pruning.
// White is always the maximizing side and black always the minimizing side.
type Bot struct {
	startTime time.Time
	nodes     atomic.Uint64
}

// NewBot creates a new bot.
func NewBot() *Bot {
	return &Bot{
		startTime: time.Now(),
	}
}

// Nodes returns the number of nodes visited so far.
func (b *Bot) Nodes() uint64 {
	return b.nodes.Load()
}

// Minimax returns the score of board searched depth plies deep.
// If maximizing is set white is to move, otherwise black.
func (b *Bot) Minimax(board models.Board, depth int, alpha, beta float64, maximizing bool) float64 {
	b.nodes.Add(1)

	if depth <= 0 {
		return Evaluate(board)
	}

	mover := models.BLACK
	if maximizing {
		mover = models.WHITE
	}

	moves := board.LegalMoves(mover)

	if len(moves) == 0 {
		if !board.HasAnyLegalMove(mover.Opponent()) {
			return Evaluate(board)
		}

		// Passing uses up a ply.
		return b.Minimax(board, depth-1, alpha, beta, !maximizing)
	}

	if maximizing {
		maxEval := math.Inf(-1)
		for _, move := range moves {
			eval := b.Minimax(board.DoMove(mover, move), depth-1, alpha, beta, false)
			maxEval = math.Max(maxEval, eval)
			alpha = math.Max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := math.Inf(1)
	for _, move := range moves {
		eval := b.Minimax(board.DoMove(mover, move), depth-1, alpha, beta, true)
		minEval = math.Min(minEval, eval)
		beta = math.Min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	return minEval
}

// isBetter returns whether score improves on best for side.
// Scores are seen from white, so black prefers lower scores.
func isBetter(side models.Color, score, best float64) bool {
	if side == models.WHITE {
		return score > best
	}
	return score < best
}

// Search finds the best move for side. Node count and timing start over on every call.
// Every candidate move is played on its own copy of board
// and scored with a full-depth minimax search of the opponent's reply.
// Ties are won by the first move in row-major order.
func (b *Bot) Search(board models.Board, side models.Color, depth int) Result {
	b.startTime = time.Now()
	b.nodes.Store(0)

	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return Result{Nodes: b.Nodes()}
	}

	maximizing := side.Opponent() == models.WHITE

	result := Result{
		HasMove: true,
	}

	for i, move := range moves {
		score := b.Minimax(board.DoMove(side, move), depth, math.Inf(-1), math.Inf(1), maximizing)

		if i == 0 || isBetter(side, score, result.Score) {
			result.Move = move
			result.Score = score
		}
	}

	result.Nodes = b.Nodes()
	b.logStats(side, depth, result)
	return result
}

// SearchParallel works like Search but scores the candidate moves concurrently.
// It returns the same move and score as Search.
func SearchParallel(board models.Board, side models.Color, depth int) Result {
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return Result{}
	}

	bot := NewBot()
	maximizing := side.Opponent() == models.WHITE
	scores := make([]float64, len(moves))

	g := errgroup.Group{}
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, move := range moves {
		child := board.DoMove(side, move)
		g.Go(func() error {
			scores[i] = bot.Minimax(child, depth, math.Inf(-1), math.Inf(1), maximizing)
			return nil
		})
	}

	// Minimax does not fail.
	_ = g.Wait()

	result := Result{
		Move:    moves[0],
		HasMove: true,
		Score:   scores[0],
	}

	for i := 1; i < len(moves); i++ {
		if isBetter(side, scores[i], result.Score) {
			result.Move = moves[i]
			result.Score = scores[i]
		}
	}

	result.Nodes = bot.Nodes()
	bot.logStats(side, depth, result)
	return result
}

// BestMove returns the best move for side, or false if side has no legal move.
func BestMove(board models.Board, side models.Color, depth int) (models.Move, bool) {
	result := NewBot().Search(board, side, depth)
	return result.Move, result.HasMove
}

func (b *Bot) logStats(side models.Color, depth int, result Result) {
	elapsedSeconds := time.Since(b.startTime).Seconds()

	nodesPerSecond := int64(0)
	if elapsedSeconds > 0.000001 {
		nodesPerSecond = int64(float64(result.Nodes) / elapsedSeconds)
	}

	slog.Debug("search done",
		"side", side,
		"depth", depth,
		"move", result.Move,
		"score", result.Score,
		"nodes", result.Nodes,
		"seconds", elapsedSeconds,
		"nodes_per_second", nodesPerSecond,
	)
}

// BestMoveParallel works like BestMove but uses SearchParallel.
func BestMoveParallel(board models.Board, side models.Color, depth int) (models.Move, bool) {
	result := SearchParallel(board, side, depth)
	return result.Move, result.HasMove
}
