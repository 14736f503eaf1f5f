package search

import (
	"github.com/lk16/reversi/internal/models"
)

const (
	cornerWeight   = 20
	edgeWeight     = 2
	mobilityWeight = 1.5
)

var corners = [4]models.Move{
	{Row: 0, Col: 0},
	{Row: 0, Col: models.MaxX - 1},
	{Row: models.MaxY - 1, Col: 0},
	{Row: models.MaxY - 1, Col: models.MaxX - 1},
}

// edges are the 24 non-corner squares on the border of the board.
var edges = func() []models.Move {
	edges := make([]models.Move, 0, 24)
	for i := 1; i < models.MaxX-1; i++ {
		edges = append(edges,
			models.NewMove(0, i),
			models.NewMove(models.MaxY-1, i),
			models.NewMove(i, 0),
			models.NewMove(i, models.MaxX-1),
		)
	}
	return edges
}()

// Evaluate returns the static score of a board. Positive scores favor white, negative scores favor black.
func Evaluate(board models.Board) float64 {
	white := float64(board.Count(models.WHITE)) + weighted(board, models.WHITE)
	black := float64(board.Count(models.BLACK)) + weighted(board, models.BLACK)
	return white - black
}

// weighted returns the corner, edge and mobility bonus of side.
func weighted(board models.Board, side models.Color) float64 {
	score := 0.0

	for _, corner := range corners {
		if board.Get(corner.Row, corner.Col) == side {
			score += cornerWeight
		}
	}

	for _, edge := range edges {
		if board.Get(edge.Row, edge.Col) == side {
			score += edgeWeight
		}
	}

	score += mobilityWeight * float64(board.MoveCount(side))

	return score
}
