package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/search"
)

// LegalMoves lists the legal moves of a side.
func LegalMoves(c *fiber.Ctx) error {
	var req models.LegalMovesRequest
	if err := c.BodyParser(&req); err != nil {
		return sendInvalidBody(c)
	}

	if !req.Side.IsSide() {
		return sendError(c, fmt.Errorf("%w: got %s", models.ErrInvalidSide, req.Side))
	}

	return c.Status(fiber.StatusOK).JSON(models.LegalMovesResponse{
		Moves: req.Board.LegalMoves(req.Side),
	})
}

// ApplyMove plays a move and returns who moves next.
func ApplyMove(c *fiber.Ctx) error {
	var req models.ApplyMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return sendInvalidBody(c)
	}

	board, err := req.Board.ApplyMove(req.Side, req.Move)
	if err != nil {
		return sendError(c, err)
	}

	turn, over := models.NextTurn(board, req.Side)

	resp := models.ApplyMoveResponse{
		Board: board,
		Turn:  turn,
		Over:  over,
	}

	if over {
		winner := board.Winner()
		resp.Winner = &winner
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Evaluate returns the static evaluation of a board, positive scores favor white.
func Evaluate(c *fiber.Ctx) error {
	var req models.BoardRequest
	if err := c.BodyParser(&req); err != nil {
		return sendInvalidBody(c)
	}

	return c.Status(fiber.StatusOK).JSON(models.EvaluateResponse{
		Score: search.Evaluate(req.Board),
	})
}

// Winner returns the winner of a finished game.
func Winner(c *fiber.Ctx) error {
	var req models.BoardRequest
	if err := c.BodyParser(&req); err != nil {
		return sendInvalidBody(c)
	}

	if !req.Board.IsTerminal() {
		return sendError(c, models.ErrNotTerminal)
	}

	return c.Status(fiber.StatusOK).JSON(models.WinnerResponse{
		Winner: req.Board.Winner(),
		Black:  req.Board.Count(models.BLACK),
		White:  req.Board.Count(models.WHITE),
	})
}
