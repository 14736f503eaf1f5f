package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
)

// BestMove searches the best move of a side. Results are served from the analysis store when possible.
func BestMove(c *fiber.Ctx) error {
	var req models.BestMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return sendInvalidBody(c)
	}

	cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

	depth := cfg.DefaultDepth.Depth()
	if req.Depth != nil {
		depth = *req.Depth
	}

	repo := repository.NewAnalysisRepository(c)
	manager := engine.NewManagerFromRepository(repo, cfg.ParallelSearch)

	job := models.Job{Board: req.Board, Side: req.Side, Depth: depth}

	result, err := manager.DoJob(c.Context(), job)
	if err != nil {
		return sendError(c, err)
	}

	resp := models.BestMoveResponse{
		Score:  result.Analysis.Score,
		Nodes:  result.Analysis.Nodes,
		Cached: result.Cached,
	}

	if result.Analysis.HasMove {
		move := result.Analysis.Move
		resp.Move = &move
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
