package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/models"
)

// clientErrors are caused by the request and result in a 400 response.
var clientErrors = []error{
	models.ErrIllegalMove,
	models.ErrInvalidBoard,
	models.ErrInvalidSide,
	models.ErrNotTerminal,
	engine.ErrInvalidJob,
}

func sendError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			status = fiber.StatusBadRequest
			break
		}
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Error: err.Error(),
	})
}

func sendInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: "Invalid request body",
	})
}
