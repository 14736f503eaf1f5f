package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.Token())

	// Board routes
	apiGroup.Post("/legal-moves", LegalMoves)
	apiGroup.Post("/apply", ApplyMove)
	apiGroup.Post("/evaluate", Evaluate)
	apiGroup.Post("/winner", Winner)

	// Search routes
	apiGroup.Post("/best-move", BestMove)
}
