package ws

import (
	"context"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/events"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	services := c.Locals("services").(*services.Services) //nolint: errcheck
	cfg := c.Locals("config").(*config.ServerConfig)      //nolint: errcheck

	repo := repository.NewAnalysisRepositoryFromServices(services)
	manager := engine.NewManagerFromRepository(repo, cfg.ParallelSearch)
	publisher := events.NewPublisher(services)

	h := ws.NewHandler(c, manager, publisher, cfg.DefaultDepth.Depth())
	err := h.Handle(context.Background())
	if err != nil {
		slog.Debug("ws connection closed", "error", err)
	}
}

// upgradeOnly rejects requests that are not websocket upgrades.
func upgradeOnly(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", upgradeOnly, websocket.New(handleWs))
}
