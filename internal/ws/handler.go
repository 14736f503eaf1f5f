package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/events"
	"github.com/lk16/reversi/internal/models"
)

type Handler struct {
	ws      *websocket.Conn
	session *Session
}

// NewHandler creates a new Handler with a fresh session.
func NewHandler(ws *websocket.Conn, manager *engine.Manager, publisher events.Publisher, depth int) *Handler {
	return &Handler{
		ws:      ws,
		session: NewSession(manager, publisher, depth),
	}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// handleMessage runs one event on the session. Errors are sent back to the client and keep the connection open.
func (h *Handler) handleMessage(ctx context.Context, req *Incoming) *Outgoing {
	if err := h.dispatch(ctx, req); err != nil {
		slog.Debug("ws event failed", "event", req.Event, "error", err)
		return &Outgoing{ID: req.ID, Error: err.Error()}
	}

	return &Outgoing{ID: req.ID, Data: h.session.State()}
}

func (h *Handler) dispatch(ctx context.Context, req *Incoming) error {
	if req.Event == "" {
		return errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "new_game":
		var data NewGameRequest
		if err := unmarshalData(req, &data); err != nil {
			return err
		}
		return h.session.NewGame(ctx, data)
	case "set_ai":
		var data SetAIRequest
		if err := unmarshalData(req, &data); err != nil {
			return err
		}
		return h.session.SetAI(ctx, data.Enabled)
	case "set_difficulty":
		var data SetDifficultyRequest
		if err := unmarshalData(req, &data); err != nil {
			return err
		}
		return h.session.SetDepth(data.Depth)
	case "move":
		var data MoveRequest
		if err := unmarshalData(req, &data); err != nil {
			return err
		}
		return h.session.PlayMove(ctx, models.NewMove(data.Row, data.Col))
	case "pass":
		return h.session.Pass(ctx)
	case "state":
		return nil
	default:
		return fmt.Errorf("unknown event: %s", req.Event)
	}
}

// unmarshalData decodes the event data. Missing data decodes as an empty object.
func unmarshalData(req *Incoming, v any) error {
	if len(req.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(req.Data, v); err != nil {
		return fmt.Errorf("ws %s data unmarshal error: %w", req.Event, err)
	}

	return nil
}

// Handle handles the websocket connection.
func (h *Handler) Handle(ctx context.Context) error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		if err = h.writeMessage(h.handleMessage(ctx, req)); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}
