package ws

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewGameRequest starts a new game. Missing fields keep their defaults.
type NewGameRequest struct {
	AIEnabled *bool         `json:"ai_enabled"`
	AISide    *models.Color `json:"ai_side"`
	Depth     *int          `json:"depth"`
}

type SetAIRequest struct {
	Enabled bool `json:"enabled"`
}

type SetDifficultyRequest struct {
	Depth int `json:"depth"`
}

type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// State is the session state sent after every event.
type State struct {
	GameID     uuid.UUID     `json:"game_id"`
	Board      models.Board  `json:"board"`
	Turn       models.Color  `json:"turn"`
	LegalMoves []models.Move `json:"legal_moves"`
	Black      int           `json:"black"`
	White      int           `json:"white"`
	Over       bool          `json:"over"`
	Winner     *models.Color `json:"winner"`
	AIEnabled  bool          `json:"ai_enabled"`
	AISide     models.Color  `json:"ai_side"`
	Depth      int           `json:"depth"`

	// AIMoves are the moves the AI played in response to the last event
	AIMoves []models.Move `json:"ai_moves"`
}
