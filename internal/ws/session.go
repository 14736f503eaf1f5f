package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/events"
	"github.com/lk16/reversi/internal/models"
)

var (
	// ErrNotYourTurn is returned when a human acts while the AI is to move.
	ErrNotYourTurn = errors.New("it is the AI's turn")

	// ErrInvalidDepth is returned for depths the engine does not search.
	ErrInvalidDepth = errors.New("invalid depth")
)

// Session is one human playing against the AI. It is not safe for concurrent use.
type Session struct {
	manager   *engine.Manager
	publisher events.Publisher

	gameID    uuid.UUID
	game      *models.Game
	startTime time.Time
	published bool

	aiEnabled bool
	aiSide    models.Color
	depth     int

	// aiMoves are the moves the AI played during the last event
	aiMoves []models.Move

	// aiMoveCount is the number of moves the AI played this game
	aiMoveCount int
}

// NewSession creates a session with the AI enabled and playing white.
func NewSession(manager *engine.Manager, publisher events.Publisher, depth int) *Session {
	s := &Session{
		manager:   manager,
		publisher: publisher,
		aiEnabled: true,
		aiSide:    models.WHITE,
		depth:     depth,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.gameID = uuid.New()
	s.game = models.NewGame()
	s.startTime = time.Now()
	s.published = false
	s.aiMoves = []models.Move{}
	s.aiMoveCount = 0
}

// NewGame starts a new game. The AI moves first if it plays black.
func (s *Session) NewGame(ctx context.Context, req NewGameRequest) error {
	if req.AISide != nil && !req.AISide.IsSide() {
		return fmt.Errorf("%w: cannot use %s as AI side", models.ErrInvalidSide, *req.AISide)
	}

	if req.Depth != nil {
		if err := validateDepth(*req.Depth); err != nil {
			return err
		}
	}

	if req.AIEnabled != nil {
		s.aiEnabled = *req.AIEnabled
	}

	if req.AISide != nil {
		s.aiSide = *req.AISide
	}

	if req.Depth != nil {
		s.depth = *req.Depth
	}

	s.reset()
	slog.Debug("New game", "game_id", s.gameID, "ai_enabled", s.aiEnabled, "ai_side", s.aiSide, "depth", s.depth)

	return s.runAI(ctx)
}

// SetAI enables or disables the AI. An enabled AI moves right away if it is its turn.
func (s *Session) SetAI(ctx context.Context, enabled bool) error {
	s.aiEnabled = enabled
	s.aiMoves = []models.Move{}
	return s.runAI(ctx)
}

// SetDepth changes the search depth of the AI.
func (s *Session) SetDepth(depth int) error {
	if err := validateDepth(depth); err != nil {
		return err
	}

	s.depth = depth
	s.aiMoves = []models.Move{}
	return nil
}

// PlayMove plays a human move and lets the AI reply. An illegal move leaves the session unchanged.
func (s *Session) PlayMove(ctx context.Context, move models.Move) error {
	if s.isAITurn() {
		return ErrNotYourTurn
	}

	if err := s.game.PushMove(move); err != nil {
		return err
	}

	s.aiMoves = []models.Move{}
	return s.runAI(ctx)
}

// Pass passes for the human, which is only allowed without legal moves.
func (s *Session) Pass(ctx context.Context) error {
	if s.isAITurn() {
		return ErrNotYourTurn
	}

	if err := s.game.Pass(); err != nil {
		return err
	}

	s.aiMoves = []models.Move{}
	return s.runAI(ctx)
}

// State returns the current state.
func (s *Session) State() State {
	board := s.game.Board()

	state := State{
		GameID:     s.gameID,
		Board:      board,
		Turn:       s.game.Turn(),
		LegalMoves: s.game.LegalMoves(),
		Black:      board.Count(models.BLACK),
		White:      board.Count(models.WHITE),
		Over:       s.game.IsOver(),
		AIEnabled:  s.aiEnabled,
		AISide:     s.aiSide,
		Depth:      s.depth,
		AIMoves:    s.aiMoves,
	}

	if state.Over {
		winner := s.game.Winner()
		state.Winner = &winner
	}

	return state
}

func (s *Session) isAITurn() bool {
	return s.aiEnabled && !s.game.IsOver() && s.game.Turn() == s.aiSide
}

// runAI lets the AI move as long as it is its turn, then publishes the result if the game ended.
func (s *Session) runAI(ctx context.Context) error {
	for s.isAITurn() {
		job := models.Job{Board: s.game.Board(), Side: s.aiSide, Depth: s.depth}

		result, err := s.manager.DoJob(ctx, job)
		if err != nil {
			return fmt.Errorf("AI failed to move: %w", err)
		}

		if !result.Analysis.HasMove {
			if err = s.game.Pass(); err != nil {
				return fmt.Errorf("AI failed to pass: %w", err)
			}
			continue
		}

		if err = s.game.PushMove(result.Analysis.Move); err != nil {
			return fmt.Errorf("AI played an illegal move: %w", err)
		}

		s.aiMoves = append(s.aiMoves, result.Analysis.Move)
		s.aiMoveCount++
	}

	s.publishGameOver(ctx)
	return nil
}

func (s *Session) publishGameOver(ctx context.Context) {
	if !s.game.IsOver() || s.published {
		return
	}

	s.published = true

	event := events.NewGameOver(s.gameID, s.game.Board(), s.aiMoveCount, time.Since(s.startTime))
	if err := s.publisher.GameOver(ctx, event); err != nil {
		slog.Error("Failed to publish game over event", "game_id", s.gameID, "error", err)
	}
}

func validateDepth(depth int) error {
	if depth < 0 || depth > engine.MaxDepth {
		return fmt.Errorf("%w: depth must be between 0 and %d, got %d", ErrInvalidDepth, engine.MaxDepth, depth)
	}
	return nil
}
