package models

import "fmt"

// NextTurn returns who moves after mover played on board.
// The opponent moves if it can. Otherwise mover moves again if it can. Otherwise the game is over.
func NextTurn(board Board, mover Color) (Color, bool) {
	opponent := mover.Opponent()

	if board.HasAnyLegalMove(opponent) {
		return opponent, false
	}

	if board.HasAnyLegalMove(mover) {
		return mover, false
	}

	return mover, true
}

// Game is a game in progress. It is owned by a single caller and is not safe for concurrent use.
type Game struct {
	// board is the current board
	board Board

	// turn is the side to move
	turn Color

	// over is set when neither side can move
	over bool
}

// NewGame creates a new game with the starting position and black to move.
func NewGame() *Game {
	return NewGameWithStart(NewBoardStart(), BLACK)
}

// NewGameWithStart creates a new game with a custom start board and side to move.
func NewGameWithStart(start Board, turn Color) *Game {
	return &Game{
		board: start,
		turn:  turn,
		over:  start.IsTerminal(),
	}
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// IsOver returns whether neither side can move.
func (g *Game) IsOver() bool {
	return g.over
}

// Winner returns the side with most discs, or TIE. It is only meaningful when the game is over.
func (g *Game) Winner() Color {
	return g.board.Winner()
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []Move {
	if g.over {
		return []Move{}
	}
	return g.board.LegalMoves(g.turn)
}

// PushMove plays a move for the side to move and resolves the next turn.
func (g *Game) PushMove(move Move) error {
	if g.over {
		return ErrGameOver
	}

	board, err := g.board.ApplyMove(g.turn, move)
	if err != nil {
		return fmt.Errorf("failed to push move: %w", err)
	}

	g.board = board
	g.turn, g.over = NextTurn(g.board, g.turn)
	return nil
}

// Pass hands the turn to the opponent. It is only allowed when the side to move has no legal move.
func (g *Game) Pass() error {
	if g.over {
		return ErrGameOver
	}

	if g.board.HasAnyLegalMove(g.turn) {
		return ErrCannotPass
	}

	g.turn, g.over = NextTurn(g.board, g.turn)
	return nil
}
