package models

import "errors"

var (
	// ErrIllegalMove is returned when a move is out of bounds, targets an occupied square or flips nothing.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidBoard is returned for malformed boards.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrGameOver is returned when a move is pushed to a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrCannotPass is returned when passing while legal moves exist.
	ErrCannotPass = errors.New("cannot pass, legal moves exist")

	// ErrInvalidSide is returned when a side is needed and EMPTY is given.
	ErrInvalidSide = errors.New("side must be black or white")

	// ErrNotTerminal is returned when asking for the winner of a game in progress.
	ErrNotTerminal = errors.New("position is not terminal")
)
