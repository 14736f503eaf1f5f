package models

import "time"

// Job is a request to search the best move.
type Job struct {
	Board Board `json:"board"`
	Side  Color `json:"side"`
	Depth int   `json:"depth"`
}

// Analysis is the result of searching a Job.
type Analysis struct {
	Board   Board   `json:"board"`
	Side    Color   `json:"side"`
	Depth   int     `json:"depth"`
	HasMove bool    `json:"has_move"`
	Move    Move    `json:"move"`
	Score   float64 `json:"score"`
	Nodes   uint64  `json:"nodes"`
}

// Job returns the job this analysis answers.
func (a Analysis) Job() Job {
	return Job{Board: a.Board, Side: a.Side, Depth: a.Depth}
}

// JobResult is an analysis with details on how it was obtained.
type JobResult struct {
	Analysis        Analysis      `json:"analysis"`
	Cached          bool          `json:"cached"`
	ComputationTime time.Duration `json:"computation_time"`
}

// BoardRequest is the payload for endpoints that only need a board.
type BoardRequest struct {
	Board Board `json:"board"`
}

// LegalMovesRequest is the payload to list legal moves.
type LegalMovesRequest struct {
	Board Board `json:"board"`
	Side  Color `json:"side"`
}

// LegalMovesResponse lists legal moves in row-major order.
type LegalMovesResponse struct {
	Moves []Move `json:"moves"`
}

// ApplyMoveRequest is the payload to play a move.
type ApplyMoveRequest struct {
	Board Board `json:"board"`
	Side  Color `json:"side"`
	Move  Move  `json:"move"`
}

// ApplyMoveResponse is the board after a move and who moves next.
type ApplyMoveResponse struct {
	Board  Board  `json:"board"`
	Turn   Color  `json:"turn"`
	Over   bool   `json:"over"`
	Winner *Color `json:"winner,omitempty"`
}

// BestMoveRequest is the payload to search a move. Depth is optional.
type BestMoveRequest struct {
	Board Board `json:"board"`
	Side  Color `json:"side"`
	Depth *int  `json:"depth,omitempty"`
}

// BestMoveResponse holds the found move, which is nil if the side must pass.
type BestMoveResponse struct {
	Move   *Move   `json:"move"`
	Score  float64 `json:"score"`
	Nodes  uint64  `json:"nodes"`
	Cached bool    `json:"cached"`
}

// EvaluateResponse holds the static evaluation of a board.
type EvaluateResponse struct {
	Score float64 `json:"score"`
}

// WinnerResponse holds the outcome of a finished game.
type WinnerResponse struct {
	Winner Color `json:"winner"`
	Black  int   `json:"black"`
	White  int   `json:"white"`
}

// VersionResponse holds the version of the running server.
type VersionResponse struct {
	Commit string `json:"commit"`
}

// ErrorResponse is returned by all endpoints on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
