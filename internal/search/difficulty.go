package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is a search depth. Any non-negative depth is accepted, the named ones are what players pick from.
type Difficulty int

const (
	Easy   Difficulty = 2
	Medium Difficulty = 3
	Hard   Difficulty = 4
)

// ParseDifficulty parses "easy", "medium", "hard" or a non-negative integer depth.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}

	depth, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid difficulty %q: %w", s, err)
	}

	if depth < 0 {
		return 0, fmt.Errorf("invalid difficulty %q: depth cannot be negative", s)
	}

	return Difficulty(depth), nil
}

// Depth returns the search depth.
func (d Difficulty) Depth() int {
	return int(d)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy (Depth 2)"
	case Medium:
		return "Medium (Depth 3)"
	case Hard:
		return "Hard (Depth 4)"
	default:
		return fmt.Sprintf("Depth %d", int(d))
	}
}
