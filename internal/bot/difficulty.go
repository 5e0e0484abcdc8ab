package bot

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects the bot's move strategy.
type Difficulty string

const (
	// Easy plays a uniformly random empty cell.
	Easy Difficulty = "easy"
	// Medium wins if it can, blocks if it must, otherwise plays randomly.
	Medium Difficulty = "medium"
	// Hard plays the game-theoretically optimal move.
	Hard Difficulty = "hard"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties lists every recognized difficulty, easiest first.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty validates a difficulty coming from outside the engine.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

func (d Difficulty) String() string {
	return string(d)
}
