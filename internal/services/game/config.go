package game

import (
	"time"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// Config holds the fixed rules of a game
type Config struct {
	VowelCost         int
	SolveBonus        int
	LetterRevealDelay time.Duration // per tile, after a letter request
	SolveRevealDelay  time.Duration // per tile, after a correct solve
	RowCapacities     []int
}

// DefaultConfig returns the standard board and prices
func DefaultConfig() Config {
	return Config{
		VowelCost:         1000,
		SolveBonus:        5000,
		LetterRevealDelay: 2 * time.Second,
		SolveRevealDelay:  500 * time.Millisecond,
		RowCapacities:     model.DefaultRowCapacities,
	}
}
