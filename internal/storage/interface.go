package storage

import (
	"context"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// Storage defines the interface for catalog persistence.
// Only the puzzle list and the player roster are stored; game state lives in memory.
type Storage interface {
	// Puzzle operations
	SavePuzzles(ctx context.Context, puzzles []*model.Puzzle) error
	GetPuzzles(ctx context.Context) ([]*model.Puzzle, error)

	// Roster operations
	SaveRoster(ctx context.Context, names []model.PlayerName) error
	GetRoster(ctx context.Context) ([]model.PlayerName, error)
}
