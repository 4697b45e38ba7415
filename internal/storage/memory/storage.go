package memory

import (
	"context"
	"sync"

	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzles []*model.Puzzle
	roster  []model.PlayerName
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzles(ctx context.Context, puzzles []*model.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles = make([]*model.Puzzle, len(puzzles))
	copy(s.puzzles, puzzles)
	return nil
}

func (s *Storage) GetPuzzles(ctx context.Context) ([]*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.puzzles) == 0 {
		return nil, model.ErrCatalogNotFound
	}
	result := make([]*model.Puzzle, len(s.puzzles))
	copy(result, s.puzzles)
	return result, nil
}

// Roster operations

func (s *Storage) SaveRoster(ctx context.Context, names []model.PlayerName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = make([]model.PlayerName, len(names))
	copy(s.roster, names)
	return nil
}

func (s *Storage) GetRoster(ctx context.Context) ([]model.PlayerName, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.roster) == 0 {
		return nil, model.ErrCatalogNotFound
	}
	result := make([]model.PlayerName, len(s.roster))
	copy(result, s.roster)
	return result, nil
}
