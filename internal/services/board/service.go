package board

import (
	"log/slog"
	"unicode"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// Service prepares puzzle boards
type Service struct {
	capacities []int
	logger     *slog.Logger
}

// New creates a new BoardService for the given row capacities
func New(capacities []int, logger *slog.Logger) *Service {
	if len(capacities) == 0 {
		capacities = model.DefaultRowCapacities
	}
	return &Service{
		capacities: capacities,
		logger:     logger,
	}
}

// NewGrid creates an empty grid with the configured shape
func (s *Service) NewGrid() *model.BoardGrid {
	return model.NewBoardGrid(s.capacities)
}

// PrepareGrid creates a fresh grid holding the puzzle's letters, all hidden
func (s *Service) PrepareGrid(puzzle *model.Puzzle) (*model.BoardGrid, error) {
	grid := s.NewGrid()

	layout, err := Layout(puzzle.IndividualWords, grid)
	if err != nil {
		s.logger.Warn("puzzle layout failed",
			slog.Int("puzzle_id", int(puzzle.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	grid.ApplyLayout(layout)
	return grid, nil
}

// ValidateLetter checks if a letter is a valid A-Z character
func ValidateLetter(letter rune) error {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return model.ErrInvalidLetter
	}
	return nil
}

// IsVowel returns true for A, E, I, O and U in either case
func IsVowel(letter rune) bool {
	switch unicode.ToUpper(letter) {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// Alphabet returns the letters A-Z in order
func Alphabet() []rune {
	letters := make([]rune, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		letters = append(letters, r)
	}
	return letters
}

// Interface for dependency injection
type ServiceInterface interface {
	NewGrid() *model.BoardGrid
	PrepareGrid(puzzle *model.Puzzle) (*model.BoardGrid, error)
}

var _ ServiceInterface = (*Service)(nil)
