package puzzle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/storage"
)

// Service loads and serves the puzzle catalog and player roster
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.RWMutex
	puzzles []*model.Puzzle
	roster  []model.PlayerName
}

// New creates a new PuzzleService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadFromStorage loads puzzles and roster previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	puzzles, err := s.storage.GetPuzzles(ctx)
	if err != nil {
		return err
	}
	roster, err := s.storage.GetRoster(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles = puzzles
	s.roster = roster
	return nil
}

// LoadPuzzlesFromFile loads puzzles from a file (one phrase per line)
func (s *Service) LoadPuzzlesFromFile(ctx context.Context, path string) error {
	lines, err := s.readLines(path)
	if err != nil {
		return err
	}
	return s.LoadPuzzles(ctx, lines)
}

// LoadRosterFromFile loads player names from a file (one name per line)
func (s *Service) LoadRosterFromFile(ctx context.Context, path string) error {
	lines, err := s.readLines(path)
	if err != nil {
		return err
	}
	names := make([]model.PlayerName, len(lines))
	for i, line := range lines {
		names[i] = model.PlayerName(line)
	}
	return s.LoadRoster(ctx, names)
}

// LoadPuzzles replaces the catalog with the given phrases, in order
func (s *Service) LoadPuzzles(ctx context.Context, phrases []string) error {
	puzzles := make([]*model.Puzzle, 0, len(phrases))
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		puzzles = append(puzzles, model.NewPuzzle(model.PuzzleID(len(puzzles)), phrase))
	}

	// Save to storage for future use
	if err := s.storage.SavePuzzles(ctx, puzzles); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles = puzzles
	return nil
}

// LoadRoster replaces the roster. Duplicates and blanks are dropped and only
// the first MaxPlayers names are kept.
func (s *Service) LoadRoster(ctx context.Context, names []model.PlayerName) error {
	seen := make(map[model.PlayerName]bool, len(names))
	roster := make([]model.PlayerName, 0, model.MaxPlayers)
	for _, name := range names {
		name = model.PlayerName(strings.TrimSpace(string(name)))
		if name == "" {
			continue
		}
		if seen[name] {
			s.logger.Warn("duplicate player name ignored", slog.String("player", string(name)))
			continue
		}
		seen[name] = true
		roster = append(roster, name)
	}

	if len(roster) > model.MaxPlayers {
		s.logger.Warn("roster truncated",
			slog.Int("names", len(roster)),
			slog.Int("max_players", model.MaxPlayers),
		)
		roster = roster[:model.MaxPlayers]
	}

	if err := s.storage.SaveRoster(ctx, roster); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = roster
	return nil
}

func (s *Service) readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("data file missing", slog.String("path", path))
			return nil, fmt.Errorf("%s: %w", path, model.ErrMissingDataFile)
		}
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Puzzles returns the loaded catalog in order
func (s *Service) Puzzles() []*model.Puzzle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Puzzle(nil), s.puzzles...)
}

// Roster returns the loaded player names in seat order
func (s *Service) Roster() []model.PlayerName {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.PlayerName(nil), s.roster...)
}

// Count returns the number of puzzles in the catalog
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.puzzles)
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadPuzzlesFromFile(ctx context.Context, path string) error
	LoadRosterFromFile(ctx context.Context, path string) error
	LoadPuzzles(ctx context.Context, phrases []string) error
	LoadRoster(ctx context.Context, names []model.PlayerName) error
	Puzzles() []*model.Puzzle
	Roster() []model.PlayerName
	Count() int
}

var _ ServiceInterface = (*Service)(nil)
