package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wheelgame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Puzzle tests

func (s *StorageSuite) TestSaveAndGetPuzzles() {
	puzzles := []*model.Puzzle{
		model.NewPuzzle(0, "WHEEL OF FORTUNE"),
		model.NewPuzzle(1, "BACK TO THE DRAWING BOARD"),
	}

	err := s.storage.SavePuzzles(s.ctx, puzzles)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 2)
	s.Equal(puzzles[0], retrieved[0])
	s.Equal(puzzles[1], retrieved[1])
}

func (s *StorageSuite) TestGetPuzzlesNotFound() {
	_, err := s.storage.GetPuzzles(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotFound)
}

func (s *StorageSuite) TestSavePuzzlesReplacesExisting() {
	_ = s.storage.SavePuzzles(s.ctx, []*model.Puzzle{model.NewPuzzle(0, "OLD ONE"), model.NewPuzzle(1, "OLD TWO")})
	_ = s.storage.SavePuzzles(s.ctx, []*model.Puzzle{model.NewPuzzle(0, "NEW")})

	retrieved, err := s.storage.GetPuzzles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 1)
	s.Equal("NEW", retrieved[0].FullPhrase)
}

func (s *StorageSuite) TestSavePuzzlesEmptyClears() {
	_ = s.storage.SavePuzzles(s.ctx, []*model.Puzzle{model.NewPuzzle(0, "OLD")})

	err := s.storage.SavePuzzles(s.ctx, nil)
	s.Require().NoError(err)

	_, err = s.storage.GetPuzzles(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotFound)
}

func (s *StorageSuite) TestPuzzlesNoTTLByDefault() {
	_ = s.storage.SavePuzzles(s.ctx, []*model.Puzzle{model.NewPuzzle(0, "WHEEL")})

	ttl := s.mini.TTL(puzzlesKey())
	s.Equal(time.Duration(0), ttl, "Catalog should not have TTL")
}

func (s *StorageSuite) TestCatalogTTLApplied() {
	cfg := DefaultConfig()
	cfg.CatalogTTL = time.Hour
	s.storage.cfg = cfg

	_ = s.storage.SavePuzzles(s.ctx, []*model.Puzzle{model.NewPuzzle(0, "WHEEL")})
	_ = s.storage.SaveRoster(s.ctx, []model.PlayerName{"Alice"})

	s.Equal(time.Hour, s.mini.TTL(puzzlesKey()))
	s.Equal(time.Hour, s.mini.TTL(rosterKey()))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetPuzzles(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotFound)
}

// Roster tests

func (s *StorageSuite) TestSaveAndGetRoster() {
	names := []model.PlayerName{"Alice", "Bob", "Carol"}

	err := s.storage.SaveRoster(s.ctx, names)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoster(s.ctx)
	s.Require().NoError(err)
	s.Equal(names, retrieved)
}

func (s *StorageSuite) TestGetRosterNotFound() {
	_, err := s.storage.GetRoster(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotFound)
}

func (s *StorageSuite) TestRosterStoredAsList() {
	_ = s.storage.SaveRoster(s.ctx, []model.PlayerName{"Alice", "Bob"})

	items, err := s.mini.List(rosterKey())
	s.Require().NoError(err)
	s.Equal([]string{"Alice", "Bob"}, items)
}
