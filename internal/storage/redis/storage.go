package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzles(ctx context.Context, puzzles []*model.Puzzle) error {
	values := make([]interface{}, 0, len(puzzles))
	for _, p := range puzzles {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		values = append(values, data)
	}
	return s.replaceList(ctx, puzzlesKey(), values)
}

func (s *Storage) GetPuzzles(ctx context.Context) ([]*model.Puzzle, error) {
	items, err := s.client.LRange(ctx, puzzlesKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrCatalogNotFound
	}

	puzzles := make([]*model.Puzzle, 0, len(items))
	for _, item := range items {
		var p model.Puzzle
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			return nil, err
		}
		puzzles = append(puzzles, &p)
	}
	return puzzles, nil
}

// Roster operations

func (s *Storage) SaveRoster(ctx context.Context, names []model.PlayerName) error {
	values := make([]interface{}, len(names))
	for i, n := range names {
		values[i] = string(n)
	}
	return s.replaceList(ctx, rosterKey(), values)
}

func (s *Storage) GetRoster(ctx context.Context) ([]model.PlayerName, error) {
	items, err := s.client.LRange(ctx, rosterKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrCatalogNotFound
	}

	names := make([]model.PlayerName, len(items))
	for i, item := range items {
		names[i] = model.PlayerName(item)
	}
	return names, nil
}

// replaceList swaps the contents of a LIST in one transaction
func (s *Storage) replaceList(ctx context.Context, key string, values []interface{}) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(values) > 0 {
		pipe.RPush(ctx, key, values...)
		if s.cfg.CatalogTTL > 0 {
			pipe.Expire(ctx, key, s.cfg.CatalogTTL)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}
