package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wheelgame-go/internal/dependencies/clock"
	"github.com/mcoot/wheelgame-go/internal/dependencies/random"
	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/board"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/services/puzzle"
	"github.com/mcoot/wheelgame-go/internal/services/scoring"
	"github.com/mcoot/wheelgame-go/internal/services/wheel"
	"github.com/mcoot/wheelgame-go/internal/storage"
	"github.com/mcoot/wheelgame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/wheelgame-go/internal/storage/redis"
	"github.com/mcoot/wheelgame-go/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PuzzleService  *puzzle.Service
	BoardService   *board.Service
	ScoringService *scoring.Service
	WheelService   *wheel.Service
	GameController *game.Controller
	Hub            *sse.Hub
	Broadcaster    *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// PuzzlesPath and PlayersPath are newline-delimited data files (optional).
	// When a file is missing the catalog saved in storage is used instead.
	PuzzlesPath string
	PlayersPath string
	// Game holds the game rules. If zero value, defaults to game.DefaultConfig()
	Game game.Config
	// Wedges overrides the wheel segments (optional)
	Wedges []wheel.Wedge
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and the
// puzzle catalog loaded
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	gameCfg := cfg.Game
	if gameCfg.VowelCost == 0 {
		gameCfg = game.DefaultConfig()
	}

	catalog := puzzle.New(store, logger)
	notices, err := loadCatalog(context.Background(), catalog, cfg, logger)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(store, clock.New(), random.New(), catalog, nil, gameCfg, cfg.Wedges, logger)
	for _, notice := range notices {
		app.GameController.Notify(context.Background(), notice)
	}
	return app, nil
}

// loadCatalog reads the data files, falling back to storage when one is
// missing. It returns the notices to show players if nothing could be loaded.
func loadCatalog(ctx context.Context, catalog *puzzle.Service, cfg Config, logger *slog.Logger) ([]string, error) {
	var notices []string

	if cfg.PuzzlesPath != "" {
		err := catalog.LoadPuzzlesFromFile(ctx, cfg.PuzzlesPath)
		if errors.Is(err, model.ErrMissingDataFile) {
			notices = append(notices, game.MessagePuzzlesMissing)
		} else if err != nil {
			return nil, err
		}
	}
	if cfg.PlayersPath != "" {
		err := catalog.LoadRosterFromFile(ctx, cfg.PlayersPath)
		if errors.Is(err, model.ErrMissingDataFile) {
			notices = append(notices, game.MessagePlayersMissing)
		} else if err != nil {
			return nil, err
		}
	}

	if len(notices) == 0 {
		return nil, nil
	}

	if err := catalog.LoadFromStorage(ctx); err != nil {
		logger.Warn("no stored catalog to fall back on", slog.String("error", err.Error()))
		return notices, nil
	}
	logger.Info("catalog restored from storage",
		slog.Int("puzzles", catalog.Count()),
		slog.Int("players", len(catalog.Roster())),
	)
	return nil, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	catalog *puzzle.Service,
	extra game.Renderer,
	gameCfg game.Config,
	wedges []wheel.Wedge,
	logger *slog.Logger,
) *App {
	boardService := board.New(gameCfg.RowCapacities, logger)
	scoringService := scoring.New(gameCfg.VowelCost, gameCfg.SolveBonus)
	wheelService := wheel.New(wedges, rnd, logger)

	hub := sse.NewHub(logger)
	go hub.Run()
	broadcaster := sse.NewBroadcaster(hub, logger)

	renderer := game.MultiRenderer{broadcaster}
	if extra != nil {
		renderer = append(renderer, extra)
	}

	gameController := game.NewController(
		gameCfg,
		catalog.Puzzles(),
		catalog.Roster(),
		boardService,
		scoringService,
		wheelService,
		clk,
		renderer,
		logger,
	)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		PuzzleService:  catalog,
		BoardService:   boardService,
		ScoringService: scoringService,
		WheelService:   wheelService,
		GameController: gameController,
		Hub:            hub,
		Broadcaster:    broadcaster,
	}
}

// Close stops the SSE hub and releases storage connections
func (a *App) Close() error {
	a.Hub.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
