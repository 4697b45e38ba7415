package factory

import (
	"context"
	"time"

	"github.com/mcoot/wheelgame-go/internal/dependencies/mocks"
	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/services/puzzle"
	"github.com/mcoot/wheelgame-go/internal/storage/memory"
	"github.com/mcoot/wheelgame-go/internal/testutil"
)

// TestPuzzles is a small catalog that fits the default board
var TestPuzzles = []string{
	"WHEEL OF FORTUNE",
	"BACK TO THE DRAWING BOARD",
	"A PENNY SAVED IS A PENNY EARNED",
}

// TestPlayers is a full roster
var TestPlayers = []model.PlayerName{"Alice", "Bob", "Carol"}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock    *mocks.MockClock
	MockRandom   *mocks.MockRandom
	MockRenderer *mocks.RecordingRenderer
}

// NewTestApp creates an App with TestPuzzles and TestPlayers and mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithCatalog(TestPuzzles, TestPlayers)
}

// NewTestAppWithCatalog creates an App over the given phrases and players
func NewTestAppWithCatalog(phrases []string, players []model.PlayerName) *TestApp {
	ctx := context.Background()
	logger := testutil.NopLogger()
	store := memory.New()

	catalog := puzzle.New(store, logger)
	_ = catalog.LoadPuzzles(ctx, phrases)
	_ = catalog.LoadRoster(ctx, players)

	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockRenderer := mocks.NewRecordingRenderer()

	app := newWithDependencies(store, mockClock, mockRandom, catalog, mockRenderer, game.DefaultConfig(), nil, logger)

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockRandom:   mockRandom,
		MockRenderer: mockRenderer,
	}
}

// FinishReveals advances the mock clock until no reveal is pending
func (t *TestApp) FinishReveals() {
	for i := 0; i < 1000 && t.GameController.RevealInProgress(); i++ {
		t.MockClock.Advance(time.Second)
	}
}
