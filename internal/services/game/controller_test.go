package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wheelgame-go/internal/dependencies/mocks"
	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/board"
	"github.com/mcoot/wheelgame-go/internal/services/scoring"
	"github.com/mcoot/wheelgame-go/internal/services/wheel"
	"github.com/mcoot/wheelgame-go/internal/testutil"
)

var _ Renderer = (*mocks.RecordingRenderer)(nil)

type ControllerSuite struct {
	suite.Suite
	cfg        Config
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	renderer   *mocks.RecordingRenderer
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.cfg = DefaultConfig()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.renderer = mocks.NewRecordingRenderer()
	s.ctx = context.Background()

	s.controller = s.newController([]string{
		"WHEEL OF FORTUNE",
		"BACK TO THE DRAWING BOARD",
	}, []model.PlayerName{"Alice", "Bob", "Carol"})
}

func (s *ControllerSuite) newController(phrases []string, players []model.PlayerName) *Controller {
	puzzles := make([]*model.Puzzle, len(phrases))
	for i, p := range phrases {
		puzzles[i] = model.NewPuzzle(model.PuzzleID(i), p)
	}
	logger := testutil.NopLogger()
	return NewController(
		s.cfg,
		puzzles,
		players,
		board.New(s.cfg.RowCapacities, logger),
		scoring.New(s.cfg.VowelCost, s.cfg.SolveBonus),
		wheel.New(nil, s.random, logger),
		s.clock,
		s.renderer,
		logger,
	)
}

// startTurn loads the first puzzle, selects a player and enters a spin
func (s *ControllerSuite) startTurn(player model.PlayerName, spin int) {
	_, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.controller.SelectPlayer(s.ctx, player))
	s.Require().NoError(s.controller.EnterSpin(s.ctx, spin))
}

// finishReveals advances the clock until the reveal queue drains
func (s *ControllerSuite) finishReveals() {
	for i := 0; i < 100 && s.controller.RevealInProgress(); i++ {
		s.clock.Advance(s.cfg.LetterRevealDelay)
	}
	s.Require().False(s.controller.RevealInProgress())
}

func (s *ControllerSuite) setScore(player model.PlayerName, score int) {
	_, err := s.controller.UpdateScore(s.ctx, player, model.BankruptOp())
	s.Require().NoError(err)
	_, err = s.controller.UpdateScore(s.ctx, player, model.Adjust(score))
	s.Require().NoError(err)
}

// LoadNextPuzzle tests

func (s *ControllerSuite) TestInitialState() {
	snap := s.controller.Snapshot()

	s.Equal(model.GamePhaseAwaitingPuzzle, snap.Phase)
	s.Nil(snap.PuzzleID)
	s.Equal(0, snap.PuzzlesShown)
	s.Equal(2, snap.PuzzleCount)
	s.Len(snap.Players, 3)
	for _, p := range snap.Players {
		s.Equal(0, p.Score)
	}
}

func (s *ControllerSuite) TestLoadNextPuzzleLaysOutHiddenLetters() {
	puzzle, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Equal("WHEEL OF FORTUNE", puzzle.FullPhrase)

	snap := s.controller.Snapshot()
	s.Equal(model.GamePhasePuzzleActive, snap.Phase)
	s.Require().NotNil(snap.PuzzleID)
	s.Equal(model.PuzzleID(0), *snap.PuzzleID)
	s.Equal(14, snap.Grid.FilledCount())
	s.Equal(0, snap.Grid.RevealedCount())
	s.Equal('W', snap.Grid.Get(model.Position{Row: 0, Col: 1}).Letter)

	s.NotNil(s.renderer.LastGrid())
}

func (s *ControllerSuite) TestLoadNextPuzzleEnablesAllLetters() {
	_, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)

	states := s.renderer.ButtonStates()
	s.Len(states, 26)
	for letter, enabled := range states {
		s.True(enabled, string(letter))
	}
}

func (s *ControllerSuite) TestLoadNextPuzzleAdvancesInOrder() {
	first, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	second, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.PuzzleID(0), first.ID)
	s.Equal(model.PuzzleID(1), second.ID)
	s.Equal(2, s.controller.Snapshot().PuzzlesShown)
}

func (s *ControllerSuite) TestLoadNextPuzzleExhausted() {
	_, _ = s.controller.LoadNextPuzzle(s.ctx)
	_, _ = s.controller.LoadNextPuzzle(s.ctx)

	_, err := s.controller.LoadNextPuzzle(s.ctx)
	s.ErrorIs(err, model.ErrPuzzlesExhausted)
	s.Equal(model.GamePhaseExhausted, s.controller.Snapshot().Phase)

	// Never wraps around
	_, err = s.controller.LoadNextPuzzle(s.ctx)
	s.ErrorIs(err, model.ErrPuzzlesExhausted)
	s.Equal(2, s.controller.Snapshot().PuzzlesShown)
}

func (s *ControllerSuite) TestLoadNextPuzzleWithNoPuzzles() {
	controller := s.newController(nil, nil)

	_, err := controller.LoadNextPuzzle(s.ctx)
	s.ErrorIs(err, model.ErrPuzzlesExhausted)
}

func (s *ControllerSuite) TestLoadNextPuzzleOverflowSkipsPuzzle() {
	controller := s.newController([]string{
		"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
		"WHEEL OF FORTUNE",
	}, []model.PlayerName{"Alice"})

	_, err := controller.LoadNextPuzzle(s.ctx)
	s.ErrorIs(err, model.ErrLayoutOverflow)
	s.Equal(model.GamePhaseAwaitingPuzzle, controller.Snapshot().Phase)
	s.Equal(0, controller.Snapshot().Grid.FilledCount())

	puzzle, err := controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Equal("WHEEL OF FORTUNE", puzzle.FullPhrase)
}

func (s *ControllerSuite) TestLoadNextPuzzleOverflowShowsMessage() {
	controller := s.newController([]string{
		"WHEEL OF FORTUNE",
		"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
	}, []model.PlayerName{"Alice"})

	_, err := controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Empty(s.renderer.Messages())

	_, err = controller.LoadNextPuzzle(s.ctx)
	s.ErrorIs(err, model.ErrLayoutOverflow)
	s.Equal([]string{"Puzzle 2 does not fit on the board and was skipped."}, s.renderer.Messages())
	s.Equal("Puzzle 2 does not fit on the board and was skipped.", controller.Snapshot().Message)
}

func (s *ControllerSuite) TestLoadNextPuzzleResetsPerPuzzleState() {
	s.startTurn("Alice", 500)
	_, err := s.controller.RequestLetter(s.ctx, 'F')
	s.Require().NoError(err)
	s.finishReveals()
	s.Require().NoError(s.controller.EnterSpin(s.ctx, 300))

	_, err = s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)

	snap := s.controller.Snapshot()
	s.Empty(snap.RequestedLetters)
	s.Nil(snap.PendingSpin)
	s.Equal(0, snap.Grid.RevealedCount())
	s.True(s.renderer.ButtonStates()['F'])

	// Scores carry across puzzles
	score, err := s.controller.RetrieveScore(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(1000, score)
}

// SelectPlayer / EnterSpin tests

func (s *ControllerSuite) TestSelectUnknownPlayer() {
	err := s.controller.SelectPlayer(s.ctx, "Mallory")
	s.ErrorIs(err, model.ErrUnknownPlayer)
	s.Nil(s.controller.Snapshot().SelectedPlayer)
}

func (s *ControllerSuite) TestEnterSpin() {
	s.Require().NoError(s.controller.EnterSpin(s.ctx, 650))

	snap := s.controller.Snapshot()
	s.Require().NotNil(snap.PendingSpin)
	s.Equal(650, *snap.PendingSpin)
}

func (s *ControllerSuite) TestEnterNegativeSpin() {
	err := s.controller.EnterSpin(s.ctx, -100)
	s.ErrorIs(err, model.ErrInvalidSpinAmount)
	s.Nil(s.controller.Snapshot().PendingSpin)
}

// RequestLetter tests

func (s *ControllerSuite) TestRequestLetterPaysPerMatch() {
	s.startTurn("Alice", 500)

	result, err := s.controller.RequestLetter(s.ctx, 'F')
	s.Require().NoError(err)

	s.Equal('F', result.Letter)
	s.Equal(2, result.Count)
	s.Equal(1000, result.Payout)
	s.Equal(0, result.VowelCost)
	s.Equal(1000, result.Score)

	score, _ := s.controller.RetrieveScore(s.ctx, "Alice")
	s.Equal(1000, score)
	s.Equal([]model.Player{{Name: "Alice", Score: 1000}, {Name: "Bob"}, {Name: "Carol"}}, s.renderer.LastScores())
}

func (s *ControllerSuite) TestRequestLetterIsCaseInsensitive() {
	s.startTurn("Alice", 100)

	result, err := s.controller.RequestLetter(s.ctx, 'r')
	s.Require().NoError(err)
	s.Equal('R', result.Letter)
	s.Equal(1, result.Count)
}

func (s *ControllerSuite) TestRequestLetterNoMatches() {
	s.startTurn("Alice", 500)

	result, err := s.controller.RequestLetter(s.ctx, 'Z')
	s.Require().NoError(err)

	s.Equal(0, result.Count)
	s.Equal(0, result.Payout)
	s.False(s.controller.RevealInProgress())
	s.Nil(s.controller.Snapshot().PendingSpin, "spin is consumed even with no matches")

	score, _ := s.controller.RetrieveScore(s.ctx, "Alice")
	s.Equal(0, score)
}

func (s *ControllerSuite) TestRequestLetterRevealsSequentially() {
	s.startTurn("Alice", 500)

	_, err := s.controller.RequestLetter(s.ctx, 'F')
	s.Require().NoError(err)

	// First F at row 1 col 8 is revealing, second waits
	first := model.Position{Row: 0, Col: 8}
	second := model.Position{Row: 1, Col: 1}
	grid := s.controller.Snapshot().Grid
	s.True(grid.Get(first).Revealing)
	s.False(grid.Get(first).Revealed)
	s.False(grid.Get(second).Revealing)

	s.clock.Advance(s.cfg.LetterRevealDelay - time.Millisecond)
	s.False(s.controller.Snapshot().Grid.Get(first).Revealed)

	s.clock.Advance(time.Millisecond)
	grid = s.controller.Snapshot().Grid
	s.True(grid.Get(first).Revealed)
	s.True(grid.Get(second).Revealing)

	s.clock.Advance(s.cfg.LetterRevealDelay)
	grid = s.controller.Snapshot().Grid
	s.True(grid.Get(second).Revealed)
	s.Equal(2, grid.RevealedCount())
	s.False(s.controller.RevealInProgress())
}

func (s *ControllerSuite) TestRequestLetterBlockedDuringReveal() {
	s.startTurn("Alice", 500)
	_, err := s.controller.RequestLetter(s.ctx, 'F')
	s.Require().NoError(err)
	s.Require().NoError(s.controller.EnterSpin(s.ctx, 500))

	_, err = s.controller.RequestLetter(s.ctx, 'R')
	s.ErrorIs(err, model.ErrRevealInProgress)
	_, err = s.controller.SubmitSolve(s.ctx, "WHEEL OF FORTUNE")
	s.ErrorIs(err, model.ErrRevealInProgress)
	_, err = s.controller.LoadNextPuzzle(s.ctx)
	s.ErrorIs(err, model.ErrRevealInProgress)

	s.finishReveals()

	_, err = s.controller.RequestLetter(s.ctx, 'R')
	s.NoError(err)
}

func (s *ControllerSuite) TestRequestLetterWithoutSpin() {
	_, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.controller.SelectPlayer(s.ctx, "Alice"))

	_, err = s.controller.RequestLetter(s.ctx, 'F')
	s.ErrorIs(err, model.ErrNoSpinAmount)
	s.Contains(s.renderer.Messages(), MessageNoSpinAmount)
	s.Empty(s.controller.Snapshot().RequestedLetters)
}

func (s *ControllerSuite) TestRequestLetterSpinConsumed() {
	s.startTurn("Alice", 500)
	_, err := s.controller.RequestLetter(s.ctx, 'Z')
	s.Require().NoError(err)

	_, err = s.controller.RequestLetter(s.ctx, 'F')
	s.ErrorIs(err, model.ErrNoSpinAmount)
}

func (s *ControllerSuite) TestRequestLetterWithoutPlayer() {
	_, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.controller.EnterSpin(s.ctx, 500))

	_, err = s.controller.RequestLetter(s.ctx, 'F')
	s.ErrorIs(err, model.ErrNoPlayerSelected)
	s.ErrorIs(err, model.ErrUnknownPlayer)
	s.Equal(0, s.controller.Snapshot().Grid.RevealedCount())
}

func (s *ControllerSuite) TestRequestLetterWithNoPlayersLoaded() {
	controller := s.newController([]string{"WHEEL OF FORTUNE"}, nil)
	_, err := controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(controller.EnterSpin(s.ctx, 500))

	_, err = controller.RequestLetter(s.ctx, 'F')
	s.ErrorIs(err, model.ErrUnknownPlayer)
}

func (s *ControllerSuite) TestRequestLetterAlreadyRequested() {
	s.startTurn("Alice", 500)
	_, err := s.controller.RequestLetter(s.ctx, 'Z')
	s.Require().NoError(err)
	s.Require().NoError(s.controller.EnterSpin(s.ctx, 500))

	_, err = s.controller.RequestLetter(s.ctx, 'z')
	s.ErrorIs(err, model.ErrLetterAlreadyRequested)
	s.False(s.renderer.ButtonStates()['Z'])
}

func (s *ControllerSuite) TestRequestLetterInvalid() {
	s.startTurn("Alice", 500)

	_, err := s.controller.RequestLetter(s.ctx, '7')
	s.ErrorIs(err, model.ErrInvalidLetter)
}

func (s *ControllerSuite) TestRequestLetterBeforePuzzle() {
	s.Require().NoError(s.controller.SelectPlayer(s.ctx, "Alice"))
	s.Require().NoError(s.controller.EnterSpin(s.ctx, 500))

	_, err := s.controller.RequestLetter(s.ctx, 'F')
	s.ErrorIs(err, model.ErrNoActivePuzzle)
}

func (s *ControllerSuite) TestRequestLetterDisablesButton() {
	s.startTurn("Alice", 500)

	_, err := s.controller.RequestLetter(s.ctx, 'W')
	s.Require().NoError(err)

	enabled, ok := s.renderer.ButtonStates()['W']
	s.True(ok)
	s.False(enabled)
	s.Equal([]rune{'W'}, s.controller.Snapshot().RequestedLetters)
}

// Vowel tests

func (s *ControllerSuite) TestVowelPurchasesUntilFundsRunOut() {
	controller := s.newController([]string{"XYZ"}, []model.PlayerName{"Alice"})
	_, err := controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(controller.SelectPlayer(s.ctx, "Alice"))
	_, err = controller.UpdateScore(s.ctx, "Alice", model.Adjust(2500))
	s.Require().NoError(err)

	for _, vowel := range []rune{'A', 'E'} {
		s.Require().NoError(controller.EnterSpin(s.ctx, 0))
		result, err := controller.RequestLetter(s.ctx, vowel)
		s.Require().NoError(err)
		s.Equal(1000, result.VowelCost)
	}

	score, _ := controller.RetrieveScore(s.ctx, "Alice")
	s.Equal(500, score)

	s.Require().NoError(controller.EnterSpin(s.ctx, 0))
	_, err = controller.RequestLetter(s.ctx, 'I')
	s.ErrorIs(err, model.ErrInsufficientFunds)

	score, _ = controller.RetrieveScore(s.ctx, "Alice")
	s.Equal(500, score)
	s.Contains(s.renderer.Messages(), "Alice needs at least $1000 to purchase a vowel!")
}

func (s *ControllerSuite) TestVowelCostAndPayoutAreSeparate() {
	s.startTurn("Alice", 500)
	s.setScore("Alice", 1000)
	s.Require().NoError(s.controller.EnterSpin(s.ctx, 300))

	result, err := s.controller.RequestLetter(s.ctx, 'E')
	s.Require().NoError(err)

	s.Equal(3, result.Count)
	s.Equal(900, result.Payout)
	s.Equal(900, result.Score, "1000 - 1000 + 3*300")
}

func (s *ControllerSuite) TestVowelInsufficientFundsChangesNothing() {
	s.startTurn("Alice", 500)
	s.setScore("Alice", 999)

	_, err := s.controller.RequestLetter(s.ctx, 'O')
	s.ErrorIs(err, model.ErrInsufficientFunds)

	snap := s.controller.Snapshot()
	s.Equal(0, snap.Grid.RevealedCount())
	s.False(snap.RevealInProgress)
	s.Empty(snap.RequestedLetters)
	s.NotNil(snap.PendingSpin, "spin is kept after a refused vowel")
	score, _ := s.controller.RetrieveScore(s.ctx, "Alice")
	s.Equal(999, score)
}

// SubmitSolve tests

func (s *ControllerSuite) TestSolveCorrect() {
	s.startTurn("Bob", 500)

	result, err := s.controller.SubmitSolve(s.ctx, "wheel of fortune")
	s.Require().NoError(err)

	s.Equal(model.PlayerName("Bob"), result.Player)
	s.Equal(5000, result.Bonus)
	s.Equal(5000, result.Score)
	s.Equal(model.GamePhasePuzzleSolved, s.controller.Snapshot().Phase)
	s.Contains(s.renderer.Messages(), MessageWin)
}

func (s *ControllerSuite) TestSolveRevealsEveryHiddenTile() {
	s.startTurn("Bob", 500)
	_, err := s.controller.RequestLetter(s.ctx, 'F')
	s.Require().NoError(err)
	s.finishReveals()

	_, err = s.controller.SubmitSolve(s.ctx, "WHEEL OF FORTUNE")
	s.Require().NoError(err)

	// 12 hidden tiles at half a second each
	s.clock.Advance(11 * s.cfg.SolveRevealDelay)
	s.True(s.controller.RevealInProgress())
	s.Equal(13, s.controller.Snapshot().Grid.RevealedCount())

	s.clock.Advance(s.cfg.SolveRevealDelay)
	s.False(s.controller.RevealInProgress())
	s.Equal(14, s.controller.Snapshot().Grid.RevealedCount())
}

func (s *ControllerSuite) TestSolveIncorrect() {
	s.startTurn("Bob", 500)

	_, err := s.controller.SubmitSolve(s.ctx, "WHEEL OF  FORTUNE")
	s.ErrorIs(err, model.ErrIncorrectGuess)

	snap := s.controller.Snapshot()
	s.Equal(model.GamePhasePuzzleActive, snap.Phase)
	s.Equal(0, snap.Grid.RevealedCount())
	s.Contains(s.renderer.Messages(), MessageIncorrectGuess)
	score, _ := s.controller.RetrieveScore(s.ctx, "Bob")
	s.Equal(0, score)
}

func (s *ControllerSuite) TestSolveTwice() {
	s.startTurn("Bob", 500)
	_, err := s.controller.SubmitSolve(s.ctx, "WHEEL OF FORTUNE")
	s.Require().NoError(err)
	s.finishReveals()

	_, err = s.controller.SubmitSolve(s.ctx, "WHEEL OF FORTUNE")
	s.ErrorIs(err, model.ErrPuzzleSolved)
	_, err = s.controller.RequestLetter(s.ctx, 'W')
	s.ErrorIs(err, model.ErrPuzzleSolved)
}

func (s *ControllerSuite) TestSolveWithoutPlayer() {
	_, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)

	_, err = s.controller.SubmitSolve(s.ctx, "WHEEL OF FORTUNE")
	s.ErrorIs(err, model.ErrNoPlayerSelected)
	s.Equal(model.GamePhasePuzzleActive, s.controller.Snapshot().Phase)
}

// Bankrupt and score tests

func (s *ControllerSuite) TestBankruptResetsOnlySelectedPlayer() {
	s.startTurn("Alice", 500)
	s.setScore("Alice", 4200)
	s.setScore("Bob", 700)

	err := s.controller.Bankrupt(s.ctx)
	s.Require().NoError(err)

	alice, _ := s.controller.RetrieveScore(s.ctx, "Alice")
	bob, _ := s.controller.RetrieveScore(s.ctx, "Bob")
	s.Equal(0, alice)
	s.Equal(700, bob)
}

func (s *ControllerSuite) TestBankruptWithoutPlayer() {
	err := s.controller.Bankrupt(s.ctx)
	s.ErrorIs(err, model.ErrNoPlayerSelected)
}

func (s *ControllerSuite) TestUpdateScoreSubtractOneIsNotBankrupt() {
	s.setScore("Alice", 100)

	score, err := s.controller.UpdateScore(s.ctx, "Alice", model.Adjust(-1))
	s.Require().NoError(err)
	s.Equal(99, score)
}

func (s *ControllerSuite) TestUnknownPlayerScoreAccess() {
	_, err := s.controller.RetrieveScore(s.ctx, "Mallory")
	s.ErrorIs(err, model.ErrUnknownPlayer)

	_, err = s.controller.UpdateScore(s.ctx, "Mallory", model.Adjust(100))
	s.ErrorIs(err, model.ErrUnknownPlayer)

	for _, p := range s.controller.Scores() {
		s.Equal(0, p.Score)
	}
}

// SpinWheel tests

func (s *ControllerSuite) TestSpinWheelCashSetsPendingSpin() {
	_, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.controller.SelectPlayer(s.ctx, "Alice"))
	s.random.QueueIntn(14)

	wedge, err := s.controller.SpinWheel(s.ctx)
	s.Require().NoError(err)
	s.Equal(wheel.Wedge{Kind: wheel.WedgeCash, Amount: 1000}, wedge)

	snap := s.controller.Snapshot()
	s.Require().NotNil(snap.PendingSpin)
	s.Equal(1000, *snap.PendingSpin)
}

func (s *ControllerSuite) TestSpinWheelBankrupt() {
	s.startTurn("Alice", 500)
	s.setScore("Alice", 3000)
	s.random.QueueIntn(7)

	wedge, err := s.controller.SpinWheel(s.ctx)
	s.Require().NoError(err)
	s.Equal(wheel.WedgeBankrupt, wedge.Kind)

	score, _ := s.controller.RetrieveScore(s.ctx, "Alice")
	s.Equal(0, score)
	s.Nil(s.controller.Snapshot().PendingSpin)
}

func (s *ControllerSuite) TestSpinWheelWithoutPlayer() {
	_, err := s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)

	_, err = s.controller.SpinWheel(s.ctx)
	s.ErrorIs(err, model.ErrNoPlayerSelected)
}

// Reveal token tests

func (s *ControllerSuite) TestCompleteRevealUnknownToken() {
	err := s.controller.CompleteReveal("not-a-token")
	s.ErrorIs(err, model.ErrUnknownRevealToken)
}

func (s *ControllerSuite) TestCompleteRevealOutOfOrderRejected() {
	s.startTurn("Alice", 500)
	_, err := s.controller.RequestLetter(s.ctx, 'E')
	s.Require().NoError(err)

	s.controller.mu.Lock()
	second := s.controller.reveals[1].token
	s.controller.mu.Unlock()

	s.ErrorIs(s.controller.CompleteReveal(second), model.ErrUnknownRevealToken)
	s.Equal(0, s.controller.Snapshot().Grid.RevealedCount())
}

// Full game scenario

func (s *ControllerSuite) TestPlayThroughAllPuzzles() {
	s.startTurn("Alice", 500)
	_, err := s.controller.RequestLetter(s.ctx, 'F')
	s.Require().NoError(err)
	s.finishReveals()

	s.Require().NoError(s.controller.SelectPlayer(s.ctx, "Bob"))
	_, err = s.controller.SubmitSolve(s.ctx, "Wheel of Fortune")
	s.Require().NoError(err)
	s.finishReveals()

	_, err = s.controller.LoadNextPuzzle(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.controller.SelectPlayer(s.ctx, "Carol"))
	_, err = s.controller.SubmitSolve(s.ctx, "back to the drawing board")
	s.Require().NoError(err)
	s.finishReveals()

	_, err = s.controller.LoadNextPuzzle(s.ctx)
	s.ErrorIs(err, model.ErrPuzzlesExhausted)

	s.Equal([]model.Player{
		{Name: "Alice", Score: 1000},
		{Name: "Bob", Score: 5000},
		{Name: "Carol", Score: 5000},
	}, s.controller.Scores())
}

func (s *ControllerSuite) TestNotifyRecordsLatestMessage() {
	s.controller.Notify(s.ctx, MessagePuzzlesMissing)

	s.Equal(MessagePuzzlesMissing, s.controller.Snapshot().Message)
	s.Equal([]string{MessagePuzzlesMissing}, s.renderer.Messages())
}
