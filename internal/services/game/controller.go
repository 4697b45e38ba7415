package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unicode"

	"github.com/mcoot/wheelgame-go/internal/dependencies/clock"
	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/board"
	"github.com/mcoot/wheelgame-go/internal/services/scoring"
	"github.com/mcoot/wheelgame-go/internal/services/wheel"
)

// User-facing messages
const (
	MessageNoSpinAmount   = "Please add the spin amount before pressing an Alphabet Button."
	MessageIncorrectGuess = "I'm sorry.  That phrase is incorrect."
	MessageWin            = "You win!"
	MessageNoPuzzles      = "There are no more puzzles."
	MessagePlayersMissing = "Player Names file not found."
	MessagePuzzlesMissing = "Puzzle file not found."

	// MessagePuzzleSkippedFmt takes the 1-based puzzle number
	MessagePuzzleSkippedFmt = "Puzzle %d does not fit on the board and was skipped."
)

// LetterResult describes the outcome of a letter request
type LetterResult struct {
	Letter    rune
	Player    model.PlayerName
	Count     int // matching tiles, 0 is a normal outcome
	Spin      int
	Payout    int
	VowelCost int // deducted before the payout, 0 for consonants
	Score     int // score after the request
}

// SolveResult describes a correct solve
type SolveResult struct {
	Player model.PlayerName
	Bonus  int
	Score  int
}

// Controller manages the turn and score state machine for one game
type Controller struct {
	cfg            Config
	puzzles        []*model.Puzzle
	boardService   *board.Service
	scoringService *scoring.Service
	wheel          wheel.Spinner
	clock          clock.Clock
	renderer       Renderer
	logger         *slog.Logger

	mu      sync.Mutex
	game    *model.Game
	reveals []pendingReveal
}

// NewController creates a new GameController over a fixed puzzle list and roster
func NewController(
	cfg Config,
	puzzles []*model.Puzzle,
	players []model.PlayerName,
	boardService *board.Service,
	scoringService *scoring.Service,
	spinner wheel.Spinner,
	clock clock.Clock,
	renderer Renderer,
	logger *slog.Logger,
) *Controller {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &Controller{
		cfg:            cfg,
		puzzles:        puzzles,
		boardService:   boardService,
		scoringService: scoringService,
		wheel:          spinner,
		clock:          clock,
		renderer:       renderer,
		logger:         logger,
		game:           model.NewGame(players, cfg.RowCapacities),
	}
}

// LoadNextPuzzle advances to the next unseen puzzle and lays it out hidden.
// The puzzle index advances even when the puzzle fails to fit the board.
func (c *Controller) LoadNextPuzzle(ctx context.Context) (*model.Puzzle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.reveals) > 0 {
		return nil, model.ErrRevealInProgress
	}

	if c.game.NextPuzzleIndex >= len(c.puzzles) {
		c.game.Phase = model.GamePhaseExhausted
		c.game.CurrentPuzzle = nil
		c.showMessage(MessageNoPuzzles)
		c.logger.Info("puzzles exhausted", slog.Int("puzzle_count", len(c.puzzles)))
		return nil, model.ErrPuzzlesExhausted
	}

	puzzle := c.puzzles[c.game.NextPuzzleIndex]
	c.game.NextPuzzleIndex++

	// Per-puzzle state is discarded whether or not the layout succeeds
	c.game.RequestedLetters = make(map[rune]bool)
	c.game.PendingSpin = nil
	for _, letter := range board.Alphabet() {
		c.renderer.SetAlphabetButtonEnabled(letter, true)
	}

	grid, err := c.boardService.PrepareGrid(puzzle)
	if err != nil {
		c.game.Phase = model.GamePhaseAwaitingPuzzle
		c.game.CurrentPuzzle = nil
		c.game.Grid = c.boardService.NewGrid()
		c.renderer.RenderGrid(c.game.Grid.Clone())
		c.showMessage(fmt.Sprintf(MessagePuzzleSkippedFmt, puzzle.ID+1))
		c.logger.Warn("puzzle skipped",
			slog.Int("puzzle_id", int(puzzle.ID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("puzzle %d: %w", puzzle.ID, err)
	}

	c.game.Phase = model.GamePhasePuzzleActive
	c.game.CurrentPuzzle = puzzle
	c.game.Grid = grid
	c.renderer.RenderGrid(c.game.Grid.Clone())

	c.logger.Info("puzzle loaded",
		slog.Int("puzzle_id", int(puzzle.ID)),
		slog.Int("words", puzzle.NumberOfWords),
		slog.Int("letters", puzzle.LetterCount()),
	)

	return puzzle, nil
}

// SelectPlayer chooses whose turn it is
func (c *Controller) SelectPlayer(ctx context.Context, name model.PlayerName) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.game.HasPlayer(name) {
		c.warnUnknownPlayer("select", name)
		return fmt.Errorf("%q: %w", name, model.ErrUnknownPlayer)
	}

	c.game.SelectedPlayer = &name
	return nil
}

// EnterSpin records the value the wheel landed on. Zero is a valid spin.
func (c *Controller) EnterSpin(ctx context.Context, amount int) error {
	if amount < 0 {
		return model.ErrInvalidSpinAmount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.game.PendingSpin = &amount
	return nil
}

// SpinWheel spins the wheel for the selected player. A bankrupt wedge resets
// their score; a cash wedge becomes the pending spin.
func (c *Controller) SpinWheel(ctx context.Context) (wheel.Wedge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.activePuzzleErr(); err != nil {
		return wheel.Wedge{}, err
	}
	player, err := c.selectedPlayer("spin")
	if err != nil {
		return wheel.Wedge{}, err
	}

	wedge := c.wheel.Spin()
	switch wedge.Kind {
	case wheel.WedgeBankrupt:
		c.game.PendingSpin = nil
		c.applyScoreOp(player, model.BankruptOp())
		c.showMessage(fmt.Sprintf("%s went bankrupt!", player))
	default:
		amount := wedge.Amount
		c.game.PendingSpin = &amount
	}

	return wedge, nil
}

// RequestLetter asks for every hidden occurrence of letter using the pending
// spin and the selected player. Vowels cost VowelCost up front. Matching tiles
// are revealed one at a time after the letter reveal delay; the score is
// updated immediately.
func (c *Controller) RequestLetter(ctx context.Context, letter rune) (*LetterResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.activePuzzleErr(); err != nil {
		return nil, err
	}
	if len(c.reveals) > 0 {
		return nil, model.ErrRevealInProgress
	}
	if err := board.ValidateLetter(letter); err != nil {
		return nil, fmt.Errorf("%q: %w", letter, err)
	}
	letter = unicode.ToUpper(letter)
	if !c.game.IsLetterAvailable(letter) {
		return nil, fmt.Errorf("%c: %w", letter, model.ErrLetterAlreadyRequested)
	}
	if c.game.PendingSpin == nil {
		c.showMessage(MessageNoSpinAmount)
		return nil, model.ErrNoSpinAmount
	}
	player, err := c.selectedPlayer("request letter")
	if err != nil {
		return nil, err
	}

	result := &LetterResult{
		Letter: letter,
		Player: player,
		Spin:   *c.game.PendingSpin,
	}

	if board.IsVowel(letter) {
		if !c.scoringService.CanAffordVowel(c.game.Scores[player]) {
			c.showMessage(fmt.Sprintf("%s needs at least $%d to purchase a vowel!", player, c.scoringService.VowelCost()))
			return nil, model.ErrInsufficientFunds
		}
		result.VowelCost = c.scoringService.VowelCost()
		c.game.Scores[player] = c.scoringService.ApplyOp(c.game.Scores[player], model.Adjust(-result.VowelCost))
		c.logger.Info("vowel purchased",
			slog.String("player", string(player)),
			slog.Int("cost", result.VowelCost),
		)
	}

	c.game.RequestedLetters[letter] = true
	c.renderer.SetAlphabetButtonEnabled(letter, false)

	matches := c.game.Grid.FindHidden(letter)
	result.Count = len(matches)
	result.Payout = c.scoringService.LetterPayout(result.Count, result.Spin)
	c.game.Scores[player] = c.scoringService.ApplyOp(c.game.Scores[player], model.Adjust(result.Payout))
	result.Score = c.game.Scores[player]
	c.game.PendingSpin = nil

	c.logger.Info("letter requested",
		slog.String("player", string(player)),
		slog.String("letter", string(letter)),
		slog.Int("count", result.Count),
		slog.Int("payout", result.Payout),
	)

	c.renderer.RenderScores(c.game.Standings())
	c.queueReveals(matches, c.cfg.LetterRevealDelay)

	return result, nil
}

// SubmitSolve compares guess with the phrase ignoring case. A correct guess
// awards the solve bonus and reveals every hidden tile in turn.
func (c *Controller) SubmitSolve(ctx context.Context, guess string) (*SolveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.activePuzzleErr(); err != nil {
		return nil, err
	}
	if len(c.reveals) > 0 {
		return nil, model.ErrRevealInProgress
	}
	player, err := c.selectedPlayer("solve")
	if err != nil {
		return nil, err
	}

	if !c.game.CurrentPuzzle.Matches(guess) {
		c.logger.Info("incorrect solve attempt",
			slog.String("player", string(player)),
			slog.Int("puzzle_id", int(c.game.CurrentPuzzle.ID)),
		)
		c.showMessage(MessageIncorrectGuess)
		return nil, model.ErrIncorrectGuess
	}

	bonus := c.scoringService.SolveBonus()
	c.game.Scores[player] = c.scoringService.ApplyOp(c.game.Scores[player], model.Adjust(bonus))
	c.game.Phase = model.GamePhasePuzzleSolved
	c.game.PendingSpin = nil

	c.logger.Info("puzzle solved",
		slog.String("player", string(player)),
		slog.Int("puzzle_id", int(c.game.CurrentPuzzle.ID)),
		slog.Int("bonus", bonus),
	)

	c.renderer.RenderScores(c.game.Standings())
	c.showMessage(MessageWin)
	c.queueReveals(c.game.Grid.HiddenPositions(), c.cfg.SolveRevealDelay)

	return &SolveResult{
		Player: player,
		Bonus:  bonus,
		Score:  c.game.Scores[player],
	}, nil
}

// Bankrupt resets the selected player's score to exactly zero
func (c *Controller) Bankrupt(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, err := c.selectedPlayer("bankrupt")
	if err != nil {
		return err
	}

	c.applyScoreOp(player, model.BankruptOp())
	return nil
}

// RetrieveScore returns a player's score
func (c *Controller) RetrieveScore(ctx context.Context, name model.PlayerName) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.game.HasPlayer(name) {
		c.warnUnknownPlayer("retrieve score", name)
		return 0, fmt.Errorf("%q: %w", name, model.ErrUnknownPlayer)
	}
	return c.game.Scores[name], nil
}

// UpdateScore applies op to a player's score and returns the new score
func (c *Controller) UpdateScore(ctx context.Context, name model.PlayerName, op model.ScoreOp) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.game.HasPlayer(name) {
		c.warnUnknownPlayer("update score", name)
		return 0, fmt.Errorf("%q: %w", name, model.ErrUnknownPlayer)
	}
	return c.applyScoreOp(name, op), nil
}

// Scores returns players in seat order with their scores
func (c *Controller) Scores() []model.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Standings()
}

// Snapshot returns a read-only copy of the game. Hidden letters are included
// in the grid; callers that publish it must use Grid.Redacted.
func (c *Controller) Snapshot() model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := model.Snapshot{
		Phase:            c.game.Phase,
		PuzzlesShown:     c.game.NextPuzzleIndex,
		PuzzleCount:      len(c.puzzles),
		Grid:             c.game.Grid.Clone(),
		Players:          c.game.Standings(),
		RevealInProgress: len(c.reveals) > 0,
		Message:          c.game.LastMessage,
	}
	if c.game.CurrentPuzzle != nil {
		id := c.game.CurrentPuzzle.ID
		snap.PuzzleID = &id
	}
	if c.game.SelectedPlayer != nil {
		name := *c.game.SelectedPlayer
		snap.SelectedPlayer = &name
	}
	if c.game.PendingSpin != nil {
		spin := *c.game.PendingSpin
		snap.PendingSpin = &spin
	}
	for _, letter := range board.Alphabet() {
		if c.game.RequestedLetters[letter] {
			snap.RequestedLetters = append(snap.RequestedLetters, letter)
		}
	}
	return snap
}

// Notify shows a notice to players without changing game state
func (c *Controller) Notify(ctx context.Context, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showMessage(text)
}

// showMessage records text as the latest message and forwards it. Caller holds mu.
func (c *Controller) showMessage(text string) {
	c.game.LastMessage = text
	c.renderer.ShowMessage(text)
}

// activePuzzleErr returns why letters and solves are not accepted, if they are not. Caller holds mu.
func (c *Controller) activePuzzleErr() error {
	switch c.game.Phase {
	case model.GamePhasePuzzleActive:
		return nil
	case model.GamePhasePuzzleSolved:
		return model.ErrPuzzleSolved
	case model.GamePhaseExhausted:
		return model.ErrPuzzlesExhausted
	default:
		return model.ErrNoActivePuzzle
	}
}

// selectedPlayer returns the selected player or logs and fails. Caller holds mu.
func (c *Controller) selectedPlayer(action string) (model.PlayerName, error) {
	if c.game.SelectedPlayer == nil {
		c.logger.Warn("no player selected", slog.String("action", action))
		return "", model.ErrNoPlayerSelected
	}
	name := *c.game.SelectedPlayer
	if !c.game.HasPlayer(name) {
		c.warnUnknownPlayer(action, name)
		return "", fmt.Errorf("%q: %w", name, model.ErrUnknownPlayer)
	}
	return name, nil
}

// applyScoreOp updates a known player's score and redraws the scoreboard. Caller holds mu.
func (c *Controller) applyScoreOp(name model.PlayerName, op model.ScoreOp) int {
	c.game.Scores[name] = c.scoringService.ApplyOp(c.game.Scores[name], op)
	if op.Kind == model.ScoreOpBankrupt {
		c.logger.Info("player bankrupt", slog.String("player", string(name)))
	}
	c.renderer.RenderScores(c.game.Standings())
	return c.game.Scores[name]
}

func (c *Controller) warnUnknownPlayer(action string, name model.PlayerName) {
	c.logger.Warn("unknown player",
		slog.String("action", action),
		slog.String("player", string(name)),
	)
}

// Interface for dependency injection
type ControllerInterface interface {
	LoadNextPuzzle(ctx context.Context) (*model.Puzzle, error)
	SelectPlayer(ctx context.Context, name model.PlayerName) error
	EnterSpin(ctx context.Context, amount int) error
	SpinWheel(ctx context.Context) (wheel.Wedge, error)
	RequestLetter(ctx context.Context, letter rune) (*LetterResult, error)
	SubmitSolve(ctx context.Context, guess string) (*SolveResult, error)
	Bankrupt(ctx context.Context) error
	RetrieveScore(ctx context.Context, name model.PlayerName) (int, error)
	UpdateScore(ctx context.Context, name model.PlayerName, op model.ScoreOp) (int, error)
	CompleteReveal(token RevealToken) error
	RevealInProgress() bool
	Scores() []model.Player
	Snapshot() model.Snapshot
	Notify(ctx context.Context, text string)
}

var _ ControllerInterface = (*Controller)(nil)
