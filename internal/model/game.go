package model

// GamePhase represents where the game is in its puzzle cycle
type GamePhase string

const (
	GamePhaseAwaitingPuzzle GamePhase = "awaiting_puzzle" // No puzzle loaded yet
	GamePhasePuzzleActive   GamePhase = "puzzle_active"   // Letters and solves accepted
	GamePhasePuzzleSolved   GamePhase = "puzzle_solved"   // Waiting for the next puzzle
	GamePhaseExhausted      GamePhase = "exhausted"       // Every puzzle has been shown
)

// Game is the full turn and score state for one session
type Game struct {
	Phase GamePhase

	// Puzzle tracking
	NextPuzzleIndex int     // index of the next unseen puzzle, never decreases
	CurrentPuzzle   *Puzzle // nil until the first puzzle loads
	Grid            *BoardGrid

	// Scoreboard
	Players []PlayerName       // seat order
	Scores  map[PlayerName]int // keyed by player name

	// Intent state set by the presentation layer
	SelectedPlayer *PlayerName // nil when no player is chosen
	PendingSpin    *int        // nil when no spin value has been entered

	// Letters requested during the current puzzle
	RequestedLetters map[rune]bool

	LastMessage string // most recent notice shown to players
}

// NewGame creates a game with all scores at zero
func NewGame(players []PlayerName, capacities []int) *Game {
	scores := make(map[PlayerName]int, len(players))
	for _, p := range players {
		scores[p] = 0
	}
	return &Game{
		Phase:            GamePhaseAwaitingPuzzle,
		Grid:             NewBoardGrid(capacities),
		Players:          players,
		Scores:           scores,
		RequestedLetters: make(map[rune]bool),
	}
}

// HasPlayer returns true if the name is on the scoreboard
func (g *Game) HasPlayer(name PlayerName) bool {
	_, ok := g.Scores[name]
	return ok
}

// Standings returns players in seat order with their scores
func (g *Game) Standings() []Player {
	result := make([]Player, 0, len(g.Players))
	for _, name := range g.Players {
		result = append(result, Player{Name: name, Score: g.Scores[name]})
	}
	return result
}

// IsLetterAvailable returns true if the letter has not been requested this puzzle
func (g *Game) IsLetterAvailable(letter rune) bool {
	return !g.RequestedLetters[letter]
}

// Snapshot is a read-only copy of the game handed to the presentation layer
type Snapshot struct {
	Phase            GamePhase
	PuzzleID         *PuzzleID
	PuzzlesShown     int
	PuzzleCount      int
	Grid             *BoardGrid
	Players          []Player
	SelectedPlayer   *PlayerName
	PendingSpin      *int
	RequestedLetters []rune
	RevealInProgress bool
	Message          string
}
