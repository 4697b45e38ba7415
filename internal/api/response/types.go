package response

import (
	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/services/wheel"
)

// Tile states
const (
	TileEnd       = "end"
	TileBlank     = "blank"
	TileHidden    = "hidden"
	TileRevealing = "revealing"
	TileRevealed  = "revealed"
)

// Tile represents one board slot. Letter is only set once the tile is revealed.
type Tile struct {
	State  string `json:"state"`
	Letter string `json:"letter,omitempty"`
}

// Board represents the puzzle board, row by row
type Board struct {
	Rows [][]Tile `json:"rows"`
}

// BoardFromModel converts a grid, dropping the letters of hidden tiles
func BoardFromModel(grid *model.BoardGrid) Board {
	grid = grid.Redacted()
	rows := make([][]Tile, grid.RowCount())
	for row := range rows {
		capacity := grid.Capacity(row)
		rows[row] = make([]Tile, capacity)
		for col := 0; col < capacity; col++ {
			slot := grid.Get(model.Position{Row: row, Col: col})
			tile := Tile{State: TileBlank}
			switch {
			case col == 0 || col == capacity-1:
				tile.State = TileEnd
			case !slot.Filled:
			case slot.Revealed:
				tile.State = TileRevealed
				tile.Letter = string(slot.Letter)
			case slot.Revealing:
				tile.State = TileRevealing
			default:
				tile.State = TileHidden
			}
			rows[row][col] = tile
		}
	}
	return Board{Rows: rows}
}

// Score represents a player's standing
type Score struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// ScoresFromModel converts players in seat order
func ScoresFromModel(players []model.Player) []Score {
	result := make([]Score, len(players))
	for i, p := range players {
		result[i] = Score{Player: string(p.Name), Score: p.Score}
	}
	return result
}

// Players is the response for the scoreboard
type Players struct {
	Players []Score `json:"players"`
	Leader  *string `json:"leader"` // nil when nobody leads outright
}

// GameState represents the publicly visible state of the game
type GameState struct {
	Phase            string   `json:"phase"`
	PuzzleID         *int     `json:"puzzle_id"`
	PuzzlesShown     int      `json:"puzzles_shown"`
	PuzzleCount      int      `json:"puzzle_count"`
	Board            Board    `json:"board"`
	Players          []Score  `json:"players"`
	SelectedPlayer   *string  `json:"selected_player"`
	PendingSpin      *int     `json:"pending_spin"`
	RequestedLetters []string `json:"requested_letters"`
	RevealInProgress bool     `json:"reveal_in_progress"`
	Message          string   `json:"message,omitempty"`
}

// GameStateFromSnapshot converts a controller snapshot
func GameStateFromSnapshot(snap model.Snapshot) GameState {
	resp := GameState{
		Phase:            string(snap.Phase),
		PuzzlesShown:     snap.PuzzlesShown,
		PuzzleCount:      snap.PuzzleCount,
		Board:            BoardFromModel(snap.Grid),
		Players:          ScoresFromModel(snap.Players),
		PendingSpin:      snap.PendingSpin,
		RequestedLetters: make([]string, 0, len(snap.RequestedLetters)),
		RevealInProgress: snap.RevealInProgress,
		Message:          snap.Message,
	}
	if snap.PuzzleID != nil {
		id := int(*snap.PuzzleID)
		resp.PuzzleID = &id
	}
	if snap.SelectedPlayer != nil {
		name := string(*snap.SelectedPlayer)
		resp.SelectedPlayer = &name
	}
	for _, r := range snap.RequestedLetters {
		resp.RequestedLetters = append(resp.RequestedLetters, string(r))
	}
	return resp
}

// LetterResult is the response for a letter request
type LetterResult struct {
	Letter    string `json:"letter"`
	Player    string `json:"player"`
	Count     int    `json:"count"`
	Spin      int    `json:"spin"`
	Payout    int    `json:"payout"`
	VowelCost int    `json:"vowel_cost"`
	Score     int    `json:"score"`
}

// LetterResultFromModel converts a controller letter result
func LetterResultFromModel(r *game.LetterResult) LetterResult {
	return LetterResult{
		Letter:    string(r.Letter),
		Player:    string(r.Player),
		Count:     r.Count,
		Spin:      r.Spin,
		Payout:    r.Payout,
		VowelCost: r.VowelCost,
		Score:     r.Score,
	}
}

// SolveResult is the response for a correct solve
type SolveResult struct {
	Player string `json:"player"`
	Bonus  int    `json:"bonus"`
	Score  int    `json:"score"`
}

// SolveResultFromModel converts a controller solve result
func SolveResultFromModel(r *game.SolveResult) SolveResult {
	return SolveResult{
		Player: string(r.Player),
		Bonus:  r.Bonus,
		Score:  r.Score,
	}
}

// SpinResult is the response for a wheel spin
type SpinResult struct {
	Wedge       wheel.Wedge `json:"wedge"`
	PendingSpin *int        `json:"pending_spin"`
}
