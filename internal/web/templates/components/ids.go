package components

import (
	"fmt"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// Element IDs targeted by SSE out-of-band swaps
const (
	BoardID       = "board"
	ScoreboardID  = "scoreboard"
	MessageID     = "message"
	AlphabetID    = "alphabet"
	StatusID      = "status"
	PendingSpinID = "pending-spin"
)

// Form action paths posted by the page controls
const (
	ActionNext     = "/game/next"
	ActionSelect   = "/game/select"
	ActionSpin     = "/game/spin"
	ActionWheel    = "/game/wheel"
	ActionLetter   = "/game/letter"
	ActionSolve    = "/game/solve"
	ActionBankrupt = "/game/bankrupt"
)

// LetterButtonID returns the element ID of an alphabet button
func LetterButtonID(letter rune) string {
	return fmt.Sprintf("letter-%c", letter)
}

// TileState returns the CSS state of a tile
func TileState(grid *model.BoardGrid, pos model.Position) string {
	if pos.Col == 0 || pos.Col == grid.Capacity(pos.Row)-1 {
		return "end"
	}
	slot := grid.Get(pos)
	switch {
	case !slot.Filled:
		return "blank"
	case slot.Revealed:
		return "revealed"
	case slot.Revealing:
		return "revealing"
	default:
		return "hidden"
	}
}

// tileText is the visible text of a tile; only revealed tiles show a letter
func tileText(grid *model.BoardGrid, pos model.Position) string {
	if TileState(grid, pos) != "revealed" {
		return ""
	}
	return string(grid.Get(pos).Letter)
}

func isSelected(selected *model.PlayerName, name model.PlayerName) bool {
	return selected != nil && *selected == name
}

func isRequested(requested []rune, letter rune) bool {
	for _, r := range requested {
		if r == letter {
			return true
		}
	}
	return false
}

// statusText is the puzzle progress line
func statusText(snap model.Snapshot) string {
	switch {
	case snap.Phase == model.GamePhaseExhausted:
		return "All puzzles have been shown"
	case snap.Phase == model.GamePhaseAwaitingPuzzle && snap.PuzzlesShown == 0:
		return fmt.Sprintf("%d puzzles loaded", snap.PuzzleCount)
	default:
		return fmt.Sprintf("Puzzle %d of %d", snap.PuzzlesShown, snap.PuzzleCount)
	}
}
