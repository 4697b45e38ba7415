package board

import (
	"fmt"
	"strings"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// cursor tracks where the previous word left off. Rows and tiles are 1-based here
// and converted to 0-indexed positions only when a letter is placed.
type cursor struct {
	row         int
	remaining   int  // usable spaces left in the row, counting one space after each word
	stoppedOn   int  // tile reserved as the gap after the last word, 0 before any word
	onFirstWord bool // no word has been placed in this row yet
}

// Layout places the words of a phrase onto the grid using word wrap and returns
// the letter at every filled position. The grid is only used for its shape.
//
// A word stays on the current row only if it is strictly shorter than the
// remaining space; otherwise it starts a new row. Tile 1 of every row is the
// reserved end tile, and a single blank tile separates words on the same row.
func Layout(words []string, grid *model.BoardGrid) (model.Layout, error) {
	if grid.RowCount() == 0 {
		return nil, model.ErrLayoutOverflow
	}

	layout := make(model.Layout)
	cur := cursor{
		row:         1,
		remaining:   grid.UsableCapacity(0),
		onFirstWord: true,
	}

	for i, word := range words {
		letters := []rune(strings.ToUpper(word))
		if len(letters) == 0 {
			return nil, fmt.Errorf("word %d: %w", i+1, model.ErrEmptyWord)
		}

		wrapped := false
		if len(letters) >= cur.remaining {
			cur.row++
			if cur.row > grid.RowCount() {
				return nil, fmt.Errorf("%q needs row %d of %d: %w", word, cur.row, grid.RowCount(), model.ErrLayoutOverflow)
			}
			cur.remaining = grid.UsableCapacity(cur.row - 1)
			cur.stoppedOn = 0
			cur.onFirstWord = true
			wrapped = true

			if len(letters) > cur.remaining {
				return nil, fmt.Errorf("%q is longer than row %d: %w", word, cur.row, model.ErrLayoutOverflow)
			}
		}

		if err := cur.place(letters, wrapped, grid.Capacity(cur.row-1), layout); err != nil {
			return nil, fmt.Errorf("%q: %w", word, err)
		}

		// One extra space for the gap after the word, whether or not we wrapped
		cur.remaining -= len(letters) + 1
	}

	return layout, nil
}

// place walks the current row left to right and assigns letters to free tiles.
// The tile counter restarts at 1 for every word, so the loop index is the tile.
func (c *cursor) place(letters []rune, wrapped bool, capacity int, layout model.Layout) error {
	index := 0
	for tile := 1; tile <= capacity; tile++ {
		if tile == 1 || c.consumed(tile, wrapped) {
			continue
		}

		layout[model.Position{Row: c.row - 1, Col: tile - 1}] = letters[index]

		if index+1 == len(letters) {
			c.stoppedOn = tile + 1
			c.onFirstWord = false
			return nil
		}
		index++
	}
	return model.ErrLayoutOverflow
}

// consumed reports whether an earlier word in this row already used the tile.
// Right after a row switch the gap tile itself counts as free (<); otherwise it
// is skipped too (<=). Both comparisons are kept because they decide the
// starting column of a word.
func (c *cursor) consumed(tile int, wrapped bool) bool {
	if c.onFirstWord {
		return false
	}
	if wrapped {
		return tile < c.stoppedOn
	}
	return tile <= c.stoppedOn
}
