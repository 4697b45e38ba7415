package model

import "strings"

// ReservedTilesPerRow is the number of end tiles in every row that never hold letters
const ReservedTilesPerRow = 2

// DefaultRowCapacities is the standard board shape, top to bottom
var DefaultRowCapacities = []int{12, 14, 14, 12}

// Position identifies a tile slot on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left, the reserved end tile is column 0
}

// TileSlot is one cell of the puzzle board
type TileSlot struct {
	Letter    rune // 0 means no letter was placed here
	Filled    bool // a letter was placed by the puzzle layout
	Revealing bool // reveal has begun but not completed
	Revealed  bool // letter is visible to players
}

// IsHidden returns true if the slot holds a letter that players cannot see yet
func (t TileSlot) IsHidden() bool {
	return t.Filled && !t.Revealed
}

// Layout maps board positions to the letters the layout engine placed there
type Layout map[Position]rune

// BoardGrid is the fixed-topology puzzle board
type BoardGrid struct {
	Rows [][]TileSlot // Rows[row][col]; each row has its own capacity
}

// NewBoardGrid creates an empty grid with the given per-row capacities
func NewBoardGrid(capacities []int) *BoardGrid {
	rows := make([][]TileSlot, len(capacities))
	for i, c := range capacities {
		rows[i] = make([]TileSlot, c)
	}
	return &BoardGrid{Rows: rows}
}

// RowCount returns the number of rows
func (g *BoardGrid) RowCount() int {
	return len(g.Rows)
}

// Capacity returns the declared tile count of a row, or 0 for an invalid row
func (g *BoardGrid) Capacity(row int) int {
	if row < 0 || row >= len(g.Rows) {
		return 0
	}
	return len(g.Rows[row])
}

// UsableCapacity returns the number of tiles in a row that may hold letters
func (g *BoardGrid) UsableCapacity(row int) int {
	c := g.Capacity(row) - ReservedTilesPerRow
	if c < 0 {
		return 0
	}
	return c
}

// Capacities returns the declared tile count of every row
func (g *BoardGrid) Capacities() []int {
	caps := make([]int, len(g.Rows))
	for i := range g.Rows {
		caps[i] = len(g.Rows[i])
	}
	return caps
}

// IsValidPosition returns true if the position is within bounds
func (g *BoardGrid) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(g.Rows) && pos.Col >= 0 && pos.Col < len(g.Rows[pos.Row])
}

// Get returns the slot at the given position, or an empty slot if out of bounds
func (g *BoardGrid) Get(pos Position) TileSlot {
	if !g.IsValidPosition(pos) {
		return TileSlot{}
	}
	return g.Rows[pos.Row][pos.Col]
}

// Fill places a hidden letter at the given position
func (g *BoardGrid) Fill(pos Position, letter rune) {
	if g.IsValidPosition(pos) {
		g.Rows[pos.Row][pos.Col] = TileSlot{Letter: letter, Filled: true}
	}
}

// ApplyLayout fills every position of the layout with its letter, hidden
func (g *BoardGrid) ApplyLayout(layout Layout) {
	for pos, letter := range layout {
		g.Fill(pos, letter)
	}
}

// BeginReveal marks a filled slot as revealing
func (g *BoardGrid) BeginReveal(pos Position) {
	if g.IsValidPosition(pos) && g.Rows[pos.Row][pos.Col].Filled {
		g.Rows[pos.Row][pos.Col].Revealing = true
	}
}

// Reveal makes a filled slot visible
func (g *BoardGrid) Reveal(pos Position) {
	if g.IsValidPosition(pos) && g.Rows[pos.Row][pos.Col].Filled {
		g.Rows[pos.Row][pos.Col].Revealing = false
		g.Rows[pos.Row][pos.Col].Revealed = true
	}
}

// Reset clears every slot
func (g *BoardGrid) Reset() {
	for row := range g.Rows {
		for col := range g.Rows[row] {
			g.Rows[row][col] = TileSlot{}
		}
	}
}

// FindHidden returns the positions of hidden slots holding the letter, in reading order
func (g *BoardGrid) FindHidden(letter rune) []Position {
	var result []Position
	for row := range g.Rows {
		for col, slot := range g.Rows[row] {
			if slot.IsHidden() && slot.Letter == letter {
				result = append(result, Position{Row: row, Col: col})
			}
		}
	}
	return result
}

// HiddenPositions returns every filled slot not yet revealed, in reading order
func (g *BoardGrid) HiddenPositions() []Position {
	var result []Position
	for row := range g.Rows {
		for col, slot := range g.Rows[row] {
			if slot.IsHidden() {
				result = append(result, Position{Row: row, Col: col})
			}
		}
	}
	return result
}

// FilledCount returns the number of slots holding letters
func (g *BoardGrid) FilledCount() int {
	count := 0
	for row := range g.Rows {
		for _, slot := range g.Rows[row] {
			if slot.Filled {
				count++
			}
		}
	}
	return count
}

// RevealedCount returns the number of slots whose letters are visible
func (g *BoardGrid) RevealedCount() int {
	count := 0
	for row := range g.Rows {
		for _, slot := range g.Rows[row] {
			if slot.Filled && slot.Revealed {
				count++
			}
		}
	}
	return count
}

// RowText returns the letters of a row with blanks as spaces, trimmed
func (g *BoardGrid) RowText(row int) string {
	if row < 0 || row >= len(g.Rows) {
		return ""
	}
	var sb strings.Builder
	for _, slot := range g.Rows[row] {
		if slot.Filled {
			sb.WriteRune(slot.Letter)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}

// Text reconstructs the phrase on the board by joining non-empty rows with spaces
func (g *BoardGrid) Text() string {
	var parts []string
	for row := range g.Rows {
		if text := g.RowText(row); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy of the grid
func (g *BoardGrid) Clone() *BoardGrid {
	rows := make([][]TileSlot, len(g.Rows))
	for i := range g.Rows {
		rows[i] = make([]TileSlot, len(g.Rows[i]))
		copy(rows[i], g.Rows[i])
	}
	return &BoardGrid{Rows: rows}
}

// Redacted returns a copy of the grid with the letters of hidden slots removed
func (g *BoardGrid) Redacted() *BoardGrid {
	clone := g.Clone()
	for row := range clone.Rows {
		for col, slot := range clone.Rows[row] {
			if slot.IsHidden() {
				clone.Rows[row][col].Letter = 0
			}
		}
	}
	return clone
}
