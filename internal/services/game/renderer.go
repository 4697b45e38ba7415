package game

import "github.com/mcoot/wheelgame-go/internal/model"

// Renderer receives every outbound presentation call from the Controller.
// Calls are made while the Controller holds its lock, so implementations
// must not call back into the Controller.
type Renderer interface {
	RenderGrid(grid *model.BoardGrid)
	RenderScores(scores []model.Player)
	SetAlphabetButtonEnabled(letter rune, enabled bool)
	ShowMessage(text string)
}

// NopRenderer discards all presentation calls
type NopRenderer struct{}

func (NopRenderer) RenderGrid(*model.BoardGrid)         {}
func (NopRenderer) RenderScores([]model.Player)         {}
func (NopRenderer) SetAlphabetButtonEnabled(rune, bool) {}
func (NopRenderer) ShowMessage(string)                  {}

// MultiRenderer fans calls out to several renderers in order
type MultiRenderer []Renderer

func (m MultiRenderer) RenderGrid(grid *model.BoardGrid) {
	for _, r := range m {
		r.RenderGrid(grid)
	}
}

func (m MultiRenderer) RenderScores(scores []model.Player) {
	for _, r := range m {
		r.RenderScores(scores)
	}
}

func (m MultiRenderer) SetAlphabetButtonEnabled(letter rune, enabled bool) {
	for _, r := range m {
		r.SetAlphabetButtonEnabled(letter, enabled)
	}
}

func (m MultiRenderer) ShowMessage(text string) {
	for _, r := range m {
		r.ShowMessage(text)
	}
}

var (
	_ Renderer = NopRenderer{}
	_ Renderer = MultiRenderer{}
)
