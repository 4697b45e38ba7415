package mocks

import (
	"sync"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// RenderCallKind names a presentation call
type RenderCallKind string

const (
	RenderGridCall   RenderCallKind = "render_grid"
	RenderScoresCall RenderCallKind = "render_scores"
	SetButtonCall    RenderCallKind = "set_button"
	ShowMessageCall  RenderCallKind = "show_message"
)

// RenderCall is one recorded presentation call
type RenderCall struct {
	Kind    RenderCallKind
	Grid    *model.BoardGrid
	Scores  []model.Player
	Letter  rune
	Enabled bool
	Message string
}

// RecordingRenderer records every presentation call for assertions
type RecordingRenderer struct {
	mu    sync.Mutex
	calls []RenderCall
}

// NewRecordingRenderer creates an empty RecordingRenderer
func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{}
}

func (r *RecordingRenderer) RenderGrid(grid *model.BoardGrid) {
	r.record(RenderCall{Kind: RenderGridCall, Grid: grid})
}

func (r *RecordingRenderer) RenderScores(scores []model.Player) {
	r.record(RenderCall{Kind: RenderScoresCall, Scores: scores})
}

func (r *RecordingRenderer) SetAlphabetButtonEnabled(letter rune, enabled bool) {
	r.record(RenderCall{Kind: SetButtonCall, Letter: letter, Enabled: enabled})
}

func (r *RecordingRenderer) ShowMessage(text string) {
	r.record(RenderCall{Kind: ShowMessageCall, Message: text})
}

func (r *RecordingRenderer) record(call RenderCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

// Calls returns all recorded calls in order
func (r *RecordingRenderer) Calls() []RenderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RenderCall(nil), r.calls...)
}

// Messages returns the text of every ShowMessage call
func (r *RecordingRenderer) Messages() []string {
	var messages []string
	for _, c := range r.Calls() {
		if c.Kind == ShowMessageCall {
			messages = append(messages, c.Message)
		}
	}
	return messages
}

// LastGrid returns the most recently rendered grid, or nil
func (r *RecordingRenderer) LastGrid() *model.BoardGrid {
	calls := r.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Kind == RenderGridCall {
			return calls[i].Grid
		}
	}
	return nil
}

// LastScores returns the most recently rendered scoreboard, or nil
func (r *RecordingRenderer) LastScores() []model.Player {
	calls := r.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Kind == RenderScoresCall {
			return calls[i].Scores
		}
	}
	return nil
}

// ButtonStates returns the latest enabled state of every letter button touched
func (r *RecordingRenderer) ButtonStates() map[rune]bool {
	states := make(map[rune]bool)
	for _, c := range r.Calls() {
		if c.Kind == SetButtonCall {
			states[c.Letter] = c.Enabled
		}
	}
	return states
}

// Reset clears all recorded calls
func (r *RecordingRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
