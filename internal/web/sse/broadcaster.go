package sse

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/web/templates/components"
)

// Event names sent to clients
const (
	EventBoardUpdate  = "board-update"
	EventScoresUpdate = "scores-update"
	EventLetterUpdate = "letter-update"
	EventMessage      = "message"
)

// Broadcaster publishes controller presentation calls to SSE clients.
// Board updates never include the letters of hidden tiles.
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

var _ game.Renderer = (*Broadcaster)(nil)

// RenderGrid sends the redacted board as an out-of-band swap
func (b *Broadcaster) RenderGrid(grid *model.BoardGrid) {
	b.broadcastComponent(EventBoardUpdate, components.BoardID, components.Board(grid.Redacted()))
}

// RenderScores sends the scoreboard as an out-of-band swap
func (b *Broadcaster) RenderScores(scores []model.Player) {
	b.broadcastComponent(EventScoresUpdate, components.ScoreboardID, components.Scoreboard(scores, nil))
}

// SetAlphabetButtonEnabled swaps one letter button in place
func (b *Broadcaster) SetAlphabetButtonEnabled(letter rune, enabled bool) {
	b.broadcastComponent(EventLetterUpdate, components.LetterButtonID(letter), components.LetterButton(letter, !enabled))
}

// ShowMessage sends a notice as an out-of-band swap
func (b *Broadcaster) ShowMessage(text string) {
	b.broadcastComponent(EventMessage, components.MessageID, components.Message(text))
}

func (b *Broadcaster) broadcastComponent(event, id string, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		b.logger.Error("sse failed to render component",
			slog.String("event", event),
			slog.Any("error", err))
		return
	}
	b.hub.BroadcastEvent(event, WrapForOOBSwap(id, buf.String()))
}

// WrapForOOBSwap wraps HTML in a div with hx-swap-oob for out-of-band swaps
func WrapForOOBSwap(id, html string) string {
	return `<div hx-swap-oob="outerHTML:#` + id + `">` + html + `</div>`
}
