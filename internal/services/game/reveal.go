package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// RevealToken identifies one scheduled tile reveal
type RevealToken string

type pendingReveal struct {
	token RevealToken
	pos   model.Position
	delay time.Duration
}

// queueReveals appends positions to the reveal queue and starts it if idle. Caller holds mu.
func (c *Controller) queueReveals(positions []model.Position, delay time.Duration) {
	idle := len(c.reveals) == 0
	for _, pos := range positions {
		c.reveals = append(c.reveals, pendingReveal{
			token: RevealToken(uuid.NewString()),
			pos:   pos,
			delay: delay,
		})
	}
	if idle {
		c.beginNextReveal()
	}
}

// beginNextReveal puts the head of the queue into the revealing state and
// schedules its completion. Caller holds mu.
func (c *Controller) beginNextReveal() {
	if len(c.reveals) == 0 {
		return
	}
	head := c.reveals[0]
	c.game.Grid.BeginReveal(head.pos)
	c.renderer.RenderGrid(c.game.Grid.Clone())

	c.clock.AfterFunc(head.delay, func() {
		if err := c.CompleteReveal(head.token); err != nil {
			c.logger.Warn("reveal completion dropped",
				slog.String("token", string(head.token)),
				slog.String("error", err.Error()),
			)
		}
	})
}

// CompleteReveal shows the letter of the tile behind token and begins the next
// queued reveal. Tokens complete strictly in the order they were queued.
func (c *Controller) CompleteReveal(token RevealToken) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.reveals) == 0 || c.reveals[0].token != token {
		return model.ErrUnknownRevealToken
	}

	head := c.reveals[0]
	c.reveals = c.reveals[1:]
	c.game.Grid.Reveal(head.pos)
	c.renderer.RenderGrid(c.game.Grid.Clone())

	c.beginNextReveal()
	return nil
}

// RevealInProgress reports whether tiles are still waiting to be revealed
func (c *Controller) RevealInProgress() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reveals) > 0
}
