package whack

import "github.com/vovakirdan/tui-whackamole/internal/host"

// Whack handles a click on a mole and reports whether it scored.
//
// Clicks outside a running session never score, so a finished session's
// score stays frozen. With scoring.require_visible unset every other click
// scores, as on a plain web page where only the stylesheet keeps hidden moles
// out of reach. With it set, a click scores only while the mole's hole is
// showing and that reveal has not been hit yet; other clicks count as misses.
func (c *Controller) Whack(ev host.Event) bool {
	if !c.session.Active {
		return false
	}
	if c.cfg.Scoring.RequireVisible {
		idx, ok := c.moleHole[ev.Target]
		if !ok || idx == noHole || idx != c.shownHole || c.whacked {
			c.session.Misses++
			c.slog.Debug("miss", "mole", ev.Target.ID(), "misses", c.session.Misses)
			return false
		}
		c.whacked = true
		c.holes[idx].AddClass(host.WhackedClass)
	}

	c.updateScore()
	c.slog.Debug("whack", "mole", ev.Target.ID(), "score", c.session.Score)
	return true
}

// updateScore adds a point and refreshes the score display.
func (c *Controller) updateScore() int {
	c.session.Score++
	setText(c.scoreDisplay, c.session.Score)
	return c.session.Score
}

// clearScore resets the score and the display.
func (c *Controller) clearScore() int {
	c.session.Score = 0
	setText(c.scoreDisplay, c.session.Score)
	return c.session.Score
}
