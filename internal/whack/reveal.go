package whack

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-whackamole/internal/config"
	"github.com/vovakirdan/tui-whackamole/internal/host"
)

// SetDelay returns how long a mole stays up for the given difficulty:
// a fixed delay for easy and normal, a uniformly random whole number of
// milliseconds within the inclusive hard range for hard. Any other value
// fails with config.ErrInvalidDifficulty.
func (c *Controller) SetDelay(d config.DifficultyPreset) (time.Duration, error) {
	switch d {
	case config.DifficultyEasy:
		return ms(c.cfg.Delays.EasyMS), nil
	case config.DifficultyNormal:
		return ms(c.cfg.Delays.NormalMS), nil
	case config.DifficultyHard:
		return ms(c.randomInteger(c.cfg.Delays.HardMinMS, c.cfg.Delays.HardMaxMS)), nil
	default:
		return 0, fmt.Errorf("%w: %q", config.ErrInvalidDifficulty, d)
	}
}

// randomInteger returns a uniformly random integer in [min, max].
func (c *Controller) randomInteger(min, max int) int {
	if max <= min {
		return min
	}
	return c.rng.Intn(max-min+1) + min
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// ChooseHole picks a hole index uniformly among every hole except the one
// revealed last, and records it as the last revealed hole. With a single hole
// that hole is always returned.
func (c *Controller) ChooseHole() (int, error) {
	n := len(c.holes)
	if n == 0 {
		return noHole, ErrNoHoles
	}

	last := c.session.LastHole
	var idx int
	switch {
	case n == 1:
		idx = 0
	case last < 0 || last >= n:
		idx = c.rng.Intn(n)
	default:
		// Sample from the n-1 other holes and skip over the last one.
		idx = c.rng.Intn(n - 1)
		if idx >= last {
			idx++
		}
	}

	c.session.LastHole = idx
	return idx, nil
}

// ShowUp starts one reveal cycle: it computes the delay for the session's
// difficulty, chooses a hole and shows its mole until the delay elapses.
func (c *Controller) ShowUp() error {
	delay, err := c.SetDelay(c.session.Difficulty)
	if err != nil {
		return err
	}
	idx, err := c.ChooseHole()
	if err != nil {
		return err
	}
	c.showAndHide(idx, delay)
	return nil
}

// showAndHide shows the mole in hole idx and schedules the hide, which in
// turn runs the continuation check. The reveal is tied to the current
// generation so it does nothing once its session is over.
func (c *Controller) showAndHide(idx int, delay time.Duration) {
	hole := c.holes[idx]
	toggleVisibility(hole)
	c.shownHole = idx
	c.whacked = false

	gen := c.generation
	c.reveal = c.loop.AfterFunc(delay, func() {
		if gen != c.generation {
			return
		}
		c.reveal = nil
		toggleVisibility(hole)
		hole.RemoveClass(host.WhackedClass)
		c.shownHole = noHole
		c.GameOver()
	})
}

// toggleVisibility flips the show class on a hole.
func toggleVisibility(hole *host.Element) bool {
	return hole.ToggleClass(host.ShowClass)
}

// GameOver is the continuation check run after each hide. While time remains
// it starts the next reveal; otherwise it stops the session. It reports
// whether play continues.
//
// A failing reveal halts the chain: the error is logged, kept in Err, and the
// session stops.
func (c *Controller) GameOver() bool {
	if !c.session.Active {
		return false
	}
	if c.session.RemainingTime > 0 {
		if err := c.ShowUp(); err != nil {
			c.err = err
			c.slog.Error("reveal cycle halted", "err", err)
			c.StopGame()
			return false
		}
		return true
	}
	c.StopGame()
	return false
}
