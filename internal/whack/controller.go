// Package whack implements the whack-a-mole game loop controller.
//
// The controller reads holes, moles, a start control and two displays from a
// host document, and drives play from a schedule.Loop: a recurring countdown
// tick and a chain of one-shot reveal timers, each reveal scheduling the next
// from its hide callback. All state lives in the controller; every callback
// runs synchronously on the loop, so there is no locking.
package whack

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-whackamole/internal/config"
	"github.com/vovakirdan/tui-whackamole/internal/host"
	"github.com/vovakirdan/tui-whackamole/internal/schedule"
)

// ErrNoHoles is returned when the host document has no holes to reveal.
var ErrNoHoles = errors.New("whack: no holes on the page")

// noHole marks the absence of a hole index.
const noHole = -1

// Session is a snapshot of the state of one game.
type Session struct {
	ID            uuid.UUID
	RemainingTime int // Seconds left on the countdown
	Score         int
	Misses        int // Clicks rejected by visibility checks
	Difficulty    config.DifficultyPreset
	LastHole      int // Index of the last revealed hole, -1 if none
	Active        bool
}

// Result describes a finished session.
type Result struct {
	SessionID  uuid.UUID
	Score      int
	Misses     int
	Difficulty config.DifficultyPreset
	Err        error // Non-nil if the reveal chain halted on an error
}

// Options configures a Controller.
type Options struct {
	Config config.WhackConfig
	Rand   *rand.Rand  // Nil seeds from the current time
	Logger *log.Logger // Nil discards logs
	OnEnd  func(Result)
}

// Controller runs whack-a-mole sessions against a host document.
type Controller struct {
	cfg    config.WhackConfig
	rng    *rand.Rand
	logger *log.Logger
	slog   *log.Logger // logger scoped to the current session
	loop   *schedule.Loop
	onEnd  func(Result)

	holes        []*host.Element
	moleHole     map[*host.Element]int // Mole element to its hole index, -1 if outside a hole
	start        *host.Element
	scoreDisplay *host.Element
	timerDisplay *host.Element

	difficulty config.DifficultyPreset // Applied at next session start
	session    Session
	generation uint64 // Bumped on start and stop; stale callbacks compare and bail
	tick       *schedule.Timer
	reveal     *schedule.Timer
	shownHole  int  // Hole whose mole is up, -1 if none
	whacked    bool // The current reveal has already been credited
	err        error
}

// New wires a controller to the document. Click listeners are attached to
// every mole and to the start control. Missing elements are logged and the
// controller degrades: without a start control the game can only be started
// programmatically, without displays their updates are skipped.
func New(doc *host.Document, loop *schedule.Loop, opts Options) *Controller {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		cfg:          opts.Config,
		rng:          rng,
		logger:       logger,
		slog:         logger,
		loop:         loop,
		onEnd:        opts.OnEnd,
		holes:        doc.QuerySelectorAll("." + host.HoleClass),
		moleHole:     make(map[*host.Element]int),
		start:        doc.QuerySelector("#" + host.StartID),
		scoreDisplay: doc.QuerySelector("#" + host.ScoreID),
		timerDisplay: doc.QuerySelector("#" + host.TimerID),
		difficulty:   opts.Config.Difficulty,
		shownHole:    noHole,
	}
	c.session = Session{Difficulty: c.difficulty, LastHole: noHole}

	if len(c.holes) == 0 {
		logger.Warn("no holes found on the page")
	}
	if c.scoreDisplay == nil {
		logger.Warn("score display not found", "selector", "#"+host.ScoreID)
	}
	if c.timerDisplay == nil {
		logger.Warn("timer display not found", "selector", "#"+host.TimerID)
	}

	c.setEventListeners(doc)

	if c.start != nil {
		c.start.AddEventListener(host.EventClick, func(host.Event) {
			if err := c.StartGame(); err != nil {
				c.logger.Error("cannot start game", "err", err)
			}
		})
	} else {
		logger.Warn("start control not found, game cannot be started from the page", "selector", "#"+host.StartID)
	}

	return c
}

// setEventListeners attaches the whack handler to every mole.
func (c *Controller) setEventListeners(doc *host.Document) {
	holeIndex := make(map[*host.Element]int, len(c.holes))
	for i, h := range c.holes {
		holeIndex[h] = i
	}

	for _, mole := range doc.QuerySelectorAll("." + host.MoleClass) {
		idx := noHole
		if i, ok := holeIndex[mole.Parent()]; ok {
			idx = i
		}
		c.moleHole[mole] = idx
		mole.AddEventListener(host.EventClick, func(ev host.Event) {
			c.Whack(ev)
		})
	}
}

// StartGame resets the score, sets the countdown to the configured duration,
// starts the tick and shows the first mole. A session already in progress is
// stopped first so only one countdown is ever active.
//
// If the first reveal fails, for example on an unknown difficulty, the new
// session is stopped and the error returned.
func (c *Controller) StartGame() error {
	if c.session.Active {
		c.StopGame()
	}

	c.generation++
	c.err = nil
	c.session = Session{
		ID:         uuid.New(),
		Difficulty: c.difficulty,
		LastHole:   noHole,
		Active:     true,
	}
	c.slog = c.logger.With("session", c.session.ID.String(), "difficulty", string(c.session.Difficulty))

	c.slog.Info("game starting")
	c.clearScore()
	c.slog.Debug("score cleared")
	c.setDuration(c.cfg.Session.DurationSecs)
	c.slog.Debug("duration set", "seconds", c.session.RemainingTime)
	c.startTimer()
	c.slog.Debug("timer started")

	if err := c.ShowUp(); err != nil {
		c.err = err
		c.StopGame()
		return err
	}
	c.slog.Debug("first mole shown", "hole", c.session.LastHole)
	return nil
}

// StopGame ends the current session: it cancels the countdown and the
// in-flight reveal, hides a visible mole and reports the result. Calling it
// without an active session does nothing.
func (c *Controller) StopGame() {
	if !c.session.Active {
		return
	}
	c.session.Active = false
	c.generation++

	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
	if c.reveal != nil {
		c.reveal.Stop()
		c.reveal = nil
	}
	if c.shownHole != noHole {
		hole := c.holes[c.shownHole]
		hole.RemoveClass(host.ShowClass)
		hole.RemoveClass(host.WhackedClass)
		c.shownHole = noHole
	}

	c.slog.Info("game stopped", "score", c.session.Score, "misses", c.session.Misses)

	if c.onEnd != nil {
		c.onEnd(c.result())
	}
}

func (c *Controller) result() Result {
	return Result{
		SessionID:  c.session.ID,
		Score:      c.session.Score,
		Misses:     c.session.Misses,
		Difficulty: c.session.Difficulty,
		Err:        c.err,
	}
}

// startTimer starts the recurring countdown tick.
func (c *Controller) startTimer() {
	gen := c.generation
	interval := time.Duration(c.cfg.Session.TickMS) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	c.tick = c.loop.Every(interval, func() {
		if gen != c.generation {
			return
		}
		c.updateTimer()
	})
}

// updateTimer decrements the remaining time and refreshes the display.
// Reaching zero ends the session.
func (c *Controller) updateTimer() {
	if c.session.RemainingTime > 0 {
		c.session.RemainingTime--
		setText(c.timerDisplay, c.session.RemainingTime)
	}
	if c.session.RemainingTime == 0 {
		c.StopGame()
	}
}

// setDuration sets the countdown length in seconds.
func (c *Controller) setDuration(seconds int) {
	c.session.RemainingTime = seconds
	setText(c.timerDisplay, seconds)
}

// SetDifficulty selects the difficulty for the next session.
func (c *Controller) SetDifficulty(p config.DifficultyPreset) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", config.ErrInvalidDifficulty, p)
	}
	c.difficulty = p
	if !c.session.Active {
		c.session.Difficulty = p
	}
	return nil
}

// Difficulty returns the difficulty the next session will use.
func (c *Controller) Difficulty() config.DifficultyPreset {
	return c.difficulty
}

// Session returns a snapshot of the current or last session.
func (c *Controller) Session() Session {
	return c.session
}

// Running reports whether a session is in progress.
func (c *Controller) Running() bool {
	return c.session.Active
}

// Err returns the error that halted the last reveal chain, if any.
func (c *Controller) Err() error {
	return c.err
}

// HasStartControl reports whether the page exposes a start control.
func (c *Controller) HasStartControl() bool {
	return c.start != nil
}

// setText writes n to a display, skipping missing displays.
func setText(el *host.Element, n int) {
	if el == nil {
		return
	}
	el.SetText(strconv.Itoa(n))
}
