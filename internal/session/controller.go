// Package session runs one maze-chase game at a time: it owns the shared
// state and the movement and clock tickers that drive it.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ugaemi/comecocos/internal/game"
	"github.com/ugaemi/comecocos/internal/ticker"
)

// ErrTerminated is returned by Start once the controller has been terminated.
var ErrTerminated = errors.New("controller terminated")

// Options configures a Controller. Zero values fall back to the game defaults.
type Options struct {
	MovementInterval time.Duration
	ClockInterval    time.Duration
	StartLives       int
	Releases         game.ReleaseSchedule

	// OnExit runs once, after Terminate has stopped both tickers.
	OnExit func()
}

func (o Options) withDefaults() Options {
	if o.MovementInterval <= 0 {
		o.MovementInterval = game.MovementInterval
	}
	if o.ClockInterval <= 0 {
		o.ClockInterval = game.ClockInterval
	}
	if o.StartLives <= 0 {
		o.StartLives = game.StartLives
	}
	if o.Releases == nil {
		o.Releases = game.DefaultReleaseSchedule(game.ReleaseSpacing)
	}
	return o
}

// Controller owns the game state of one session and the two tickers that
// drive it. At most one movement ticker and one clock ticker exist at a time.
type Controller struct {
	opts  Options
	state *game.State
	id    string

	// Session goroutines; nil when no session is running.
	movement *ticker.Ticker
	clock    *ticker.Ticker
	group    *errgroup.Group
	cancel   context.CancelFunc

	terminated bool
	done       chan struct{}

	mu sync.RWMutex
}

// New creates a controller holding a freshly initialized state. No tickers
// run until Start.
func New(opts Options) *Controller {
	return &Controller{
		opts:  opts.withDefaults(),
		state: game.NewState(),
		done:  make(chan struct{}),
	}
}

// Initialize stops any running session and replaces the state with the
// canonical starting layout.
func (c *Controller) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.terminated {
		return
	}
	c.initializeLocked()
}

// initializeLocked must run with c.mu held. The old tickers are stopped and
// awaited before the new state exists, so they can never write to it.
func (c *Controller) initializeLocked() {
	c.stopLocked()
	c.state = game.NewState()
}

// Start begins a new session: a fresh state with full lives and zero
// elapsed time, driven by brand-new movement and clock tickers.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.terminated {
		return ErrTerminated
	}

	c.initializeLocked()
	c.state.SetLives(c.opts.StartLives)
	c.state.SetElapsed(0)
	c.id = uuid.NewString()

	st, id := c.state, c.id
	c.movement = ticker.New("movement", c.opts.MovementInterval, func() {
		moveStep(id, st)
	})
	c.clock = ticker.New("clock", c.opts.ClockInterval, func() {
		clockStep(id, st, c.opts.Releases)
	})

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	movement, clock := c.movement, c.clock
	g.Go(func() error { return movement.Run(ctx) })
	g.Go(func() error { return clock.Run(ctx) })
	c.group, c.cancel = g, cancel

	slog.Info("session started", "session", id,
		"movement_interval", c.opts.MovementInterval,
		"clock_interval", c.opts.ClockInterval,
		"lives", c.opts.StartLives)
	return nil
}

// stopLocked terminates the running tickers and waits for both goroutines
// to exit. Caller must hold c.mu.
func (c *Controller) stopLocked() {
	if c.group == nil {
		return
	}

	c.movement.Terminate()
	c.clock.Terminate()
	c.cancel()
	if err := c.group.Wait(); err != nil {
		slog.Error("session ticker failed", "session", c.id, "error", err)
	}

	slog.Info("session stopped", "session", c.id,
		"movement_steps", c.movement.Steps(),
		"clock_steps", c.clock.Steps(),
		"score", c.state.Score())

	c.movement, c.clock = nil, nil
	c.group, c.cancel = nil, nil
}

// Pause asks both tickers to suspend before their next work unit.
// Without a running session it does nothing.
func (c *Controller) Pause() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.movement == nil {
		slog.Debug("pause ignored, no running session")
		return
	}
	c.movement.Pause()
	c.clock.Pause()
	slog.Info("session paused", "session", c.id)
}

// Resume lets both tickers continue. Without a running session it does nothing.
func (c *Controller) Resume() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.movement == nil {
		slog.Debug("resume ignored, no running session")
		return
	}
	c.movement.Resume()
	c.clock.Resume()
	slog.Info("session resumed", "session", c.id)
}

// Terminate stops both tickers for good, closes Done and calls OnExit.
// It is safe to call more than once; only the first call has an effect.
func (c *Controller) Terminate() {
	c.mu.Lock()
	if c.terminated {
		c.mu.Unlock()
		return
	}
	c.terminated = true
	c.stopLocked()
	close(c.done)
	onExit := c.opts.OnExit
	c.mu.Unlock()

	slog.Info("controller terminated")
	if onExit != nil {
		onExit()
	}
}

// ReleaseGhost lets a confined ghost out of the house. Releasing a ghost
// that is already out is rejected with game.ErrGhostReleased.
func (c *Controller) ReleaseGhost(id game.GhostID) error {
	st := c.State()
	if err := st.ReleaseGhost(id); err != nil {
		return err
	}
	slog.Info("ghost released", "session", c.SessionID(), "ghost", id.String(), "elapsed", st.Elapsed())
	return nil
}

// Steer forwards a turn request to the player.
func (c *Controller) Steer(d game.Direction) {
	c.State().Steer(d)
}

// State returns the current session state.
func (c *Controller) State() *game.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Snapshot copies the current session state.
func (c *Controller) Snapshot() game.Snapshot {
	return c.State().Snapshot()
}

// SessionID returns the id of the last started session, or "" before Start.
func (c *Controller) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// Running reports whether a session's tickers are active.
func (c *Controller) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.movement != nil
}

// Done is closed when the controller terminates.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}
