// Package ticker runs a unit of work at a fixed interval on its own
// goroutine, with pause, resume and one-shot termination.
package ticker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ErrReused is returned when Run is called on a ticker that already ran.
var ErrReused = errors.New("ticker already started")

type State int

const (
	StateRunning State = iota
	StateSuspended
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Ticker performs work once per interval until terminated.
//
// A pause request only takes effect at the top of the loop, so a work unit
// in progress always completes. While suspended the goroutine blocks on a
// condition variable; Terminate wakes it immediately and also cuts the
// interval sleep short.
type Ticker struct {
	name     string
	interval time.Duration
	work     func()

	state   State
	suspend bool
	stopCh  chan struct{}
	cond    *sync.Cond
	mu      sync.Mutex

	started atomic.Bool
	steps   atomic.Int64
}

// New creates a ticker. It does nothing until Run is called.
func New(name string, interval time.Duration, work func()) *Ticker {
	t := &Ticker{
		name:     name,
		interval: interval,
		work:     work,
		state:    StateRunning,
		stopCh:   make(chan struct{}),
	}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// Run executes the loop on the calling goroutine and returns once the ticker
// is terminated or ctx is done. A ticker can only run once.
func (t *Ticker) Run(ctx context.Context) error {
	if !t.started.CompareAndSwap(false, true) {
		return ErrReused
	}

	stop := context.AfterFunc(ctx, t.Terminate)
	defer stop()

	slog.Debug("ticker started", "ticker", t.name, "interval", t.interval)
	defer func() {
		slog.Debug("ticker stopped", "ticker", t.name, "steps", t.Steps())
	}()

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		if !t.await() {
			return nil
		}

		t.work()
		t.steps.Add(1)

		timer.Reset(t.interval)
		select {
		case <-t.stopCh:
			return nil
		case <-timer.C:
		}
	}
}

// await blocks while a pause is requested and reports whether the loop
// should do another work unit.
func (t *Ticker) await() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for t.suspend && t.state != StateTerminated {
		t.state = StateSuspended
		t.cond.Wait()
	}
	if t.state == StateTerminated {
		return false
	}
	t.state = StateRunning
	return true
}

// Pause asks the loop to suspend before its next work unit. It does not wait.
func (t *Ticker) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateTerminated {
		return
	}
	t.suspend = true
}

// Resume lets a suspended loop continue.
func (t *Ticker) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateTerminated {
		return
	}
	t.suspend = false
	t.cond.Broadcast()
}

// Terminate stops the loop for good. Later Pause and Resume calls are no-ops.
func (t *Ticker) Terminate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateTerminated {
		return
	}
	t.state = StateTerminated
	close(t.stopCh)
	t.cond.Broadcast()
}

// State returns the effective state of the loop.
func (t *Ticker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Steps returns the number of completed work units.
func (t *Ticker) Steps() int64 {
	return t.steps.Load()
}

func (t *Ticker) Name() string {
	return t.name
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}
