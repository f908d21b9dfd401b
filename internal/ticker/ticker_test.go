package ticker

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 5 * time.Millisecond

// startTicker runs tk on a goroutine and returns a channel closed when Run returns.
func startTicker(t *testing.T, tk *Ticker) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tk.Run(context.Background())
	}()
	t.Cleanup(tk.Terminate)
	return done
}

func waitDone(t *testing.T, done <-chan error, within time.Duration) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(within):
		t.Fatalf("ticker did not stop within %v", within)
	}
}

func TestTicker_RunsPeriodically(t *testing.T) {
	var count atomic.Int64
	tk := New("test", testInterval, func() { count.Add(1) })
	startTicker(t, tk)

	assert.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, testInterval)
	assert.Equal(t, StateRunning, tk.State())
	assert.GreaterOrEqual(t, tk.Steps(), int64(3))
}

func TestTicker_PauseStopsWork(t *testing.T) {
	tk := New("test", testInterval, func() {})
	startTicker(t, tk)

	assert.Eventually(t, func() bool { return tk.Steps() >= 2 }, time.Second, testInterval)

	tk.Pause()
	assert.Eventually(t, func() bool { return tk.State() == StateSuspended }, time.Second, time.Millisecond)

	paused := tk.Steps()
	time.Sleep(10 * testInterval)
	assert.Equal(t, paused, tk.Steps(), "no work while suspended")

	tk.Resume()
	assert.Eventually(t, func() bool { return tk.Steps() > paused }, time.Second, testInterval)
}

func TestTicker_NeverWorksWhileSuspended(t *testing.T) {
	var violations atomic.Int64
	var tk *Ticker
	tk = New("test", time.Millisecond, func() {
		if tk.State() != StateRunning {
			violations.Add(1)
		}
	})
	startTicker(t, tk)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if rng.Intn(2) == 0 {
			tk.Pause()
		} else {
			tk.Resume()
		}
		time.Sleep(time.Duration(rng.Intn(3)) * time.Millisecond)
	}

	assert.Zero(t, violations.Load())
}

func TestTicker_TerminateWhileSuspended(t *testing.T) {
	tk := New("test", testInterval, func() {})
	done := startTicker(t, tk)

	tk.Pause()
	require.Eventually(t, func() bool { return tk.State() == StateSuspended }, time.Second, time.Millisecond)

	tk.Terminate()
	waitDone(t, done, 100*time.Millisecond)
	assert.Equal(t, StateTerminated, tk.State())
}

func TestTicker_TerminateCutsSleepShort(t *testing.T) {
	tk := New("test", time.Hour, func() {})
	done := startTicker(t, tk)

	require.Eventually(t, func() bool { return tk.Steps() == 1 }, time.Second, time.Millisecond)

	tk.Terminate()
	waitDone(t, done, 100*time.Millisecond)
	assert.Equal(t, int64(1), tk.Steps())
}

func TestTicker_NoWorkAfterTerminate(t *testing.T) {
	tk := New("test", testInterval, func() {})
	done := startTicker(t, tk)

	require.Eventually(t, func() bool { return tk.Steps() >= 2 }, time.Second, testInterval)
	tk.Terminate()
	waitDone(t, done, time.Second)

	final := tk.Steps()

	// Signals after termination must not panic or revive the loop
	assert.NotPanics(t, func() {
		tk.Pause()
		tk.Resume()
		tk.Terminate()
	})
	time.Sleep(5 * testInterval)

	assert.Equal(t, final, tk.Steps())
	assert.Equal(t, StateTerminated, tk.State())
}

func TestTicker_TerminateBeforeRun(t *testing.T) {
	tk := New("test", testInterval, func() {})
	tk.Terminate()

	require.NoError(t, tk.Run(context.Background()))
	assert.Zero(t, tk.Steps())
}

func TestTicker_RunTwice(t *testing.T) {
	tk := New("test", testInterval, func() {})
	done := startTicker(t, tk)
	require.Eventually(t, func() bool { return tk.Steps() >= 1 }, time.Second, time.Millisecond)

	tk.Terminate()
	waitDone(t, done, time.Second)

	assert.ErrorIs(t, tk.Run(context.Background()), ErrReused)
}

func TestTicker_ContextCancelTerminates(t *testing.T) {
	tk := New("test", testInterval, func() {})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- tk.Run(ctx) }()
	require.Eventually(t, func() bool { return tk.Steps() >= 1 }, time.Second, time.Millisecond)

	cancel()
	waitDone(t, done, time.Second)
	assert.Equal(t, StateTerminated, tk.State())
}

func TestTicker_ResumeWithoutPause(t *testing.T) {
	tk := New("test", testInterval, func() {})
	startTicker(t, tk)

	assert.NotPanics(t, tk.Resume)
	assert.Eventually(t, func() bool { return tk.Steps() >= 2 }, time.Second, testInterval)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "suspended", StateSuspended.String())
	assert.Equal(t, "terminated", StateTerminated.String())
	assert.Equal(t, "unknown", State(7).String())
}
