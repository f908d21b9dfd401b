package session

import (
	"log/slog"

	"github.com/ugaemi/comecocos/internal/game"
)

// moveStep is the movement ticker's work unit.
func moveStep(id string, st *game.State) {
	ev := st.Step()
	switch {
	case ev.Over:
		slog.Info("game over", "session", id, "ghost", ev.By.String(), "score", st.Score())
	case ev.Caught:
		slog.Info("player caught", "session", id, "ghost", ev.By.String(), "lives", st.Lives())
	case ev.Cleared:
		slog.Info("maze cleared", "session", id, "score", st.Score())
	}
}

// clockStep is the clock ticker's work unit: advance time, then let out any
// ghost whose release time has come.
func clockStep(id string, st *game.State, releases game.ReleaseSchedule) {
	elapsed := st.AdvanceClock()
	for _, g := range releases.Due(elapsed) {
		if !st.Confined(g) {
			continue
		}
		// Lost a race with a manual release
		if err := st.ReleaseGhost(g); err != nil {
			continue
		}
		slog.Info("ghost released", "session", id, "ghost", g.String(), "elapsed", elapsed)
	}
}
