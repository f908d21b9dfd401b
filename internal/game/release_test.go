package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseSchedule_Due(t *testing.T) {
	schedule := DefaultReleaseSchedule(5)

	tests := []struct {
		name    string
		elapsed int
		want    []GhostID
	}{
		{"before first release", 4, nil},
		{"first release", 5, []GhostID{Pinky}},
		{"between releases", 12, []GhostID{Pinky, Inky}},
		{"all released", 15, []GhostID{Pinky, Inky, Clyde}},
		{"long after", 600, []GhostID{Pinky, Inky, Clyde}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.Due(tt.elapsed))
		})
	}
}

func TestReleaseSchedule_MazeOrder(t *testing.T) {
	schedule := ReleaseSchedule{Clyde: 0, Blinky: 0, Inky: 3}
	assert.Equal(t, []GhostID{Blinky, Clyde}, schedule.Due(1))
}

func TestReleaseSchedule_Empty(t *testing.T) {
	var schedule ReleaseSchedule
	assert.Empty(t, schedule.Due(100))
}
