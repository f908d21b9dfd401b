package game

// ReleaseSchedule maps a ghost to the elapsed time at which it leaves the house.
type ReleaseSchedule map[GhostID]int

// DefaultReleaseSchedule lets Pinky, Inky and Clyde out spacing clock units apart.
// Blinky starts outside and has no entry.
func DefaultReleaseSchedule(spacing int) ReleaseSchedule {
	return ReleaseSchedule{
		Pinky: spacing,
		Inky:  2 * spacing,
		Clyde: 3 * spacing,
	}
}

// Due returns, in maze order, the ghosts whose release time has been reached.
func (r ReleaseSchedule) Due(elapsed int) []GhostID {
	var due []GhostID
	for _, id := range GhostIDs {
		if at, ok := r[id]; ok && elapsed >= at {
			due = append(due, id)
		}
	}
	return due
}
