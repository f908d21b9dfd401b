package game

import "time"

// Scheduling defaults
const (
	MovementInterval = 200 * time.Millisecond
	ClockInterval    = time.Second
)

// Lives and ghost release
const (
	StartLives     = 3
	ReleaseSpacing = 5 // clock units between ghost releases
)

// Scoring
const (
	PelletPoints      = 10
	PowerPelletPoints = 50
)

// Canonical positions (row, col) on the default maze.
var (
	PlayerStart = Position{Row: 23, Col: 13}
	GhostExit   = Position{Row: 11, Col: 13}
)
