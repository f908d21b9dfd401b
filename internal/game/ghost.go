package game

import (
	"encoding/json"
	"fmt"
)

type GhostID int

const (
	Blinky GhostID = iota
	Pinky
	Inky
	Clyde
)

// GhostIDs lists every ghost in maze order.
var GhostIDs = [...]GhostID{Blinky, Pinky, Inky, Clyde}

func (id GhostID) String() string {
	switch id {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// ParseGhostID maps a ghost name to its identity.
func ParseGhostID(s string) (GhostID, error) {
	for _, id := range GhostIDs {
		if id.String() == s {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGhost, s)
}

// MarshalJSON serializes GhostID as a string.
func (id GhostID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON deserializes GhostID from a string.
func (id *GhostID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseGhostID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Ghost is a pursuer. It is not safe for concurrent use; State guards it.
type Ghost struct {
	ID       GhostID   `json:"id"`
	Pos      Position  `json:"pos"`
	Dir      Direction `json:"dir"`
	Confined bool      `json:"confined"`
}

// startGhosts returns the four ghosts in their canonical starting layout:
// Blinky outside the house, the others confined inside it.
func startGhosts() []*Ghost {
	return []*Ghost{
		{ID: Blinky, Pos: Position{Row: 11, Col: 13}, Dir: DirLeft},
		{ID: Pinky, Pos: Position{Row: 14, Col: 13}, Confined: true},
		{ID: Inky, Pos: Position{Row: 14, Col: 14}, Confined: true},
		{ID: Clyde, Pos: Position{Row: 14, Col: 12}, Confined: true},
	}
}

// Release moves a confined ghost to exit. It reports false, and changes
// nothing, when the ghost is already out.
func (g *Ghost) Release(exit Position) bool {
	if !g.Confined {
		return false
	}
	g.Confined = false
	g.Pos = exit
	g.Dir = DirLeft
	return true
}

// MoveOneStep advances a released ghost one cell toward target. A ghost
// never reverses unless it is in a dead end.
func (g *Ghost) MoveOneStep(m *Maze, target Position) {
	if g.Confined {
		return
	}

	back := g.Dir.Opposite()
	best := DirNone
	bestDist := -1
	for _, d := range searchOrder {
		if d == back {
			continue
		}
		next := m.Neighbor(g.Pos, d)
		if !m.Passable(next) {
			continue
		}
		if dist := distanceSq(next, target); bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}

	if best == DirNone {
		if back == DirNone || !m.Passable(m.Neighbor(g.Pos, back)) {
			return
		}
		best = back
	}

	g.Dir = best
	g.Pos = m.Neighbor(g.Pos, best)
}
