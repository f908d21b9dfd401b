package game

import (
	"encoding/json"
	"fmt"
)

// Position is a cell on the maze grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the cell one step away in direction d, without wrapping.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// searchOrder is the tie-break order used when a ghost picks a turn.
var searchOrder = [...]Direction{DirUp, DirLeft, DirDown, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the row and column offsets of one step in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirLeft:
		return 0, -1
	case DirDown:
		return 1, 0
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// ParseDirection maps a direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "left":
		return DirLeft, true
	case "down":
		return DirDown, true
	case "right":
		return DirRight, true
	default:
		return DirNone, false
	}
}

// MarshalJSON serializes Direction as a string.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON deserializes Direction from a string.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d, _ = ParseDirection(s)
	return nil
}
