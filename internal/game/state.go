package game

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownGhost  = errors.New("unknown ghost")
	ErrGhostReleased = errors.New("ghost already released")
)

// State is the shared game aggregate: maze, player, ghosts and score.
// Every write happens under mu, so concurrent readers never see a torn field,
// though they may see a step half applied across fields.
type State struct {
	maze    *Maze
	player  *Player
	ghosts  []*Ghost
	score   int
	over    bool
	cleared bool

	mu sync.RWMutex
}

// NewState returns the canonical starting configuration.
func NewState() *State {
	return &State{
		maze:   NewMaze(),
		player: NewPlayer(),
		ghosts: startGhosts(),
	}
}

// StepEvent describes what happened during one movement step.
type StepEvent struct {
	Ate     Tile
	Caught  bool
	By      GhostID
	Over    bool
	Cleared bool
}

// Step runs one movement work unit: the player moves, then every ghost.
// Once the game is over or the maze is cleared it does nothing.
func (s *State) Step() StepEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ev StepEvent
	if s.over || s.cleared {
		return ev
	}

	prevPlayer := s.player.Pos
	ev.Ate = s.player.MoveOneStep(s.maze)
	s.score += Points(ev.Ate)
	if s.maze.PelletsLeft() == 0 {
		s.cleared = true
		ev.Cleared = true
		return ev
	}

	prevGhosts := make([]Position, len(s.ghosts))
	for i, g := range s.ghosts {
		prevGhosts[i] = g.Pos
		g.MoveOneStep(s.maze, s.player.Pos)
	}

	if g := FindCatcher(s.player.Pos, prevPlayer, s.ghosts, prevGhosts); g != nil {
		ev.Caught = true
		ev.By = g.ID
		s.loseLife(&ev)
	}
	return ev
}

// loseLife takes one life and respawns the player. Caller must hold s.mu.
func (s *State) loseLife(ev *StepEvent) {
	s.player.SetLives(s.player.Lives - 1)
	if s.player.Lives == 0 {
		s.over = true
		ev.Over = true
		return
	}
	s.player.Respawn()
}

// AdvanceClock runs one clock work unit and returns the new elapsed time.
func (s *State) AdvanceClock() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.SetElapsed(s.player.Elapsed() + 1)
	return s.player.Elapsed()
}

// ReleaseGhost lets a confined ghost out through the exit cell.
func (s *State) ReleaseGhost(id GhostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ghost(id)
	if g == nil {
		return fmt.Errorf("%w: %d", ErrUnknownGhost, int(id))
	}
	if !g.Release(GhostExit) {
		return fmt.Errorf("%w: %s", ErrGhostReleased, id)
	}
	return nil
}

// ghost finds a ghost by identity. Caller must hold s.mu.
func (s *State) ghost(id GhostID) *Ghost {
	for _, g := range s.ghosts {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Ghost returns a copy of the ghost with the given identity.
func (s *State) Ghost(id GhostID) (Ghost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g := s.ghost(id); g != nil {
		return *g, true
	}
	return Ghost{}, false
}

// Confined reports whether the ghost is still in the house.
func (s *State) Confined(id GhostID) bool {
	g, ok := s.Ghost(id)
	return ok && g.Confined
}

// Steer records the player's next turn. Position only changes in Step.
func (s *State) Steer(d Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.Steer(d)
}

func (s *State) SetLives(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.SetLives(n)
	s.over = s.player.Lives == 0
}

func (s *State) SetElapsed(t int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.SetElapsed(t)
}

func (s *State) Elapsed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Elapsed()
}

func (s *State) Lives() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Lives
}

func (s *State) Score() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

// Over reports whether the player has run out of lives.
func (s *State) Over() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.over
}

// Cleared reports whether every pellet has been eaten.
func (s *State) Cleared() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cleared
}

// Passable queries the maze under the read lock.
func (s *State) Passable(p Position) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maze.Passable(p)
}

// Snapshot is a point-in-time copy of the state for external readers.
type Snapshot struct {
	Score       int       `json:"score"`
	Lives       int       `json:"lives"`
	Elapsed     int       `json:"elapsed"`
	Player      Position  `json:"player"`
	PlayerDir   Direction `json:"player_dir"`
	Ghosts      []Ghost   `json:"ghosts"`
	PelletsLeft int       `json:"pellets_left"`
	Over        bool      `json:"over"`
	Cleared     bool      `json:"cleared"`
}

// Snapshot copies the whole state under one read lock.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ghosts := make([]Ghost, 0, len(s.ghosts))
	for _, g := range s.ghosts {
		ghosts = append(ghosts, *g)
	}
	return Snapshot{
		Score:       s.score,
		Lives:       s.player.Lives,
		Elapsed:     s.player.Elapsed(),
		Player:      s.player.Pos,
		PlayerDir:   s.player.Dir,
		Ghosts:      ghosts,
		PelletsLeft: s.maze.PelletsLeft(),
		Over:        s.over,
		Cleared:     s.cleared,
	}
}
