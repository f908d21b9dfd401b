package game

// Player is the eater. It is not safe for concurrent use; State guards it.
type Player struct {
	Pos   Position  `json:"pos"`
	Dir   Direction `json:"dir"`
	Next  Direction `json:"-"`
	Lives int       `json:"lives"`

	elapsed int
}

// NewPlayer returns a player at the start cell heading left.
func NewPlayer() *Player {
	return &Player{
		Pos: PlayerStart,
		Dir: DirLeft,
	}
}

// SetLives sets the remaining lives, clamped at zero.
func (p *Player) SetLives(n int) {
	if n < 0 {
		n = 0
	}
	p.Lives = n
}

// SetElapsed sets the elapsed game time, clamped at zero.
func (p *Player) SetElapsed(t int) {
	if t < 0 {
		t = 0
	}
	p.elapsed = t
}

func (p *Player) Elapsed() int {
	return p.elapsed
}

// Steer buffers a turn request. It is applied on the first step where the
// turn is possible.
func (p *Player) Steer(d Direction) {
	p.Next = d
}

// MoveOneStep turns to the buffered heading if possible, then advances one
// cell when the way ahead is open. It returns the tile eaten, if any.
func (p *Player) MoveOneStep(m *Maze) Tile {
	if p.Next != DirNone && m.Passable(m.Neighbor(p.Pos, p.Next)) {
		p.Dir = p.Next
		p.Next = DirNone
	}
	if p.Dir == DirNone {
		return TileEmpty
	}

	to := m.Neighbor(p.Pos, p.Dir)
	if !m.Passable(to) {
		return TileEmpty
	}
	p.Pos = to
	return m.Eat(to)
}

// Respawn puts the player back on the start cell after losing a life.
func (p *Player) Respawn() {
	p.Pos = PlayerStart
	p.Dir = DirLeft
	p.Next = DirNone
}
