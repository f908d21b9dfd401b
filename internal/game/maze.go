package game

// Tile is the content of one maze cell.
type Tile byte

const (
	TileEmpty  Tile = ' '
	TileWall   Tile = '#'
	TilePellet Tile = '.'
	TilePower  Tile = 'o'
	TileDoor   Tile = '-'
)

// canonicalLayout is the starting maze. Row 14 is the wrap-around tunnel.
// The ghost house sits behind the door on row 12.
var canonicalLayout = [...]string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###--### ##.#     ",
	"######.## #      # ##.######",
	"      .   #      #   .      ",
	"######.## #      # ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Maze is the tile grid. It is not safe for concurrent use; State guards it.
type Maze struct {
	tiles   [][]Tile
	pellets int
}

// NewMaze builds the canonical starting maze with every pellet in place.
func NewMaze() *Maze {
	return parseMaze(canonicalLayout[:])
}

func parseMaze(rows []string) *Maze {
	m := &Maze{tiles: make([][]Tile, len(rows))}
	for r, line := range rows {
		m.tiles[r] = make([]Tile, len(line))
		for c := 0; c < len(line); c++ {
			t := Tile(line[c])
			if t == TilePellet || t == TilePower {
				m.pellets++
			}
			m.tiles[r][c] = t
		}
	}
	return m
}

func (m *Maze) Height() int {
	return len(m.tiles)
}

func (m *Maze) Width() int {
	if len(m.tiles) == 0 {
		return 0
	}
	return len(m.tiles[0])
}

// Tile returns the tile at p. Cells outside the grid read as walls.
func (m *Maze) Tile(p Position) Tile {
	if p.Row < 0 || p.Row >= len(m.tiles) || p.Col < 0 || p.Col >= len(m.tiles[p.Row]) {
		return TileWall
	}
	return m.tiles[p.Row][p.Col]
}

// Passable reports whether a character may stand on p.
func (m *Maze) Passable(p Position) bool {
	t := m.Tile(p)
	return t != TileWall && t != TileDoor
}

// Neighbor returns the cell one step from p in direction d, wrapping
// horizontally through the tunnel.
func (m *Maze) Neighbor(p Position, d Direction) Position {
	next := p.Add(d)
	w := m.Width()
	if w == 0 {
		return next
	}
	if next.Col < 0 {
		next.Col = w - 1
	} else if next.Col >= w {
		next.Col = 0
	}
	return next
}

// Eat clears a pellet at p and returns what was there.
func (m *Maze) Eat(p Position) Tile {
	t := m.Tile(p)
	if t != TilePellet && t != TilePower {
		return TileEmpty
	}
	m.tiles[p.Row][p.Col] = TileEmpty
	m.pellets--
	return t
}

// PelletsLeft returns the number of pellets and power pellets remaining.
func (m *Maze) PelletsLeft() int {
	return m.pellets
}

// Points returns the score awarded for eating t.
func Points(t Tile) int {
	switch t {
	case TilePellet:
		return PelletPoints
	case TilePower:
		return PowerPelletPoints
	default:
		return 0
	}
}
