package tiles

import (
	"strconv"
	"strings"
)

// Tile is a numbered tile on the board. Merged marks a tile produced by a
// merge during the current move; it may not merge again until the move ends.
type Tile struct {
	X, Y   int
	Value  uint32
	Merged bool
}

// NewTile creates an unmerged tile at (x, y).
func NewTile(x, y int, value uint32) *Tile {
	return &Tile{X: x, Y: y, Value: value}
}

// Position is a cell coordinate. X is the column and Y is the row, with
// (0, 0) at the top-left.
type Position struct {
	X, Y int
}

// Grid is a square board. Cells are addressed cells[x][y].
type Grid struct {
	size  int
	cells [][]*Tile
}

// NewGrid creates an empty size x size board.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	cells := make([][]*Tile, size)
	for x := range cells {
		cells[x] = make([]*Tile, size)
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the board edge length.
func (g *Grid) Size() int {
	return g.size
}

// WithinBounds reports whether (x, y) lies on the board.
func (g *Grid) WithinBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// CellContent returns the tile at (x, y), or nil if the cell is empty or
// off the board.
func (g *Grid) CellContent(x, y int) *Tile {
	if !g.WithinBounds(x, y) {
		return nil
	}
	return g.cells[x][y]
}

// CellAvailable reports whether (x, y) is on the board and empty.
func (g *Grid) CellAvailable(x, y int) bool {
	return g.WithinBounds(x, y) && g.cells[x][y] == nil
}

// AvailableCells lists empty cells, x outer and y inner. Spawn selection
// indexes into this order, so it must not change.
func (g *Grid) AvailableCells() []Position {
	var cells []Position
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y] == nil {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// Insert places t at its own coordinates, replacing any occupant.
// Tiles outside the board are ignored.
func (g *Grid) Insert(t *Tile) {
	if t == nil || !g.WithinBounds(t.X, t.Y) {
		return
	}
	g.cells[t.X][t.Y] = t
}

// Remove clears the cell at t's coordinates.
func (g *Grid) Remove(t *Tile) {
	if t == nil || !g.WithinBounds(t.X, t.Y) {
		return
	}
	g.cells[t.X][t.Y] = nil
}

func (g *Grid) moveTile(t *Tile, x, y int) {
	g.Remove(t)
	t.X, t.Y = x, y
	g.Insert(t)
}

// ClearMerged resets the merge marker on every tile.
func (g *Grid) ClearMerged() {
	for x := range g.cells {
		for _, t := range g.cells[x] {
			if t != nil {
				t.Merged = false
			}
		}
	}
}

// Occupied returns the number of tiles on the board.
func (g *Grid) Occupied() int {
	n := 0
	for x := range g.cells {
		for _, t := range g.cells[x] {
			if t != nil {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the largest tile value, or 0 on an empty board.
func (g *Grid) MaxTile() uint32 {
	var best uint32
	for x := range g.cells {
		for _, t := range g.cells[x] {
			if t != nil && t.Value > best {
				best = t.Value
			}
		}
	}
	return best
}

// HasAdjacentMatch reports whether two orthogonally adjacent tiles share
// a value.
func (g *Grid) HasAdjacentMatch() bool {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			t := g.cells[x][y]
			if t == nil {
				continue
			}
			if right := g.CellContent(x+1, y); right != nil && right.Value == t.Value {
				return true
			}
			if below := g.CellContent(x, y+1); below != nil && below.Value == t.Value {
				return true
			}
		}
	}
	return false
}

// Values returns tile values row by row, indexed [y][x]. Empty cells are 0.
func (g *Grid) Values() [][]uint32 {
	rows := make([][]uint32, g.size)
	for y := range rows {
		rows[y] = make([]uint32, g.size)
		for x := 0; x < g.size; x++ {
			if t := g.cells[x][y]; t != nil {
				rows[y][x] = t.Value
			}
		}
	}
	return rows
}

// String renders the board as space-separated rows, empty cells as '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if t := g.cells[x][y]; t != nil {
				sb.WriteString(strconv.FormatUint(uint64(t.Value), 10))
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
