// Package tiles implements the deterministic sliding-tile engine used to
// verify submitted scores. Given a seed and a move log, replaying the moves
// reproduces exactly the board and score the player saw, because every tile
// spawn is drawn from a seeded xorshift128+ generator.
package tiles

import (
	"math"
	"math/bits"

	"github.com/vovakirdan/tilescore/internal/core"
)

// BoardSize is the edge length of the standard board.
const BoardSize = 4

// A value draw strictly below this spawns a 2, anything else a 4.
const spawnTwoThreshold uint64 = math.MaxUint64 * 9 / 10

// Rules selects the board size and the end-of-game condition.
type Rules struct {
	// Size is the board edge length. Zero means BoardSize.
	Size int

	// FullBoardTerminal ends the game on any move that changes nothing
	// while the board is full, even if a merge is still possible in
	// another direction. Older validators scored games this way.
	FullBoardTerminal bool
}

var (
	// StandardRules end the game only when no move can change the board.
	StandardRules = Rules{Size: BoardSize}

	// LegacyRules reproduce scores computed by older validators.
	LegacyRules = Rules{Size: BoardSize, FullBoardTerminal: true}
)

func (r Rules) size() int {
	if r.Size <= 0 {
		return BoardSize
	}
	return r.Size
}

// Game is one replay in progress.
type Game struct {
	rules    Rules
	grid     *Grid
	rng      *Xorshift128Plus
	score    uint32
	moves    []Move
	gameOver bool
}

// NewGame seeds the generator and places the two start tiles.
func NewGame(rules Rules, seed uint64) *Game {
	g := newGame(rules, NewGrid(rules.size()), seed)
	g.addStartTiles()
	return g
}

func newGame(rules Rules, grid *Grid, seed uint64) *Game {
	return &Game{
		rules: rules,
		grid:  grid,
		rng:   NewXorshift128Plus(seed),
	}
}

// Score returns the sum of all merged tile values so far.
func (g *Game) Score() uint32 { return g.score }

// GameOver reports whether the game has reached a terminal position.
func (g *Game) GameOver() bool { return g.gameOver }

// Moves returns the moves that changed the board, in order.
func (g *Game) Moves() []Move { return g.moves }

// Grid returns the live board.
func (g *Game) Grid() *Grid { return g.grid }

func (g *Game) addStartTiles() {
	g.addRandomTile()
	g.addRandomTile()
}

// addRandomTile draws the value first and the cell second. A full board
// consumes no draws.
func (g *Game) addRandomTile() {
	available := g.grid.AvailableCells()
	if len(available) == 0 {
		return
	}

	valueRnd := g.rng.Next()
	cellRnd := g.rng.Next()

	idx, _ := bits.Mul64(cellRnd, uint64(len(available)))
	pos := available[idx]

	value := uint32(4)
	if valueRnd < spawnTwoThreshold {
		value = 2
	}
	g.grid.Insert(NewTile(pos.X, pos.Y, value))
}

// Move slides every tile toward dir, merging equal pairs once per move.
// It returns true if the board changed, in which case a new tile spawns.
// A move that changes nothing may end the game.
func (g *Game) Move(dir Move) bool {
	if g.gameOver || !dir.Valid() {
		return false
	}

	dx, dy := dir.Vector()
	xs, ys := g.traversals(dx, dy)
	moved := false

	g.grid.ClearMerged()

	for _, x := range xs {
		for _, y := range ys {
			tile := g.grid.CellContent(x, y)
			if tile == nil {
				continue
			}

			far, next := g.findFarthestPosition(x, y, dx, dy)

			if other := g.grid.CellContent(next.X, next.Y); other != nil && other.Value == tile.Value && !other.Merged {
				merged := &Tile{X: next.X, Y: next.Y, Value: tile.Value * 2, Merged: true}
				g.grid.Insert(merged)
				g.grid.Remove(tile)
				g.score += merged.Value
				moved = true
				continue
			}

			if far.X != x || far.Y != y {
				g.grid.moveTile(tile, far.X, far.Y)
				moved = true
			}
		}
	}

	g.grid.ClearMerged()

	if moved {
		g.moves = append(g.moves, dir)
		g.addRandomTile()
		return true
	}

	if !g.movesAvailable() {
		g.gameOver = true
	}
	return false
}

// traversals orders the scan so tiles nearest the destination edge move
// first.
func (g *Game) traversals(dx, dy int) (xs, ys []int) {
	n := g.grid.Size()
	xs = make([]int, n)
	ys = make([]int, n)
	for i := 0; i < n; i++ {
		xs[i] = i
		ys[i] = i
	}
	if dx == 1 {
		reverse(xs)
	}
	if dy == 1 {
		reverse(ys)
	}
	return xs, ys
}

// findFarthestPosition walks from (x, y) while cells are empty. It returns
// the last empty cell reached and the first cell beyond it, which may be
// off the board.
func (g *Game) findFarthestPosition(x, y, dx, dy int) (far, next Position) {
	far = Position{X: x, Y: y}
	next = Position{X: x + dx, Y: y + dy}
	for g.grid.CellAvailable(next.X, next.Y) {
		far = next
		next = Position{X: next.X + dx, Y: next.Y + dy}
	}
	return far, next
}

func (g *Game) movesAvailable() bool {
	if len(g.grid.AvailableCells()) > 0 {
		return true
	}
	if g.rules.FullBoardTerminal {
		return false
	}
	return g.grid.HasAdjacentMatch()
}

// Frame snapshots the current position for display.
func (g *Game) Frame(step int, mv string, applied bool) core.Frame {
	return core.Frame{
		Step:     step,
		Move:     mv,
		Applied:  applied,
		Score:    g.score,
		Board:    g.grid.Values(),
		MaxTile:  g.grid.MaxTile(),
		Terminal: g.gameOver,
	}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
