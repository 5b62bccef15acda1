package tiles

import (
	"github.com/holiman/uint256"

	"github.com/vovakirdan/tilescore/internal/core"
)

// Play replays moves from the start position for seed and returns the final
// score. Moves that change nothing are skipped; replay stops at the first
// terminal position and ignores the rest of the log.
func (r Rules) Play(seed uint64, moves []Move) uint32 {
	return r.Run(seed, moves).Score
}

// Trace replays moves like Play and records a frame for the start position
// and for every move consumed, including the one that ended the game.
func (r Rules) Trace(seed uint64, moves []Move) []core.Frame {
	g := NewGame(r, seed)
	frames := make([]core.Frame, 0, len(moves)+1)
	frames = append(frames, g.Frame(0, "", false))

	for i, m := range moves {
		applied := g.Move(m)
		frames = append(frames, g.Frame(i+1, m.String(), applied))
		if g.GameOver() {
			break
		}
	}
	return frames
}

// Outcome is the full result of a replay.
type Outcome struct {
	Score    uint32
	Applied  int
	Consumed int
	Terminal bool
	MaxTile  uint32
	Board    [][]uint32
}

// Run replays moves and reports the final position along with how many
// moves were consumed and how many changed the board.
func (r Rules) Run(seed uint64, moves []Move) Outcome {
	g := NewGame(r, seed)
	consumed := 0
	for _, m := range moves {
		consumed++
		g.Move(m)
		if g.GameOver() {
			break
		}
	}
	return Outcome{
		Score:    g.Score(),
		Applied:  len(g.Moves()),
		Consumed: consumed,
		Terminal: g.GameOver(),
		MaxTile:  g.grid.MaxTile(),
		Board:    g.grid.Values(),
	}
}

// Play replays moves under StandardRules.
func Play(seed uint64, moves []Move) uint32 {
	return StandardRules.Play(seed, moves)
}

// ReplayScore decodes movesLen moves from the packed log and replays them
// under StandardRules.
func ReplayScore(seed uint64, moves []byte, movesLen uint64) uint32 {
	return Play(seed, DecodeMoves(moves, movesLen))
}

// GetScore is ReplayScore widened to a 256-bit word, the width an on-chain
// caller compares against.
func GetScore(seed uint64, moves []byte, movesLen uint64) *uint256.Int {
	return uint256.NewInt(uint64(ReplayScore(seed, moves, movesLen)))
}
