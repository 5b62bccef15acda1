package core

// RuntimeConfig contains the terminal parameters the viewer starts with.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	StepRate int // Replay steps per second while playing
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		StepRate: 8,
	}
}

// Frame is one position of a replay: the board after the start tiles
// (Step 0) or after the Step-th supplied move.
type Frame struct {
	Step     int
	Move     string // Move name, empty for the start position
	Applied  bool   // Whether the move changed the board
	Score    uint32
	Board    [][]uint32 // Board[y][x], 0 for an empty cell
	MaxTile  uint32
	Terminal bool
}

// Size returns the board dimension of the frame.
func (f Frame) Size() int {
	return len(f.Board)
}
