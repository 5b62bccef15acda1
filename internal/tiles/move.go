package tiles

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Move represents a move direction. The numeric value is the 2-bit code used
// in packed move logs.
type Move uint8

const (
	Left Move = iota
	Right
	Up
	Down
)

// ErrInvalidMove is returned when a move name cannot be parsed.
var ErrInvalidMove = errors.New("tiles: invalid move")

// MoveFromBits maps the low two bits of b to a move. Every pattern is valid.
func MoveFromBits(b byte) Move {
	return Move(b & 0b11)
}

// Valid reports whether m is one of the four directions.
func (m Move) Valid() bool {
	return m <= Down
}

// Vector returns the unit displacement for the move. Up decreases y.
func (m Move) Vector() (dx, dy int) {
	switch m {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the move name.
func (m Move) String() string {
	switch m {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// Letter returns the single-letter form used by FormatMoves.
func (m Move) Letter() byte {
	if !m.Valid() {
		return '?'
	}
	return "LRUD"[m]
}

// ParseMove accepts a letter (L, R, U, D), a name (left, right, up, down)
// or a 2-bit code (0-3). Matching is case-insensitive.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left", "0":
		return Left, nil
	case "r", "right", "1":
		return Right, nil
	case "u", "up", "2":
		return Up, nil
	case "d", "down", "3":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// ParseMoveList parses a sequence of moves. Each argument may be a single
// move or a run of letters such as "LURD".
func ParseMoveList(args []string) ([]Move, error) {
	var moves []Move
	for _, arg := range args {
		if m, err := ParseMove(arg); err == nil {
			moves = append(moves, m)
			continue
		}
		for _, r := range arg {
			m, err := ParseMove(string(r))
			if err != nil || r >= '0' && r <= '9' {
				return nil, fmt.Errorf("%w: %q", ErrInvalidMove, arg)
			}
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// DecodeMoves unpacks up to movesLen moves from data, reading each byte from
// the most significant bits down, two bits per move. If data holds fewer
// than movesLen moves the result is simply shorter; padding bits after the
// last requested move are ignored.
func DecodeMoves(data []byte, movesLen uint64) []Move {
	capacity := uint64(len(data)) * 4
	if movesLen < capacity {
		capacity = movesLen
	}
	moves := make([]Move, 0, capacity)

	for _, b := range data {
		for shift := 6; shift >= 0; shift -= 2 {
			if uint64(len(moves)) >= movesLen {
				return moves
			}
			moves = append(moves, MoveFromBits(b>>shift))
		}
	}
	return moves
}

// EncodeMoves packs moves four to a byte, most significant bits first.
// The final byte is zero padded, so DecodeMoves(EncodeMoves(m), len(m))
// returns m.
func EncodeMoves(moves []Move) []byte {
	out := make([]byte, (len(moves)+3)/4)
	for i, m := range moves {
		shift := 6 - 2*(i%4)
		out[i/4] |= byte(m&0b11) << shift
	}
	return out
}

// ParseMovesHex decodes a packed move log written as hex, with or without
// a 0x prefix.
func ParseMovesHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("tiles: invalid move log %q: %w", s, err)
	}
	return data, nil
}

// FormatMoves renders moves as a string of letters, e.g. "LULUULL".
func FormatMoves(moves []Move) string {
	var sb strings.Builder
	sb.Grow(len(moves))
	for _, m := range moves {
		sb.WriteByte(m.Letter())
	}
	return sb.String()
}
