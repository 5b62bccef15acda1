package tiles

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestDecodeMoves(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		count uint64
		want  []Move
	}{
		{"reference log", []byte{0x22, 0x81}, 7, []Move{Left, Up, Left, Up, Up, Left, Left}},
		{"all four codes", []byte{0x1B}, 4, []Move{Left, Right, Up, Down}},
		{"count stops early", []byte{0xFF, 0xFF}, 3, []Move{Down, Down, Down}},
		{"short input truncates", []byte{0x1B}, 10, []Move{Left, Right, Up, Down}},
		{"zero count", []byte{0x1B}, 0, []Move{}},
		{"empty input", nil, 5, []Move{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(DecodeMoves(tc.data, tc.count), tc.want)
		})
	}
}

func TestDecodeMovesHugeCount(t *testing.T) {
	is := is.New(t)
	moves := DecodeMoves([]byte{0x27}, ^uint64(0))
	is.Equal(len(moves), 4)
}

func TestEncodeMovesRoundTrip(t *testing.T) {
	is := is.New(t)

	moves := []Move{Left, Up, Left, Up, Up, Left, Left}
	data := EncodeMoves(moves)
	is.Equal(data, []byte{0x22, 0x80})
	is.Equal(DecodeMoves(data, uint64(len(moves))), moves)
}

func TestMoveVectors(t *testing.T) {
	tests := []struct {
		move   Move
		dx, dy int
	}{
		{Left, -1, 0},
		{Right, 1, 0},
		{Up, 0, -1},
		{Down, 0, 1},
		{Move(9), 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.move.String(), func(t *testing.T) {
			is := is.New(t)
			dx, dy := tc.move.Vector()
			is.Equal(dx, tc.dx)
			is.Equal(dy, tc.dy)
		})
	}
}

func TestMoveFromBits(t *testing.T) {
	is := is.New(t)
	is.Equal(MoveFromBits(0), Left)
	is.Equal(MoveFromBits(1), Right)
	is.Equal(MoveFromBits(2), Up)
	is.Equal(MoveFromBits(3), Down)
	is.Equal(MoveFromBits(0xFE), Up) // only the low bits count
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"L", Left}, {"left", Left}, {"0", Left},
		{"r", Right}, {"RIGHT", Right}, {"1", Right},
		{"U", Up}, {"up", Up}, {"2", Up},
		{"d", Down}, {" Down ", Down}, {"3", Down},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			is := is.New(t)
			got, err := ParseMove(tc.in)
			is.NoErr(err)
			is.Equal(got, tc.want)
		})
	}

	is := is.New(t)
	_, err := ParseMove("x")
	is.True(errors.Is(err, ErrInvalidMove))
}

func TestParseMoveList(t *testing.T) {
	is := is.New(t)

	moves, err := ParseMoveList([]string{"LURD", "left", "3"})
	is.NoErr(err)
	is.Equal(moves, []Move{Left, Up, Right, Down, Left, Down})

	_, err = ParseMoveList([]string{"LXR"})
	is.True(errors.Is(err, ErrInvalidMove))
}

func TestParseMovesHex(t *testing.T) {
	is := is.New(t)

	data, err := ParseMovesHex("0x2281")
	is.NoErr(err)
	is.Equal(data, []byte{0x22, 0x81})

	data, err = ParseMovesHex("2281111111111a22c4bbbae8")
	is.NoErr(err)
	is.Equal(len(data), 12)

	data, err = ParseMovesHex("")
	is.NoErr(err)
	is.Equal(len(data), 0)

	_, err = ParseMovesHex("0xzz")
	is.True(err != nil)
}

func TestFormatMoves(t *testing.T) {
	is := is.New(t)
	is.Equal(FormatMoves(DecodeMoves([]byte{0x22, 0x81}, 7)), "LULUULL")
	is.Equal(FormatMoves(nil), "")
	is.Equal(Move(7).String(), "Move(7)")
}
