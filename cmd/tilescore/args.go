package main

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tilescore/internal/tiles"
)

// parseSeed accepts decimal or 0x-prefixed hex.
func parseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

func parseCount(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid move count %q: %w", s, err)
	}
	return n, nil
}

func parseScore(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", s, err)
	}
	return uint32(n), nil
}

// replayArgs holds the seed, packed log and move count shared by several commands.
type replayArgs struct {
	seed  uint64
	hex   string
	moves []byte
	count uint64
}

func parseReplayArgs(args []string) (replayArgs, error) {
	seed, err := parseSeed(args[0])
	if err != nil {
		return replayArgs{}, err
	}
	moves, err := tiles.ParseMovesHex(args[1])
	if err != nil {
		return replayArgs{}, err
	}
	count, err := parseCount(args[2])
	if err != nil {
		return replayArgs{}, err
	}
	return replayArgs{seed: seed, hex: args[1], moves: moves, count: count}, nil
}
