// Package verify checks claimed scores by replaying the submitted move log
// and optionally records the outcome.
package verify

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilescore/internal/registry"
	"github.com/vovakirdan/tilescore/internal/tiles"
)

var (
	ErrInvalidMoves   = errors.New("verify: invalid move log")
	ErrUnknownVariant = errors.New("verify: unknown variant")
	ErrTooManyMoves   = errors.New("verify: declared move count exceeds limit")
)

// Submission is a claimed score together with what is needed to reproduce it.
type Submission struct {
	Variant  string `yaml:"variant"`
	Player   string `yaml:"player"`
	Seed     uint64 `yaml:"seed"`
	MovesHex string `yaml:"moves"`
	MovesLen uint64 `yaml:"moves_len"`
	Claimed  uint32 `yaml:"claimed"`
}

// Result is the outcome of verifying one submission. ID is set once the
// result has been saved.
type Result struct {
	ID string
	Submission
	Score    uint32
	Verified bool
}

// ResultSaver is an interface for saving verification results.
// This allows the service to persist results without depending on the storage package.
type ResultSaver interface {
	SaveResult(ctx context.Context, r Result) (string, error)
}

// Config holds configuration for the service.
type Config struct {
	DefaultVariant string // used when a submission names none
	MaxMoves       uint64 // 0 = no cap
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultVariant: registry.Default,
		MaxMoves:       1000000,
	}
}

// Service replays submissions and compares the recomputed score with the
// claim. It is safe for concurrent use.
type Service struct {
	cfg    Config
	saver  ResultSaver // Optional, can be nil
	logger *log.Logger
}

// NewService creates a service. A nil logger discards output.
func NewService(cfg Config, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.DefaultVariant == "" {
		cfg.DefaultVariant = registry.Default
	}
	return &Service{cfg: cfg, logger: logger}
}

// SetResultSaver sets the optional result saver.
func (s *Service) SetResultSaver(saver ResultSaver) {
	s.saver = saver
}

// Verify replays sub and reports whether the claimed score matches. A
// mismatch is not an error; errors mean the submission could not be
// replayed or saved.
func (s *Service) Verify(ctx context.Context, sub Submission) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if sub.Variant == "" {
		sub.Variant = s.cfg.DefaultVariant
	}
	if s.cfg.MaxMoves > 0 && sub.MovesLen > s.cfg.MaxMoves {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyMoves, sub.MovesLen, s.cfg.MaxMoves)
	}

	variant, err := registry.Create(sub.Variant)
	if err != nil {
		return Result{}, fmt.Errorf("%w %q", ErrUnknownVariant, sub.Variant)
	}

	moves, err := tiles.ParseMovesHex(sub.MovesHex)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidMoves, err)
	}
	sub.MovesHex = hex.EncodeToString(moves)

	score := variant.Score(sub.Seed, moves, sub.MovesLen)
	res := Result{
		Submission: sub,
		Score:      score,
		Verified:   score == sub.Claimed,
	}

	s.logger.Info("replayed submission",
		"variant", sub.Variant,
		"player", sub.Player,
		"seed", sub.Seed,
		"moves", sub.MovesLen,
		"claimed", sub.Claimed,
		"score", score,
		"verified", res.Verified,
	)

	if s.saver == nil {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	id, err := s.saver.SaveResult(ctx, res)
	if err != nil {
		s.logger.Error("failed to save result", "player", sub.Player, "err", err)
		return res, fmt.Errorf("verify: save result: %w", err)
	}
	res.ID = id
	s.logger.Debug("saved result", "id", id)

	return res, nil
}
