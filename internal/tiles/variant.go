package tiles

import (
	"github.com/vovakirdan/tilescore/internal/core"
	"github.com/vovakirdan/tilescore/internal/registry"
)

// Variant adapts a rule set to registry.Variant.
type Variant struct {
	id    string
	title string
	rules Rules
}

// NewVariant returns the standard 4x4 variant.
func NewVariant() *Variant {
	return &Variant{id: "tiles", title: "Tiles 4x4", rules: StandardRules}
}

// NewLegacyVariant returns the variant that scores games the way older
// validators did, ending on any no-op move over a full board.
func NewLegacyVariant() *Variant {
	return &Variant{id: "tiles_legacy", title: "Tiles 4x4 (legacy end rule)", rules: LegacyRules}
}

func init() {
	registry.Register("tiles", func() registry.Variant {
		return NewVariant()
	})
	registry.Register("tiles_legacy", func() registry.Variant {
		return NewLegacyVariant()
	})
}

// ID returns the variant identifier.
func (v *Variant) ID() string { return v.id }

// Title returns the display name.
func (v *Variant) Title() string { return v.title }

// Rules returns the rule set the variant replays with.
func (v *Variant) Rules() Rules { return v.rules }

// Score decodes and replays a packed move log.
func (v *Variant) Score(seed uint64, moves []byte, movesLen uint64) uint32 {
	return v.rules.Play(seed, DecodeMoves(moves, movesLen))
}

// Replay decodes a packed move log and returns its frames.
func (v *Variant) Replay(seed uint64, moves []byte, movesLen uint64) []core.Frame {
	return v.rules.Trace(seed, DecodeMoves(moves, movesLen))
}
