package engine

import (
	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/core"
)

// CollisionRecord is one confirmed contact for the current tick
// Records are ephemeral: the detector fully recomputes and replaces the
// list every tick, nothing may hold one across ticks
type CollisionRecord struct {
	EntityA core.Entity
	EntityB core.Entity
	LayerA  component.Layer
	LayerB  component.Layer

	// Distance between centers on the gameplay plane at detection time
	Distance float64
}

// PairKey normalizes an unordered entity pair so each collision is
// reported at most once regardless of discovery order
type PairKey struct {
	Lo core.Entity
	Hi core.Entity
}

// NewPairKey orders the handles; the pair (a, b) and (b, a) map to one key
func NewPairKey(a, b core.Entity) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}
