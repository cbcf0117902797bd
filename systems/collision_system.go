package systems

import (
	"time"

	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/physics"
)

// CollisionSystem is the broad+narrow phase detector. Each tick it
// rebuilds the spatial grid from every enabled collider, confirms grid
// candidates with the exact geometric test and emits a de-duplicated,
// symmetric pair list that fully replaces the previous tick's list
type CollisionSystem struct {
	grid    *engine.SpatialGrid
	records []engine.CollisionRecord
	seen    map[engine.PairKey]struct{}
}

// NewCollisionSystem creates the detector; fails fast on bad grid config
func NewCollisionSystem(halfWidth, halfHeight, cellSize float64) (*CollisionSystem, error) {
	grid, err := engine.NewSpatialGrid(halfWidth, halfHeight, cellSize)
	if err != nil {
		return nil, err
	}
	return &CollisionSystem{
		grid:    grid,
		records: make([]engine.CollisionRecord, 0, 64),
		seen:    make(map[engine.PairKey]struct{}, 64),
	}, nil
}

// Pairs returns this tick's collision records. The slice is transient:
// it is overwritten on the next tick and must be re-read by consumers
func (s *CollisionSystem) Pairs() []engine.CollisionRecord {
	return s.records
}

// Update rebuilds the broad phase and emits the tick's pair list
func (s *CollisionSystem) Update(w *engine.World, dt time.Duration) {
	s.records = s.records[:0]
	for k := range s.seen {
		delete(s.seen, k)
	}
	s.grid.Clear()

	c := w.Components
	entities := w.Query().
		With(c.Transforms).
		With(c.Colliders).
		Execute()

	for _, e := range entities {
		col, _ := c.Colliders.Get(e)
		if !col.Enabled {
			continue
		}
		transform, _ := c.Transforms.Get(e)
		s.grid.Insert(e, transform.Position, col.BoundingRadius())
	}

	for _, e := range entities {
		colA, _ := c.Colliders.Get(e)
		if !colA.Enabled {
			continue
		}
		transformA, _ := c.Transforms.Get(e)

		candidates := s.grid.Query(transformA.Position, colA.BoundingRadius())
		for _, other := range candidates {
			// An entity never collides with itself
			if other == e {
				continue
			}

			key := engine.NewPairKey(e, other)
			if _, done := s.seen[key]; done {
				continue
			}
			s.seen[key] = struct{}{}

			colB, _ := c.Colliders.Get(other)

			// Eligibility requires mutual mask agreement
			if !colA.Mask.Has(colB.Layer) || !colB.Mask.Has(colA.Layer) {
				continue
			}

			transformB, _ := c.Transforms.Get(other)
			dist, hit := physics.Collide(transformA.Position, colA, transformB.Position, colB)
			if !hit {
				continue
			}

			s.records = append(s.records, engine.CollisionRecord{
				EntityA:  e,
				EntityB:  other,
				LayerA:   colA.Layer,
				LayerB:   colB.Layer,
				Distance: dist,
			})
		}
	}
}
