package systems

import (
	"time"

	"github.com/solvane/stardrift/engine"
)

// LifetimeSystem destroys entities whose lifetime has expired
// It runs late in the tick so other systems can still see the final state
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *engine.World, dt time.Duration) {
	lifetimes := w.Components.Lifetimes
	for _, e := range lifetimes.All() {
		lifetime, _ := lifetimes.Get(e)
		lifetime.Remaining -= dt
		if lifetime.Remaining <= 0 {
			w.DestroyEntity(e)
			continue
		}
		lifetimes.Add(e, lifetime)
	}
}
