package systems

import (
	"time"

	"github.com/solvane/stardrift/engine"
)

// HealthSystem ticks down invulnerability windows. The countdown runs
// every tick regardless of damage events; the flag clears on expiry
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *engine.World, dt time.Duration) {
	healths := w.Components.Healths
	for _, e := range healths.All() {
		health, _ := healths.Get(e)
		if health.InvulnerableFor <= 0 {
			continue
		}
		health.InvulnerableFor -= dt
		if health.InvulnerableFor <= 0 {
			health.InvulnerableFor = 0
			health.Invulnerable = false
		}
		healths.Add(e, health)
	}
}
