package systems

import (
	"time"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/core"
	"github.com/solvane/stardrift/engine"
)

// PairSource supplies the current tick's collision records
// CollisionSystem is the production source; consumers never discover
// collisions themselves
type PairSource interface {
	Pairs() []engine.CollisionRecord
}

// DamageSystem resolves the tick's collision pairs into health and
// lifecycle mutations. It consumes the detector's records plus current
// component data. Unrecognized layer combinations are ignored without error
type DamageSystem struct {
	detector PairSource
}

// NewDamageSystem creates the resolver consuming the given detector
func NewDamageSystem(detector PairSource) *DamageSystem {
	return &DamageSystem{detector: detector}
}

func destructible(l component.Layer) bool {
	return l == component.LayerAsteroid || l == component.LayerBoss
}

func hazard(l component.Layer) bool {
	return l == component.LayerAsteroid ||
		l == component.LayerBoss ||
		l == component.LayerBossProjectile
}

// Update applies the resolution protocol to every pair in emission order
func (s *DamageSystem) Update(w *engine.World, dt time.Duration) {
	for _, rec := range s.detector.Pairs() {
		// An earlier pair this tick may already have destroyed a
		// participant of this one; re-check before mutating anything
		if !w.IsAlive(rec.EntityA) || !w.IsAlive(rec.EntityB) {
			continue
		}

		switch {
		case rec.LayerA == component.LayerProjectile && destructible(rec.LayerB):
			s.resolveProjectile(w, rec.EntityA, rec.EntityB)
		case rec.LayerB == component.LayerProjectile && destructible(rec.LayerA):
			s.resolveProjectile(w, rec.EntityB, rec.EntityA)
		case rec.LayerA == component.LayerPlayer && hazard(rec.LayerB):
			s.resolveHazardContact(w, rec.EntityA)
		case rec.LayerB == component.LayerPlayer && hazard(rec.LayerA):
			s.resolveHazardContact(w, rec.EntityB)
		}
	}
}

// resolveProjectile subtracts the projectile's damage from the target's
// health, then destroys the projectile: shots are single-use
func (s *DamageSystem) resolveProjectile(w *engine.World, projectile, target core.Entity) {
	damage, _ := w.Components.Damages.Get(projectile)

	if health, ok := w.Components.Healths.Get(target); ok {
		health.Current -= damage.Amount
		w.Components.Healths.Add(target, health)
	}

	w.DestroyEntity(projectile)
}

// resolveHazardContact zeroes the player's health on contact with a
// mobile hazard: instant kill, not proportional damage. Invulnerability
// blocks it entirely. The hazard itself is left untouched
func (s *DamageSystem) resolveHazardContact(w *engine.World, player core.Entity) {
	health, ok := w.Components.Healths.Get(player)
	if !ok || health.Invulnerable {
		return
	}
	health.Current = 0
	w.Components.Healths.Add(player, health)
}
