package systems

import (
	"time"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/core"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/parameter"
)

// PickupSystem is a downstream consumer of the detector's pair list:
// the damage resolver ignores player/power-up contact, this system
// grants the effect and removes the collectible
type PickupSystem struct {
	detector PairSource
}

func NewPickupSystem(detector PairSource) *PickupSystem {
	return &PickupSystem{detector: detector}
}

func (s *PickupSystem) Update(w *engine.World, dt time.Duration) {
	for _, rec := range s.detector.Pairs() {
		var player, pickup core.Entity
		switch {
		case rec.LayerA == component.LayerPlayer && rec.LayerB == component.LayerPowerUp:
			player, pickup = rec.EntityA, rec.EntityB
		case rec.LayerB == component.LayerPlayer && rec.LayerA == component.LayerPowerUp:
			player, pickup = rec.EntityB, rec.EntityA
		default:
			continue
		}

		if !w.IsAlive(player) || !w.IsAlive(pickup) {
			continue
		}

		powerUp, ok := w.Components.PowerUps.Get(pickup)
		if !ok {
			continue
		}

		switch powerUp.Kind {
		case component.PowerUpShield:
			if health, ok := w.Components.Healths.Get(player); ok {
				health.Invulnerable = true
				health.InvulnerableFor = parameter.PowerUpShieldDuration
				w.Components.Healths.Add(player, health)
			}
		case component.PowerUpRapidFire:
			if weapon, ok := w.Components.Weapons.Get(player); ok {
				weapon.RapidRemaining = parameter.WeaponRapidDuration
				w.Components.Weapons.Add(player, weapon)
			}
		}

		w.DestroyEntity(pickup)
	}
}
