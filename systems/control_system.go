package systems

import (
	"time"

	"github.com/solvane/stardrift/audio"
	"github.com/solvane/stardrift/content"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/input"
	"github.com/solvane/stardrift/parameter"
	"github.com/solvane/stardrift/vmath"
)

// ControlSystem applies the player's accumulated input to the ship:
// turn impulses rotate the heading, thrust impulses push along it and
// fire spawns a cooldown-gated projectile. Runs first in the tick so
// physics integrates the updated velocity
type ControlSystem struct {
	state  *input.State
	sounds *audio.Engine
}

func NewControlSystem(state *input.State, sounds *audio.Engine) *ControlSystem {
	return &ControlSystem{state: state, sounds: sounds}
}

func (s *ControlSystem) Update(w *engine.World, dt time.Duration) {
	intent := s.state.Drain()
	c := w.Components

	players := w.Query().
		With(c.Players).
		With(c.Transforms).
		With(c.Velocities).
		With(c.Weapons).
		Execute()

	for _, e := range players {
		transform, _ := c.Transforms.Get(e)
		velocity, _ := c.Velocities.Get(e)
		weapon, _ := c.Weapons.Get(e)

		// Heading lives in Rotation.Z
		transform.Rotation.Z += intent.Turn * parameter.PlayerTurnStep

		if intent.Thrust > 0 {
			dir := vmath.FromAngle(transform.Rotation.Z)
			impulse := parameter.PlayerThrustImpulse * float64(intent.Thrust)
			velocity.Linear = vmath.V3FAdd(velocity.Linear, vmath.V3FScale(dir, impulse))
		}

		weapon.CooldownRemaining -= dt
		if weapon.CooldownRemaining < 0 {
			weapon.CooldownRemaining = 0
		}
		if weapon.RapidRemaining > 0 {
			weapon.RapidRemaining -= dt
		}

		if intent.Fire && weapon.CooldownRemaining == 0 {
			dir := vmath.FromAngle(transform.Rotation.Z)
			muzzle := vmath.V3FAdd(transform.Position, vmath.V3FScale(dir, parameter.ProjectileSpawnOffset))
			content.NewProjectile(w, muzzle, dir, weapon.ProjectileSpeed, weapon.ProjectileDamage)
			s.sounds.Play(audio.CueFire)

			interval := weapon.FireInterval
			if weapon.RapidRemaining > 0 {
				interval = parameter.WeaponRapidInterval
			}
			weapon.CooldownRemaining = interval
		}

		c.Transforms.Add(e, transform)
		c.Velocities.Add(e, velocity)
		c.Weapons.Add(e, weapon)
	}
}
