// Package content holds the entity factories: they populate initial
// component values for the concrete game objects and contain no logic
package content

import (
	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/core"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/parameter"
	"github.com/solvane/stardrift/vmath"
)

// NewShip spawns the player at the world origin with a fresh
// invulnerability window
func NewShip(w *engine.World) core.Entity {
	e := w.CreateEntity()
	c := w.Components

	c.Transforms.Add(e, component.TransformComponent{
		Scale: vmath.Vec3F{X: 1, Y: 1, Z: 1},
	})
	c.Velocities.Add(e, component.VelocityComponent{})
	c.Physics.Add(e, component.PhysicsComponent{
		Mass:           parameter.PlayerMass,
		LinearDamping:  parameter.PlayerLinearDamp,
		AngularDamping: parameter.PlayerAngularDamp,
		MaxSpeed:       parameter.PlayerMaxSpeed,
		WrapScreen:     true,
	})
	c.Colliders.Add(e, component.ColliderComponent{
		Shape:  component.ShapeSphere,
		Radius: parameter.PlayerRadius,
		Layer:  component.LayerPlayer,
		Mask: component.MaskOf(
			component.LayerAsteroid,
			component.LayerBoss,
			component.LayerBossProjectile,
			component.LayerPowerUp,
		),
		Enabled: true,
	})
	c.Healths.Add(e, component.HealthComponent{
		Current:         parameter.PlayerMaxHealth,
		Max:             parameter.PlayerMaxHealth,
		Invulnerable:    true,
		InvulnerableFor: parameter.PlayerSpawnInvulnerability,
	})
	c.Weapons.Add(e, component.WeaponComponent{
		FireInterval:     parameter.WeaponFireInterval,
		ProjectileSpeed:  parameter.ProjectileSpeed,
		ProjectileDamage: parameter.ProjectileDamage,
	})
	c.Players.Add(e, component.PlayerComponent{Lives: parameter.PlayerLives})
	c.Sprites.Add(e, component.SpriteComponent{Glyph: '^', Color: component.ColorPlayer})
	return e
}

// NewAsteroid spawns a rock of the given size at pos with velocity vel
func NewAsteroid(w *engine.World, size component.AsteroidSize, pos, vel vmath.Vec3F) core.Entity {
	radius, health, score := asteroidTuning(size)

	e := w.CreateEntity()
	c := w.Components

	c.Transforms.Add(e, component.TransformComponent{
		Position: pos,
		Scale:    vmath.Vec3F{X: 1, Y: 1, Z: 1},
	})
	c.Velocities.Add(e, component.VelocityComponent{Linear: vel})
	c.Physics.Add(e, component.PhysicsComponent{
		Mass:           parameter.AsteroidMass,
		LinearDamping:  1.0, // rocks keep drifting
		AngularDamping: 1.0,
		MaxSpeed:       parameter.AsteroidMaxSpeed,
		WrapScreen:     true,
	})
	c.Colliders.Add(e, component.ColliderComponent{
		Shape:   component.ShapeSphere,
		Radius:  radius,
		Layer:   component.LayerAsteroid,
		Mask:    component.MaskOf(component.LayerPlayer, component.LayerProjectile),
		Enabled: true,
	})
	c.Healths.Add(e, component.HealthComponent{Current: health, Max: health})
	c.Scores.Add(e, component.ScoreComponent{Value: score})
	c.Asteroids.Add(e, component.AsteroidComponent{Size: size})
	c.Sprites.Add(e, component.SpriteComponent{Glyph: asteroidGlyph(size), Color: component.ColorAsteroid})
	return e
}

// NewProjectile spawns a single-use player shot heading along dir
func NewProjectile(w *engine.World, pos, dir vmath.Vec3F, speed, damage float64) core.Entity {
	e := w.CreateEntity()
	c := w.Components

	c.Transforms.Add(e, component.TransformComponent{
		Position: pos,
		Scale:    vmath.Vec3F{X: 1, Y: 1, Z: 1},
	})
	c.Velocities.Add(e, component.VelocityComponent{
		Linear: vmath.V3FScale(vmath.V3FNormalize(dir), speed),
	})
	c.Physics.Add(e, component.PhysicsComponent{
		Mass:           0.1,
		LinearDamping:  1.0,
		AngularDamping: 1.0,
		WrapScreen:     true,
	})
	c.Colliders.Add(e, component.ColliderComponent{
		Shape:   component.ShapeSphere,
		Radius:  parameter.ProjectileRadius,
		Layer:   component.LayerProjectile,
		Mask:    component.MaskOf(component.LayerAsteroid, component.LayerBoss),
		Enabled: true,
	})
	c.Damages.Add(e, component.DamageComponent{Amount: damage})
	c.Lifetimes.Add(e, component.LifetimeComponent{Remaining: parameter.ProjectileLifetime})
	c.Sprites.Add(e, component.SpriteComponent{Glyph: '·', Color: component.ColorProjectile})
	return e
}

// NewBoss spawns the boss at pos, drifting toward the play field center
func NewBoss(w *engine.World, pos vmath.Vec3F) core.Entity {
	e := w.CreateEntity()
	c := w.Components

	heading := vmath.V3FScale(vmath.V3FNormalize(vmath.V3FScale(pos, -1)), parameter.BossSpeed)

	c.Transforms.Add(e, component.TransformComponent{
		Position: pos,
		Scale:    vmath.Vec3F{X: 1, Y: 1, Z: 1},
	})
	c.Velocities.Add(e, component.VelocityComponent{Linear: heading})
	c.Physics.Add(e, component.PhysicsComponent{
		Mass:           parameter.BossMass,
		LinearDamping:  1.0,
		AngularDamping: 1.0,
		MaxSpeed:       parameter.BossSpeed,
		WrapScreen:     true,
	})
	c.Colliders.Add(e, component.ColliderComponent{
		Shape:   component.ShapeSphere,
		Radius:  parameter.BossRadius,
		Layer:   component.LayerBoss,
		Mask:    component.MaskOf(component.LayerPlayer, component.LayerProjectile),
		Enabled: true,
	})
	c.Healths.Add(e, component.HealthComponent{Current: parameter.BossHealth, Max: parameter.BossHealth})
	c.Scores.Add(e, component.ScoreComponent{Value: parameter.ScoreBoss})
	c.Bosses.Add(e, component.BossComponent{
		FireInterval: parameter.BossFireInterval,
		FireCooldown: parameter.BossFireInterval,
	})
	c.Sprites.Add(e, component.SpriteComponent{Glyph: '@', Color: component.ColorBoss})
	return e
}

// NewBossProjectile spawns a hazard shot; it instant-kills the player on
// contact and is never destroyed by that contact
func NewBossProjectile(w *engine.World, pos, dir vmath.Vec3F) core.Entity {
	e := w.CreateEntity()
	c := w.Components

	c.Transforms.Add(e, component.TransformComponent{
		Position: pos,
		Scale:    vmath.Vec3F{X: 1, Y: 1, Z: 1},
	})
	c.Velocities.Add(e, component.VelocityComponent{
		Linear: vmath.V3FScale(vmath.V3FNormalize(dir), parameter.BossProjectileSpeed),
	})
	c.Physics.Add(e, component.PhysicsComponent{
		Mass:           0.1,
		LinearDamping:  1.0,
		AngularDamping: 1.0,
		WrapScreen:     false,
	})
	c.Colliders.Add(e, component.ColliderComponent{
		Shape:   component.ShapeSphere,
		Radius:  parameter.BossProjectileRadius,
		Layer:   component.LayerBossProjectile,
		Mask:    component.MaskOf(component.LayerPlayer),
		Enabled: true,
	})
	c.Lifetimes.Add(e, component.LifetimeComponent{Remaining: parameter.BossProjectileLifetime})
	c.Sprites.Add(e, component.SpriteComponent{Glyph: '*', Color: component.ColorBoss})
	return e
}

// NewPowerUp spawns a collectible at pos; contact with it is inert for
// the damage resolver, the pickup system consumes the pair
func NewPowerUp(w *engine.World, kind component.PowerUpKind, pos vmath.Vec3F) core.Entity {
	e := w.CreateEntity()
	c := w.Components

	c.Transforms.Add(e, component.TransformComponent{
		Position: pos,
		Scale:    vmath.Vec3F{X: 1, Y: 1, Z: 1},
	})
	c.Colliders.Add(e, component.ColliderComponent{
		Shape:   component.ShapeSphere,
		Radius:  parameter.PowerUpRadius,
		Layer:   component.LayerPowerUp,
		Mask:    component.MaskOf(component.LayerPlayer),
		Enabled: true,
	})
	c.PowerUps.Add(e, component.PowerUpComponent{Kind: kind})
	c.Lifetimes.Add(e, component.LifetimeComponent{Remaining: parameter.PowerUpLifetime})
	c.Sprites.Add(e, component.SpriteComponent{Glyph: '+', Color: component.ColorPowerUp})
	return e
}

func asteroidTuning(size component.AsteroidSize) (radius, health float64, score int) {
	switch size {
	case component.AsteroidLarge:
		return parameter.AsteroidLargeRadius, parameter.AsteroidLargeHealth, parameter.ScoreLargeAsteroid
	case component.AsteroidMedium:
		return parameter.AsteroidMediumRadius, parameter.AsteroidMediumHealth, parameter.ScoreMediumAsteroid
	default:
		return parameter.AsteroidSmallRadius, parameter.AsteroidSmallHealth, parameter.ScoreSmallAsteroid
	}
}

func asteroidGlyph(size component.AsteroidSize) rune {
	switch size {
	case component.AsteroidLarge:
		return 'O'
	case component.AsteroidMedium:
		return 'o'
	default:
		return '.'
	}
}
