package engine

import (
	"github.com/solvane/stardrift/component"
)

// ComponentStore holds one typed store per component kind
// The closed set of fields replaces name-keyed lookup: systems reach
// stores directly and the compiler checks every access
type ComponentStore struct {
	// Kernel
	Transforms *Store[component.TransformComponent]
	Velocities *Store[component.VelocityComponent]
	Physics    *Store[component.PhysicsComponent]
	Colliders  *Store[component.ColliderComponent]
	Healths    *Store[component.HealthComponent]
	Damages    *Store[component.DamageComponent]

	// Gameplay
	Players   *Store[component.PlayerComponent]
	Asteroids *Store[component.AsteroidComponent]
	Bosses    *Store[component.BossComponent]
	PowerUps  *Store[component.PowerUpComponent]
	Weapons   *Store[component.WeaponComponent]
	Scores    *Store[component.ScoreComponent]

	// Lifecycle and presentation
	Lifetimes *Store[component.LifetimeComponent]
	Sprites   *Store[component.SpriteComponent]
}

// newComponentStore initializes every store and registers them for
// uniform lifecycle operations (destroy, clear)
func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Transforms: NewStore[component.TransformComponent](),
		Velocities: NewStore[component.VelocityComponent](),
		Physics:    NewStore[component.PhysicsComponent](),
		Colliders:  NewStore[component.ColliderComponent](),
		Healths:    NewStore[component.HealthComponent](),
		Damages:    NewStore[component.DamageComponent](),

		Players:   NewStore[component.PlayerComponent](),
		Asteroids: NewStore[component.AsteroidComponent](),
		Bosses:    NewStore[component.BossComponent](),
		PowerUps:  NewStore[component.PowerUpComponent](),
		Weapons:   NewStore[component.WeaponComponent](),
		Scores:    NewStore[component.ScoreComponent](),

		Lifetimes: NewStore[component.LifetimeComponent](),
		Sprites:   NewStore[component.SpriteComponent](),
	}

	all := []AnyStore{
		cs.Transforms,
		cs.Velocities,
		cs.Physics,
		cs.Colliders,
		cs.Healths,
		cs.Damages,
		cs.Players,
		cs.Asteroids,
		cs.Bosses,
		cs.PowerUps,
		cs.Weapons,
		cs.Scores,
		cs.Lifetimes,
		cs.Sprites,
	}

	return cs, all
}
