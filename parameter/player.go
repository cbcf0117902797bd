package parameter

import "time"

// Player ship tuning

const (
	PlayerLives       = 3
	PlayerMaxHealth   = 100.0
	PlayerRadius      = 8.0
	PlayerMass        = 1.0
	// Impulse per keypress: terminals deliver no key-up events, so
	// thrust and turning are applied per press, not per held frame
	PlayerThrustImpulse = 36.0 // velocity units per thrust press
	PlayerTurnStep      = 0.22 // radians per turn press

	PlayerMaxSpeed = 260.0

	// Per-second velocity retention: low values brake hard, 1.0 glides forever
	PlayerLinearDamp  = 0.4
	PlayerAngularDamp = 0.05

	PlayerRespawnDelay = 1500 * time.Millisecond

	// PlayerSpawnInvulnerability is the post-respawn grace window
	PlayerSpawnInvulnerability = 3 * time.Second
)

const (
	WeaponFireInterval    = 220 * time.Millisecond
	WeaponRapidInterval   = 90 * time.Millisecond
	WeaponRapidDuration   = 8 * time.Second
	ProjectileSpeed       = 420.0
	ProjectileDamage      = 10.0
	ProjectileRadius      = 2.0
	ProjectileLifetime    = 1200 * time.Millisecond
	ProjectileSpawnOffset = 12.0
)
