package component

import "time"

// WeaponComponent gates projectile fire on a cooldown
type WeaponComponent struct {
	// FireInterval is the minimum time between shots
	FireInterval time.Duration

	// CooldownRemaining counts down every tick; firing is allowed at zero
	CooldownRemaining time.Duration

	// RapidRemaining is the leftover rapid-fire window from a power-up
	RapidRemaining time.Duration

	ProjectileSpeed  float64
	ProjectileDamage float64
}
