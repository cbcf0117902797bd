package component

import "time"

// BossComponent tags the boss and times its volleys
type BossComponent struct {
	// FireInterval is the delay between boss projectile volleys
	FireInterval time.Duration

	// FireCooldown counts down every tick; the boss shoots at zero
	FireCooldown time.Duration
}
