package component

import "time"

// LifetimeComponent tracks time until the entity is culled
type LifetimeComponent struct {
	Remaining time.Duration
}
