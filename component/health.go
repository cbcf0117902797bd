package component

import "time"

// HealthComponent is a small state machine:
// alive (Current > 0), invulnerable (blocks instant-kill contact),
// dead (Current <= 0). Reaching zero does not destroy the entity;
// the death system reacts to the value
type HealthComponent struct {
	Current float64
	Max     float64

	// Invulnerable blocks hazard contact resolution while set
	Invulnerable bool

	// InvulnerableFor counts down every tick; the flag clears when it expires
	InvulnerableFor time.Duration
}
