package component

// DamageComponent is carried by projectiles; Amount is subtracted from the
// target's health on impact. Projectiles are single-use
type DamageComponent struct {
	Amount float64
}
