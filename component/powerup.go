package component

// PowerUpKind selects the effect granted on pickup
type PowerUpKind uint8

const (
	PowerUpShield PowerUpKind = iota
	PowerUpRapidFire
)

// PowerUpComponent tags a collectible; contact with it is inert for the
// damage resolver, the pickup system consumes the pair instead
type PowerUpComponent struct {
	Kind PowerUpKind
}
