package component

// PhysicsComponent tunes how the integrator advances an entity
type PhysicsComponent struct {
	// Mass in arbitrary units (>0); reserved for impulse resolution
	Mass float64

	// LinearDamping is the per-second velocity retention factor.
	// Applied as velocity *= damping^dt, so 1.0 means no decay
	LinearDamping float64

	// AngularDamping is the per-second angular velocity retention factor
	AngularDamping float64

	// MaxSpeed caps linear and angular magnitude independently; 0 disables the cap
	MaxSpeed float64

	// WrapScreen teleports the entity to the opposite edge when it
	// crosses a world half-extent
	WrapScreen bool
}
