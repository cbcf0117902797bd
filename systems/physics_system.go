package systems

import (
	"time"

	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/physics"
)

// PhysicsSystem integrates every entity with Transform+Velocity+Physics:
// Euler position/rotation update, exponential damping, independent speed
// caps, toroidal wrap. Registered before the collision system so colliders
// are tested at their post-move positions
type PhysicsSystem struct {
	halfWidth  float64
	halfHeight float64
	halfDepth  float64
}

// NewPhysicsSystem creates the integrator for the given world half-extents
func NewPhysicsSystem(halfWidth, halfHeight, halfDepth float64) *PhysicsSystem {
	return &PhysicsSystem{
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		halfDepth:  halfDepth,
	}
}

// Update advances one tick of motion
func (s *PhysicsSystem) Update(w *engine.World, dt time.Duration) {
	dtSec := dt.Seconds()
	if dtSec <= 0 {
		// Zero or negative elapsed time produces unstable math; skip the tick
		return
	}

	c := w.Components
	entities := w.Query().
		With(c.Transforms).
		With(c.Velocities).
		With(c.Physics).
		Execute()

	for _, e := range entities {
		transform, _ := c.Transforms.Get(e)
		velocity, _ := c.Velocities.Get(e)
		phys, _ := c.Physics.Get(e)

		physics.Integrate(&transform, velocity, dtSec)
		physics.Damp(&velocity, phys.LinearDamping, phys.AngularDamping, dtSec)
		physics.CapSpeed(&velocity, phys.MaxSpeed)

		if phys.WrapScreen {
			transform.Position = physics.Wrap(transform.Position, s.halfWidth, s.halfHeight, s.halfDepth)
		}

		c.Transforms.Add(e, transform)
		c.Velocities.Add(e, velocity)
	}
}
