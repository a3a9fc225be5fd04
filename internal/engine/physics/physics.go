// Package physics implements a minimal 2D kinematic integrator.
//
// The model is constant-velocity-with-acceleration only: no gravity,
// friction, or rotation. Entities embed Component so their position and
// velocity stay addressable fields while integration is shared.
package physics

import "github.com/smolin/blockade/internal/core"

// ReferenceTickMS is the 60 Hz reference tick every delta is normalized
// against, so entity speeds are expressed in units per reference tick.
const ReferenceTickMS = 1000.0 / 60.0

// Component holds the kinematic state of a single entity.
// It is exclusively owned by the entity that embeds it and never shared.
type Component struct {
	Pos  core.Vec
	Vel  core.Vec
	Acc  core.Vec
	Mass float64
}

// NewComponent creates a component at the given position with unit mass.
func NewComponent(pos core.Vec) Component {
	return Component{Pos: pos, Mass: 1}
}

// Update applies one semi-implicit Euler step. The delta is normalized
// against the 60 Hz reference tick: position advances by the pre-update
// velocity, then velocity advances by acceleration, both scaled by the
// normalized delta.
func (c *Component) Update(dtMS float64) {
	n := dtMS / ReferenceTickMS
	c.Pos = c.Pos.Add(c.Vel.Scale(n))
	c.Vel = c.Vel.Add(c.Acc.Scale(n))
}

// ApplyForce divides the force by mass and accumulates it into the
// acceleration. Forces are cumulative until consumed by Update; there is no
// automatic reset, matching a constant-thrust model.
func (c *Component) ApplyForce(f core.Vec) {
	m := c.Mass
	if m == 0 {
		m = 1
	}
	c.Acc = c.Acc.Add(f.Scale(1 / m))
}

// Speed returns the current velocity magnitude.
func (c *Component) Speed() float64 {
	return c.Vel.Len()
}

// SetVelocity replaces the velocity without touching acceleration.
func (c *Component) SetVelocity(v core.Vec) {
	c.Vel = v
}
