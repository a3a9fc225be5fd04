package physics

import (
	"math"
	"testing"

	"github.com/smolin/blockade/internal/core"
)

func TestUpdateSemiImplicitEuler(t *testing.T) {
	c := NewComponent(core.Vec{X: 10, Y: 20})
	c.Vel = core.Vec{X: 2, Y: -1}
	c.Acc = core.Vec{X: 0, Y: 0.5}

	// One reference tick: position moves by the pre-update velocity,
	// then velocity picks up the acceleration.
	c.Update(ReferenceTickMS)

	if c.Pos.X != 12 || c.Pos.Y != 19 {
		t.Errorf("Pos = %v, expected (12, 19)", c.Pos)
	}
	if c.Vel.X != 2 || c.Vel.Y != -0.5 {
		t.Errorf("Vel = %v, expected (2, -0.5)", c.Vel)
	}
}

func TestUpdateNormalizesDelta(t *testing.T) {
	// Half a reference tick advances half as far.
	c := NewComponent(core.Vec{})
	c.Vel = core.Vec{X: 4, Y: 0}
	c.Update(ReferenceTickMS / 2)

	if math.Abs(c.Pos.X-2) > 1e-9 {
		t.Errorf("Pos.X = %v, expected 2", c.Pos.X)
	}
}

func TestUpdatePositionUsesPreUpdateVelocity(t *testing.T) {
	c := NewComponent(core.Vec{})
	c.Vel = core.Vec{X: 0, Y: 0}
	c.Acc = core.Vec{X: 1, Y: 0}

	c.Update(ReferenceTickMS)

	// Velocity gained acceleration but position must not have moved yet.
	if c.Pos.X != 0 {
		t.Errorf("Pos.X = %v, expected 0 on first tick", c.Pos.X)
	}
	if c.Vel.X != 1 {
		t.Errorf("Vel.X = %v, expected 1", c.Vel.X)
	}

	c.Update(ReferenceTickMS)
	if c.Pos.X != 1 {
		t.Errorf("Pos.X = %v, expected 1 on second tick", c.Pos.X)
	}
}

func TestApplyForce(t *testing.T) {
	c := NewComponent(core.Vec{})
	c.Mass = 2

	c.ApplyForce(core.Vec{X: 4, Y: -2})
	if c.Acc.X != 2 || c.Acc.Y != -1 {
		t.Errorf("Acc = %v, expected (2, -1)", c.Acc)
	}

	// Forces accumulate; nothing resets acceleration.
	c.ApplyForce(core.Vec{X: 4, Y: 0})
	if c.Acc.X != 4 || c.Acc.Y != -1 {
		t.Errorf("Acc = %v after second force, expected (4, -1)", c.Acc)
	}

	c.Update(ReferenceTickMS)
	if c.Acc.X != 4 || c.Acc.Y != -1 {
		t.Errorf("Update must not reset acceleration, got %v", c.Acc)
	}
}

func TestApplyForceZeroMassFallsBackToUnit(t *testing.T) {
	var c Component
	c.ApplyForce(core.Vec{X: 3, Y: 0})
	if c.Acc.X != 3 {
		t.Errorf("Acc.X = %v, expected 3 with implicit unit mass", c.Acc.X)
	}
}

func TestSetVelocityKeepsAcceleration(t *testing.T) {
	c := NewComponent(core.Vec{})
	c.Acc = core.Vec{X: 0, Y: 1}
	c.SetVelocity(core.Vec{X: 5, Y: 5})

	if c.Acc.Y != 1 {
		t.Error("SetVelocity must not reset acceleration")
	}
	if c.Speed() != math.Hypot(5, 5) {
		t.Errorf("Speed() = %v", c.Speed())
	}
}
