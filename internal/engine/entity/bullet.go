package entity

import (
	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/collision"
	"github.com/smolin/blockade/internal/engine/physics"
)

// Default bullet tuning, in virtual pixels.
const (
	DefaultBulletRadius = 3.0
	DefaultBulletSpeed  = 8.0
)

// Bullet is a fired projectile with constant upward velocity. It has no
// bounce behavior; block and ball impacts are resolved externally by the
// block manager and the collision handlers.
type Bullet struct {
	physics.Component

	Radius float64
	Active bool
}

// NewBullet creates an active bullet at pos moving straight up at the given
// speed.
func NewBullet(pos core.Vec, radius, speed float64) *Bullet {
	b := &Bullet{
		Component: physics.NewComponent(pos),
		Radius:    radius,
		Active:    true,
	}
	b.Vel = core.Vec{X: 0, Y: -speed}
	return b
}

// Bounds returns the bullet's bounding rectangle.
func (b *Bullet) Bounds() core.Rect {
	return core.NewRect(b.Pos.X-b.Radius, b.Pos.Y-b.Radius, b.Radius*2, b.Radius*2)
}

// CollisionType tags the bullet for collision dispatch.
func (b *Bullet) CollisionType() collision.Type {
	return collision.TypeBullet
}

// CollidesWith reports AABB overlap with another collidable.
func (b *Bullet) CollidesWith(other collision.Collidable) bool {
	return b.Bounds().Intersects(other.Bounds())
}

// OnCollision is a no-op; effects are resolved by the registered handlers.
func (b *Bullet) OnCollision(collision.Collidable) {}

// Update integrates straight-line motion and deactivates the bullet once it
// leaves the top of the play field.
func (b *Bullet) Update(dtMS float64, field core.Rect) {
	if !b.Active {
		return
	}

	b.Component.Update(dtMS)

	if b.Pos.Y+b.Radius < field.Y {
		b.Active = false
	}
}
