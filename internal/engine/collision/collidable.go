// Package collision provides the Collidable contract and a generic pairwise
// collision detector with a handler registry keyed by type pair.
package collision

import "github.com/smolin/blockade/internal/core"

// Type tags every participant in collision detection. The set is closed;
// dispatching on an unknown tag is a programming error.
type Type int

const (
	TypeBall Type = iota
	TypeBullet
	TypeBlock
	TypePaddle
	TypeWall
)

// String returns the name of the collision type.
func (t Type) String() string {
	switch t {
	case TypeBall:
		return "Ball"
	case TypeBullet:
		return "Bullet"
	case TypeBlock:
		return "Block"
	case TypePaddle:
		return "Paddle"
	case TypeWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Collidable is the contract every participant in collision detection must
// satisfy. Bounds must always reflect the entity's latest position before
// CollidesWith is evaluated in the same frame.
type Collidable interface {
	// Bounds returns the entity's current axis-aligned bounding rectangle.
	Bounds() core.Rect

	// CollisionType returns the entity's type tag.
	CollisionType() Type

	// CollidesWith reports whether this entity overlaps the other.
	CollidesWith(other Collidable) bool

	// OnCollision is a per-entity hook invoked when a collision is detected.
	// Most entities leave it a no-op; actual effects happen in the
	// registered handlers to keep resolution centralized.
	OnCollision(other Collidable)
}
