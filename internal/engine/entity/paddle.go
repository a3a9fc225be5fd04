// Package entity implements the moving entities of the game: the paddle,
// balls, and bullets. Balls and bullets embed the physics component; the
// paddle is driven directly by player input.
package entity

import (
	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/collision"
)

// Paddle is the player-controlled deflector at the bottom of the field.
// Its width is owned by the power-up layer; the paddle itself only knows
// geometry and movement.
type Paddle struct {
	X      float64 // Center X
	Y      float64 // Top edge Y
	Width  float64
	Height float64
	Speed  float64 // Horizontal units per reference tick
}

// NewPaddle creates a paddle centered at x with its top edge at y.
func NewPaddle(x, y, width, height, speed float64) *Paddle {
	return &Paddle{X: x, Y: y, Width: width, Height: height, Speed: speed}
}

// Bounds returns the paddle's bounding rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X-p.Width/2, p.Y, p.Width, p.Height)
}

// CollisionType tags the paddle for collision dispatch.
func (p *Paddle) CollisionType() collision.Type {
	return collision.TypePaddle
}

// CollidesWith reports AABB overlap with another collidable.
func (p *Paddle) CollidesWith(other collision.Collidable) bool {
	return p.Bounds().Intersects(other.Bounds())
}

// OnCollision is a no-op; paddle effects are resolved by the handlers.
func (p *Paddle) OnCollision(collision.Collidable) {}

// Move shifts the paddle horizontally by dir (-1 left, +1 right) scaled by
// its speed, clamped so the paddle stays inside the field.
func (p *Paddle) Move(dir float64, field core.Rect) {
	p.X += dir * p.Speed
	p.ClampTo(field)
}

// ClampTo keeps the paddle fully inside the field.
func (p *Paddle) ClampTo(field core.Rect) {
	half := p.Width / 2
	p.X = core.ClampF(p.X, field.X+half, field.Right()-half)
}

// SetWidth changes the paddle width, keeping its center fixed.
func (p *Paddle) SetWidth(w float64) {
	p.Width = w
}
