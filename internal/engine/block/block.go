// Package block implements the destructible field blocks: the hit/break
// state machine, the multi-hit counter variant, and the manager that owns
// the collection and the ball/bullet reflection math.
package block

import (
	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/collision"
)

// Kind is the closed set of block types.
type Kind int

const (
	KindBlue Kind = iota
	KindGreen
	KindOrange
	KindPurple
	KindRed
	KindUnbreakable
	KindBomb
	KindExpand
	KindShrink
	KindSticky
	KindReverse
	KindAmmo
	KindMultiball
	KindRoamer
	KindCounter
)

// String returns the name of the block kind.
func (k Kind) String() string {
	switch k {
	case KindBlue:
		return "blue"
	case KindGreen:
		return "green"
	case KindOrange:
		return "orange"
	case KindPurple:
		return "purple"
	case KindRed:
		return "red"
	case KindUnbreakable:
		return "unbreakable"
	case KindBomb:
		return "bomb"
	case KindExpand:
		return "expand"
	case KindShrink:
		return "shrink"
	case KindSticky:
		return "sticky"
	case KindReverse:
		return "reverse"
	case KindAmmo:
		return "ammo"
	case KindMultiball:
		return "multiball"
	case KindRoamer:
		return "roamer"
	case KindCounter:
		return "counter"
	default:
		return "unknown"
	}
}

// IsPowerUp reports whether breaking a block of this kind surfaces an
// effect tag for the power-up layer.
func (k Kind) IsPowerUp() bool {
	switch k {
	case KindBomb, KindExpand, KindShrink, KindSticky, KindReverse, KindAmmo, KindMultiball:
		return true
	default:
		return false
	}
}

// IsBreakable reports whether a block of this kind counts toward level
// completion.
func (k Kind) IsBreakable() bool {
	return k != KindUnbreakable
}

// Points returns the score awarded when a block of this kind breaks.
func (k Kind) Points() int {
	switch k {
	case KindBlue:
		return 10
	case KindGreen:
		return 20
	case KindOrange:
		return 30
	case KindPurple:
		return 40
	case KindRed:
		return 50
	case KindBomb:
		return 50
	case KindExpand, KindShrink, KindSticky, KindReverse, KindAmmo, KindMultiball:
		return 25
	case KindRoamer:
		return 100
	case KindCounter:
		return 10
	default:
		return 0
	}
}

// State is the block lifecycle phase.
type State int

const (
	StateNormal State = iota
	StateBreaking
	StateDestroyed
)

// Explosion animation defaults.
const (
	DefaultExplosionFrames = 5
	ExplosionFrameMS       = 50.0
)

// HitResult reports the outcome of a Hit call.
type HitResult struct {
	Broke  bool
	Points int
	Effect Kind // Valid only when HasEffect is true
	// HasEffect is true when the block broke and its kind is a
	// power-up-class type.
	HasEffect bool
}

// Breakable is the interface the manager operates on. Block satisfies it;
// CounterBlock overrides Hit.
type Breakable interface {
	collision.Collidable

	// Hit resolves one hit attempt. Guarded against non-normal state,
	// unbreakable kinds, and double resolution within one update tick.
	Hit() HitResult

	// Step advances the breaking animation.
	Step(dtMS float64)

	Phase() State
	Kind() Kind
	HitThisFrame() bool
	clearHitFlag()
}

// Block is a stationary destructible block.
type Block struct {
	rect   core.Rect
	kind   Kind
	health int
	state  State

	hitThisFrame bool

	explosionFrames int
	explosionFrame  int
	frameTimer      float64
}

// New creates a block of the given kind covering rect, with single-hit
// health and the kind's default point value.
func New(kind Kind, rect core.Rect) *Block {
	return &Block{
		rect:            rect,
		kind:            kind,
		health:          1,
		state:           StateNormal,
		explosionFrames: DefaultExplosionFrames,
	}
}

// Bounds returns the block's rectangle.
func (b *Block) Bounds() core.Rect {
	return b.rect
}

// CollisionType tags the block for collision dispatch.
func (b *Block) CollisionType() collision.Type {
	return collision.TypeBlock
}

// CollidesWith reports overlap with another collidable. Blocks in breaking
// or destroyed state never register as colliding.
func (b *Block) CollidesWith(other collision.Collidable) bool {
	if b.state != StateNormal {
		return false
	}
	return b.rect.Intersects(other.Bounds())
}

// OnCollision is a no-op; block effects are resolved by the handlers.
func (b *Block) OnCollision(collision.Collidable) {}

// Phase returns the block's lifecycle state.
func (b *Block) Phase() State {
	return b.state
}

// Kind returns the block's type tag.
func (b *Block) Kind() Kind {
	return b.kind
}

// Health returns the remaining hits-to-break.
func (b *Block) Health() int {
	return b.health
}

// SetHealth overrides the hits-to-break for multi-hit variants.
func (b *Block) SetHealth(h int) {
	b.health = h
}

// SetExplosionFrames overrides the breaking animation length. Zero frames
// makes the block destroy on the next Step after breaking.
func (b *Block) SetExplosionFrames(n int) {
	b.explosionFrames = n
}

// ExplosionFrame returns the current breaking animation frame index.
func (b *Block) ExplosionFrame() int {
	return b.explosionFrame
}

// HitThisFrame reports whether the block was already resolved this tick.
func (b *Block) HitThisFrame() bool {
	return b.hitThisFrame
}

func (b *Block) clearHitFlag() {
	b.hitThisFrame = false
}

// Hit resolves one hit attempt. A block not in normal state, an unbreakable
// block, or a block already resolved this tick returns a zero result and
// changes no state.
func (b *Block) Hit() HitResult {
	if !b.beginHit() {
		return HitResult{}
	}

	b.health--
	if b.health > 0 {
		return HitResult{}
	}

	return b.breakNow()
}

// beginHit applies the shared hit guards and marks the block resolved for
// this tick. Returns false when the hit must have no effect.
func (b *Block) beginHit() bool {
	if b.state != StateNormal || b.hitThisFrame {
		return false
	}
	if b.kind == KindUnbreakable {
		return false
	}
	b.hitThisFrame = true
	return true
}

// breakNow transitions the block to breaking and builds the hit result.
func (b *Block) breakNow() HitResult {
	b.state = StateBreaking
	b.explosionFrame = 0
	b.frameTimer = 0

	res := HitResult{
		Broke:  true,
		Points: b.kind.Points(),
	}
	if b.kind.IsPowerUp() {
		res.Effect = b.kind
		res.HasEffect = true
	}
	return res
}

// Step advances the explosion animation while breaking. A block whose
// frames are exhausted, or that has no explosion frames at all, transitions
// to destroyed.
func (b *Block) Step(dtMS float64) {
	if b.state != StateBreaking {
		return
	}

	if b.explosionFrames == 0 {
		b.state = StateDestroyed
		return
	}

	b.frameTimer += dtMS
	for b.frameTimer >= ExplosionFrameMS {
		b.frameTimer -= ExplosionFrameMS
		b.explosionFrame++
		if b.explosionFrame >= b.explosionFrames {
			b.state = StateDestroyed
			return
		}
	}
}
