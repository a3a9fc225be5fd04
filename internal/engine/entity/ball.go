package entity

import (
	"math"

	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/collision"
	"github.com/smolin/blockade/internal/engine/physics"
)

// Rand supplies the random stream used for bounce jitter. The engine never
// reaches for a process-global generator; tests inject a fixed source.
type Rand interface {
	// Unit returns a value in [-1, 1).
	Unit() float64
}

// Ball tuning constants, in virtual pixels per reference tick.
const (
	DefaultBallSpeed = 5.0
	MinBallSpeed     = 3.0

	// Post-bounce jitter bounds: ±5 degrees, ±5% speed.
	bounceAngleJitter = 5.0 * math.Pi / 180.0
	bounceSpeedJitter = 0.05

	// Paddle bounce cone: 60 degrees wide, centered on straight up.
	paddleConeHalf = 30.0 * math.Pi / 180.0

	// Guide ping-pong advances every guideTickPeriod update ticks.
	guideTickPeriod = 6

	// Sprite animation: frame counts carried as engine state so a run is
	// fully reproducible; the platform picks glyphs off these counters.
	idleFrameCount  = 4
	birthFrameCount = 6
	frameTickPeriod = 8
)

// GuideSteps is the number of discrete launch-direction slots.
const GuideSteps = 11

// launchDirections is the 11-entry table of launch unit vectors. Index 5 is
// straight up; indexes 0 and 10 are the ±45 degree extremes.
var launchDirections = func() [GuideSteps]core.Vec {
	var dirs [GuideSteps]core.Vec
	for i := range dirs {
		angle := float64(i-GuideSteps/2) / float64(GuideSteps/2) * (45.0 * math.Pi / 180.0)
		sin, cos := math.Sincos(angle)
		dirs[i] = core.Vec{X: sin, Y: -cos}
	}
	return dirs
}()

// Ball is the bouncing projectile. State machine: stuck to the paddle,
// free, or lost (inactive, awaiting removal by the owning session).
type Ball struct {
	physics.Component

	Radius float64
	Active bool

	// TargetSpeed is the speed reflections and launches renormalize to.
	// The difficulty layer raises it as play progresses.
	TargetSpeed float64

	// Stuck-to-paddle state
	Stuck        bool
	PaddleOffset float64 // Horizontal distance from paddle center while stuck
	GuidePos     int     // Launch-direction slot in [0, GuideSteps)

	// AutoLaunchTicks releases a stuck ball after this many ticks.
	// Zero disables the timer.
	AutoLaunchTicks int

	// Animation counters (rendering state, carried for reproducibility)
	IdleFrame  int
	BirthFrame int

	guideDir   int // +1 or -1, ping-pong direction
	guideTick  int
	stuckTicks int
	frameTick  int
	lastSpeed  float64

	rand Rand
}

// NewBall creates an active ball stuck to the paddle at the given position.
func NewBall(pos core.Vec, radius float64, rand Rand) *Ball {
	return &Ball{
		Component:   physics.NewComponent(pos),
		Radius:      radius,
		Active:      true,
		TargetSpeed: DefaultBallSpeed,
		Stuck:       true,
		GuidePos:    GuideSteps / 2,
		guideDir:    1,
		rand:        rand,
	}
}

// NewFreeBall creates an active ball already in flight.
func NewFreeBall(pos core.Vec, vel core.Vec, radius float64, rand Rand) *Ball {
	b := NewBall(pos, radius, rand)
	b.Stuck = false
	b.Vel = vel
	b.lastSpeed = vel.Len()
	return b
}

// Bounds returns the ball's bounding rectangle, derived from its center and
// radius.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.Pos.X-b.Radius, b.Pos.Y-b.Radius, b.Radius*2, b.Radius*2)
}

// CollisionType tags the ball for collision dispatch.
func (b *Ball) CollisionType() collision.Type {
	return collision.TypeBall
}

// CollidesWith reports AABB overlap with another collidable.
func (b *Ball) CollidesWith(other collision.Collidable) bool {
	return b.Bounds().Intersects(other.Bounds())
}

// OnCollision is a no-op; effects are resolved by the registered handlers.
func (b *Ball) OnCollision(collision.Collidable) {}

// StickTo pins the ball to the paddle with its current horizontal offset.
func (b *Ball) StickTo(paddle *Paddle) {
	b.Stuck = true
	b.PaddleOffset = b.Pos.X - paddle.X
	b.Vel = core.Vec{}
	b.Acc = core.Vec{}
	b.stuckTicks = 0
}

// Release converts the current guide slot into a launch velocity and frees
// the ball. The speed is the last non-trivial recorded speed, or the default
// if none was recorded yet.
func (b *Ball) Release() {
	speed := b.lastSpeed
	if speed < MinBallSpeed {
		speed = b.targetSpeed()
	}
	b.Vel = launchDirections[b.GuidePos].Scale(speed)
	b.lastSpeed = speed
	b.Stuck = false
	b.stuckTicks = 0
}

// Update advances the ball by one tick. While stuck it is pinned to the
// paddle and animates its guide; while free it integrates physics and
// resolves the field boundaries. Paddle and block contacts are resolved
// afterwards in the collision pass. Returns true when the ball crossed the
// bottom boundary and was lost this tick.
func (b *Ball) Update(dtMS float64, field core.Rect, paddle *Paddle) (lost bool) {
	if !b.Active {
		return false
	}

	b.advanceFrames()

	if b.Stuck {
		b.updateStuck(paddle)
		return false
	}

	b.Component.Update(dtMS)

	if b.Speed() > 0.1 {
		b.lastSpeed = b.Speed()
	}

	if b.bounceWalls(field) {
		b.applyJitter()
	}

	if b.Pos.Y-b.Radius > field.Bottom() {
		b.Active = false
		return true
	}

	return false
}

// updateStuck pins the position to the paddle and ping-pongs the guide slot.
func (b *Ball) updateStuck(paddle *Paddle) {
	b.Pos = core.Vec{
		X: paddle.X + b.PaddleOffset,
		Y: paddle.Y - b.Radius,
	}

	b.guideTick++
	if b.guideTick >= guideTickPeriod {
		b.guideTick = 0
		b.GuidePos += b.guideDir
		if b.GuidePos >= GuideSteps-1 {
			b.GuidePos = GuideSteps - 1
			b.guideDir = -1
		} else if b.GuidePos <= 0 {
			b.GuidePos = 0
			b.guideDir = 1
		}
	}

	if b.AutoLaunchTicks > 0 {
		b.stuckTicks++
		if b.stuckTicks >= b.AutoLaunchTicks {
			b.Release()
		}
	}
}

// bounceWalls reflects the ball off the left, right, and top boundaries,
// clamping the position back inside. Returns true if any bounce happened.
func (b *Ball) bounceWalls(field core.Rect) bool {
	bounced := false

	if b.Pos.X-b.Radius < field.X {
		b.Pos.X = field.X + b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
		bounced = true
	}
	if b.Pos.X+b.Radius > field.Right() {
		b.Pos.X = field.Right() - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
		bounced = true
	}
	if b.Pos.Y-b.Radius < field.Y {
		b.Pos.Y = field.Y + b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
		bounced = true
	}

	return bounced
}

// BouncePaddle reflects the ball off the paddle, called from the collision
// pass once the pair registers. Only considered when the ball is not moving
// upward, which suppresses double-bounces within a single frame. The bounce
// angle comes from the normalized horizontal offset of the hit point from
// the paddle center, mapped into a 60 degree cone centered on straight up,
// preserving total speed.
func (b *Ball) BouncePaddle(paddle *Paddle) bool {
	if b.Vel.Y < 0 {
		return false
	}
	if !b.Bounds().Intersects(paddle.Bounds()) {
		return false
	}

	half := paddle.Width / 2
	offset := 0.0
	if half > 0 {
		offset = core.ClampF((b.Pos.X-paddle.X)/half, -1, 1)
	}

	speed := b.Speed()
	if speed < MinBallSpeed {
		speed = b.targetSpeed()
	}

	angle := offset * paddleConeHalf
	sin, cos := math.Sincos(angle)
	b.Vel = core.Vec{X: sin, Y: -cos}.Scale(speed)
	b.Pos.Y = paddle.Y - b.Radius
	b.lastSpeed = speed
	b.applyJitter()

	return true
}

// applyJitter perturbs the velocity angle by up to ±5 degrees and the speed
// by up to ±5% to avoid perfectly repeating trajectories.
func (b *Ball) applyJitter() {
	if b.rand == nil {
		return
	}
	angle := b.rand.Unit() * bounceAngleJitter
	scale := 1 + b.rand.Unit()*bounceSpeedJitter
	b.Vel = b.Vel.Rotated(angle).Scale(scale)
}

// advanceFrames ticks the idle/birth sprite counters.
func (b *Ball) advanceFrames() {
	b.frameTick++
	if b.frameTick < frameTickPeriod {
		return
	}
	b.frameTick = 0
	b.IdleFrame = (b.IdleFrame + 1) % idleFrameCount
	if b.BirthFrame < birthFrameCount {
		b.BirthFrame++
	}
}

// targetSpeed returns TargetSpeed with the stock default for zero-value
// balls constructed outside the constructors.
func (b *Ball) targetSpeed() float64 {
	if b.TargetSpeed <= 0 {
		return DefaultBallSpeed
	}
	return b.TargetSpeed
}

// LaunchDirection returns the unit vector for a guide slot. Out-of-range
// slots are clamped.
func LaunchDirection(slot int) core.Vec {
	return launchDirections[core.Clamp(slot, 0, GuideSteps-1)]
}
