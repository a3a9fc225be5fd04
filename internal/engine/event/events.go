// Package event defines the domain events produced by the engine.
//
// Events are value-type records behind a marker interface. The engine never
// calls into rendering or audio; every user-visible consequence of a state
// mutation is expressed as one of these records, returned to the caller in
// the same operation that performed the mutation.
package event

// Event is the marker interface implemented by all domain events.
type Event interface {
	gameEvent()
}

// ScoreChanged reports a score mutation.
type ScoreChanged struct {
	Score int // New total
	Delta int // Points awarded by this mutation
}

func (ScoreChanged) gameEvent() {}

// LivesChanged reports a change of the remaining-lives counter.
type LivesChanged struct {
	Lives int
}

func (LivesChanged) gameEvent() {}

// GameOver reports that the last life has been lost.
type GameOver struct{}

func (GameOver) gameEvent() {}

// LevelComplete reports that the last breakable block was destroyed.
// Emitted exactly once per level. Bonus carries the seconds left on the
// clock at completion, before they are converted to points.
type LevelComplete struct {
	Bonus int
}

func (LevelComplete) gameEvent() {}

// Applause accompanies LevelComplete for the presentation layer.
type Applause struct{}

func (Applause) gameEvent() {}

// BallLost reports that a ball left play (bottom boundary or shot down).
type BallLost struct{}

func (BallLost) gameEvent() {}

// BallSpawned reports that extra balls entered play (multiball effect).
type BallSpawned struct {
	Count int
}

func (BallSpawned) gameEvent() {}

// PaddleHit reports a ball bouncing off the paddle.
type PaddleHit struct{}

func (PaddleHit) gameEvent() {}

// BlockDestroyed reports a block breaking without a power-up effect.
type BlockDestroyed struct {
	Points int
}

func (BlockDestroyed) gameEvent() {}

// Explosion reports a bomb block detonating at the given position.
type Explosion struct {
	X, Y float64
}

func (Explosion) gameEvent() {}

// AmmoChanged reports an ammunition mutation (collected or fired).
type AmmoChanged struct {
	Ammo int
}

func (AmmoChanged) gameEvent() {}

// PaddleGrown reports a paddle size increase, or an attempt at max size.
type PaddleGrown struct {
	Width   float64 // Paddle width after the transition
	AtLimit bool    // True when already at max size; width unchanged
}

func (PaddleGrown) gameEvent() {}

// PaddleShrunk reports a paddle size decrease, or an attempt at min size.
type PaddleShrunk struct {
	Width   float64
	AtLimit bool // True when already at min size; width unchanged
}

func (PaddleShrunk) gameEvent() {}

// ReverseChanged reports the new state of the reverse-controls flag.
type ReverseChanged struct {
	On bool
}

func (ReverseChanged) gameEvent() {}

// StickyChanged reports the new state of the sticky-paddle flag.
type StickyChanged struct {
	On bool
}

func (StickyChanged) gameEvent() {}

// TimerChanged reports the remaining bonus time in whole seconds.
type TimerChanged struct {
	Remaining int
}

func (TimerChanged) gameEvent() {}
