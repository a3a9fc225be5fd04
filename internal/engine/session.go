// Package engine ties the physics, collision, block, power-up, and state
// managers into one frame-stepped simulation session. Everything here runs
// single-threaded: the owning loop calls Step once per frame, entity updates
// complete before the collision pass, and destroyed entities are pruned in a
// dedicated post-pass rather than mid-iteration.
package engine

import (
	"math"

	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/block"
	"github.com/smolin/blockade/internal/engine/collision"
	"github.com/smolin/blockade/internal/engine/entity"
	"github.com/smolin/blockade/internal/engine/event"
	"github.com/smolin/blockade/internal/engine/powerup"
	"github.com/smolin/blockade/internal/engine/state"
	"github.com/smolin/blockade/internal/level"
)

// BonusPointsPerSecond converts remaining bonus time to score at level
// completion.
const BonusPointsPerSecond = 10

// multiballSpread is the angle between cloned ball trajectories.
const multiballSpread = 20.0 * math.Pi / 180.0

// Ledger is the external score/ammo store. Mutations return the events they
// produced so the caller can forward them to the presentation layer.
type Ledger interface {
	AddScore(points int) []event.Event
	AddAmmo(n int) []event.Event
	// FireAmmo spends one round; ok is false when the magazine is empty.
	FireAmmo() (ok bool, events []event.Event)
}

// FieldFunc supplies the current play-field rectangle. It is re-read every
// frame so resizes are picked up automatically.
type FieldFunc func() core.Rect

// Config carries session tuning. Zero values fall back to the stock tuning
// via Defaults.
type Config struct {
	BallRadius   float64
	BallSpeed    float64 // launch/reflection target speed
	BulletRadius float64
	BulletSpeed  float64

	PaddleWidths powerup.Widths
	PaddleHeight float64
	PaddleSpeed  float64

	Lives           int
	AutoLaunchTicks int // 0 disables auto-launch
	StartLevel      int
}

// Defaults returns the stock session tuning.
func Defaults() Config {
	return Config{
		BallRadius:      4,
		BallSpeed:       entity.DefaultBallSpeed,
		BulletRadius:    entity.DefaultBulletRadius,
		BulletSpeed:     entity.DefaultBulletSpeed,
		PaddleWidths:    powerup.DefaultWidths,
		PaddleHeight:    8,
		PaddleSpeed:     6,
		Lives:           state.DefaultLives,
		AutoLaunchTicks: 300,
	}
}

// Session owns the live entities of one game run and drives the per-frame
// update/collide/prune cycle.
type Session struct {
	cfg    Config
	field  FieldFunc
	ledger Ledger
	rng    entity.Rand

	paddle  *entity.Paddle
	balls   []*entity.Ball
	bullets []*entity.Bullet

	blocks   *block.Manager
	powerups *powerup.Manager
	state    *state.Manager

	colliders *collision.System

	levelIndex int
	lvl        *level.Level

	// frame scratch
	events        []event.Event
	ballLost      bool
	resolvedBalls map[*entity.Ball]bool // balls that already took a block reflection this tick
}

// NewSession assembles a session over the given field, ledger, and random
// source and loads the starting level.
func NewSession(cfg Config, field FieldFunc, ledger Ledger, rng entity.Rand) *Session {
	f := field()
	s := &Session{
		cfg:           cfg,
		field:         field,
		ledger:        ledger,
		rng:           rng,
		paddle:        entity.NewPaddle(f.Center().X, f.Bottom()-cfg.PaddleHeight*3, cfg.PaddleWidths.Medium, cfg.PaddleHeight, cfg.PaddleSpeed),
		blocks:        block.NewManager(),
		state:         state.NewManager(cfg.Lives, 0),
		colliders:     collision.NewSystem(),
		resolvedBalls: make(map[*entity.Ball]bool),
	}
	s.powerups = powerup.NewManager(s.paddle, ledgerAmmo{ledger}, cfg.PaddleWidths)
	s.registerHandlers()
	s.loadLevel(cfg.StartLevel)
	return s
}

// ledgerAmmo narrows the full ledger to the slice the power-up manager sees.
type ledgerAmmo struct{ Ledger }

// Paddle returns the player paddle.
func (s *Session) Paddle() *entity.Paddle { return s.paddle }

// Balls returns the live ball set.
func (s *Session) Balls() []*entity.Ball { return s.balls }

// Bullets returns the live bullet set.
func (s *Session) Bullets() []*entity.Bullet { return s.bullets }

// Blocks returns the block manager.
func (s *Session) Blocks() *block.Manager { return s.blocks }

// PowerUps returns the power-up manager.
func (s *Session) PowerUps() *powerup.Manager { return s.powerups }

// State returns the game-state manager.
func (s *Session) State() *state.Manager { return s.state }

// Level returns the current level.
func (s *Session) Level() *level.Level { return s.lvl }

// LevelIndex returns the current catalogue index.
func (s *Session) LevelIndex() int { return s.levelIndex }

// loadLevel decodes the level at index into the block field and respawns a
// stuck ball. The block field occupies the top 40% of the play field, below
// a one-block-height margin.
func (s *Session) loadLevel(index int) {
	s.levelIndex = index
	s.lvl = level.Get(index)

	f := s.field()
	area := core.NewRect(f.X, f.Y+f.H*0.05, f.W, f.H*0.4)
	s.blocks.Load(s.lvl, area)

	s.state.ResetForLevel(s.lvl.TimeBonus)
	s.balls = s.balls[:0]
	s.bullets = s.bullets[:0]
	s.spawnStuckBall()
}

// AdvanceLevel moves to the next level in the catalogue and clears transient
// power-ups. Paddle size is deliberately kept. Any bonus time not yet
// converted to points is awarded here; after a completion detected by Step
// the clock is already consumed and this awards nothing.
func (s *Session) AdvanceLevel() []event.Event {
	var evs []event.Event
	if bonus := s.state.ConsumeBonus(); bonus > 0 {
		evs = append(evs, s.ledger.AddScore(bonus*BonusPointsPerSecond)...)
	}
	s.powerups.Reset()
	s.loadLevel(s.levelIndex + 1)
	return evs
}

// spawnStuckBall places a fresh ball on the paddle.
func (s *Session) spawnStuckBall() {
	b := entity.NewBall(core.Vec{X: s.paddle.X, Y: s.paddle.Y - s.cfg.BallRadius}, s.cfg.BallRadius, s.rng)
	b.AutoLaunchTicks = s.cfg.AutoLaunchTicks
	if s.cfg.BallSpeed > 0 {
		b.TargetSpeed = s.cfg.BallSpeed
	}
	s.balls = append(s.balls, b)
}

// SetBallTargetSpeed retunes every live ball. The difficulty layer calls
// this as play progresses.
func (s *Session) SetBallTargetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	s.cfg.BallSpeed = speed
	for _, b := range s.balls {
		b.TargetSpeed = speed
	}
}

// spawnBullet fires from the paddle center.
func (s *Session) spawnBullet() {
	pos := core.Vec{X: s.paddle.X, Y: s.paddle.Y - s.cfg.BulletRadius}
	s.bullets = append(s.bullets, entity.NewBullet(pos, s.cfg.BulletRadius, s.cfg.BulletSpeed))
}

// Step advances the simulation by one frame and returns the domain events it
// produced, in emission order.
func (s *Session) Step(dtMS float64, input core.InputFrame) []event.Event {
	s.events = s.events[:0]
	s.ballLost = false

	if s.state.GameOver() || s.state.LevelComplete() {
		return nil
	}

	f := s.field()
	s.paddle.ClampTo(f)
	s.handleInput(input, f)

	// Entity updates run to completion before the collision pass.
	for _, b := range s.balls {
		if b.Update(dtMS, f, s.paddle) {
			s.ballLost = true
			s.emit(event.BallLost{})
		}
	}
	for _, bl := range s.bullets {
		bl.Update(dtMS, f)
	}
	s.blocks.Step(dtMS)

	// The collidable set is rebuilt from the authoritative collections
	// every frame rather than mutated incrementally.
	s.rebuildColliders()
	s.colliders.Check()

	// Post-pass: prune only after every handler has run.
	s.pruneBalls()
	s.pruneBullets()
	s.blocks.Prune()
	s.blocks.ClearHitFlags()
	clear(s.resolvedBalls)

	s.resolveSpawns()

	if s.ballLost {
		s.emit(s.state.HandleLifeLoss(s.hasActiveBalls())...)
		if !s.state.GameOver() && !s.hasActiveBalls() {
			s.powerups.Reset()
			s.spawnStuckBall()
		}
	}

	if evs := s.state.CheckLevelComplete(s.blocks.BreakableRemaining()); len(evs) > 0 {
		s.emit(evs...)
		if bonus := s.state.ConsumeBonus(); bonus > 0 {
			s.emit(s.ledger.AddScore(bonus * BonusPointsPerSecond)...)
		}
	}

	s.emit(s.state.UpdateTimer(dtMS, true)...)

	return s.events
}

// handleInput applies paddle movement, launch, and fire for this frame.
func (s *Session) handleInput(input core.InputFrame, f core.Rect) {
	dir := 0.0
	if input.Has(core.ActionLeft) {
		dir--
	}
	if input.Has(core.ActionRight) {
		dir++
	}
	if s.powerups.Reverse() {
		dir = -dir
	}
	if dir != 0 {
		s.paddle.Move(dir, f)
	}

	if input.Has(core.ActionLaunch) {
		for _, b := range s.balls {
			if b.Active && b.Stuck {
				b.Release()
			}
		}
	}

	if input.Has(core.ActionFire) {
		if ok, evs := s.ledger.FireAmmo(); ok {
			s.emit(evs...)
			s.spawnBullet()
		}
	}
}

// rebuildColliders repopulates the collision registry from the live sets.
// Only blocks still in their normal state participate.
func (s *Session) rebuildColliders() {
	s.colliders.Clear()
	s.colliders.Add(s.paddle)
	for _, b := range s.balls {
		if b.Active {
			s.colliders.Add(b)
		}
	}
	for _, bl := range s.bullets {
		if bl.Active {
			s.colliders.Add(bl)
		}
	}
	for _, blk := range s.blocks.Blocks() {
		if blk.Phase() == block.StateNormal {
			s.colliders.Add(blk)
		}
	}
}

// resolveSpawns turns multiball events emitted this frame into cloned balls
// fanned out around an active ball's heading.
func (s *Session) resolveSpawns() {
	for _, ev := range s.events {
		sp, ok := ev.(event.BallSpawned)
		if !ok {
			continue
		}
		src := s.firstFreeBall()
		if src == nil {
			continue
		}
		for i := 1; i <= sp.Count; i++ {
			angle := multiballSpread * float64(i)
			if i%2 == 0 {
				angle = -angle
			}
			vel := src.Vel.Rotated(angle)
			clone := entity.NewFreeBall(src.Pos, vel, src.Radius, s.rng)
			clone.TargetSpeed = src.TargetSpeed
			s.balls = append(s.balls, clone)
		}
	}
}

func (s *Session) firstFreeBall() *entity.Ball {
	for _, b := range s.balls {
		if b.Active && !b.Stuck {
			return b
		}
	}
	return nil
}

func (s *Session) hasActiveBalls() bool {
	for _, b := range s.balls {
		if b.Active {
			return true
		}
	}
	return false
}

func (s *Session) pruneBalls() {
	live := s.balls[:0]
	for _, b := range s.balls {
		if b.Active {
			live = append(live, b)
		}
	}
	s.balls = live
}

func (s *Session) pruneBullets() {
	live := s.bullets[:0]
	for _, b := range s.bullets {
		if b.Active {
			live = append(live, b)
		}
	}
	s.bullets = live
}

func (s *Session) emit(evs ...event.Event) {
	s.events = append(s.events, evs...)
}
