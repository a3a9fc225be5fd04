package engine

import (
	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/block"
	"github.com/smolin/blockade/internal/engine/collision"
	"github.com/smolin/blockade/internal/engine/entity"
	"github.com/smolin/blockade/internal/engine/event"
)

// registerHandlers installs the per-pair dispatch table. The type assertions
// inside the handlers are deliberate hard failures: an unexpected participant
// type means a missing integration, not a recoverable runtime condition.
func (s *Session) registerHandlers() {
	s.colliders.Register(collision.TypeBall, collision.TypeBlock, s.handleBallBlock)
	s.colliders.Register(collision.TypeBall, collision.TypePaddle, s.handleBallPaddle)
	s.colliders.Register(collision.TypeBullet, collision.TypeBlock, s.handleBulletBlock)
	s.colliders.Register(collision.TypeBullet, collision.TypeBall, s.handleBulletBall)
}

// handleBallBlock delegates reflection and the hit to the block manager. A
// ball overlapping several blocks produces one pair per block; the first
// invocation resolves against the closest block and the resolvedBalls guard
// makes the rest of this tick's pairs no-ops.
func (s *Session) handleBallBlock(a, b collision.Collidable) {
	ball := a.(*entity.Ball)
	blk := b.(block.Breakable)

	if !ball.Active || ball.Stuck || s.resolvedBalls[ball] {
		return
	}
	if blk.Phase() != block.StateNormal || blk.HitThisFrame() {
		return
	}

	res, hitBlk, hit := s.blocks.ResolveBallCollision(ball)
	if !hit {
		return
	}
	s.resolvedBalls[ball] = true
	s.applyHit(res, hitBlk.Bounds().Center())
}

// handleBallPaddle resolves the paddle contact. A descending ball is
// captured when sticky is active, keeping its horizontal offset from the
// paddle center; otherwise it bounces off the paddle cone.
func (s *Session) handleBallPaddle(a, b collision.Collidable) {
	ball := a.(*entity.Ball)
	paddle := b.(*entity.Paddle)

	if !ball.Active || ball.Stuck {
		return
	}

	if s.powerups.Sticky() && ball.Vel.Y >= 0 {
		ball.StickTo(paddle)
		s.emit(event.PaddleHit{})
		return
	}
	if ball.BouncePaddle(paddle) {
		s.emit(event.PaddleHit{})
	}
}

// handleBulletBlock delegates to the block manager's bullet path. Consumed
// bullets are pruned in the post-pass.
func (s *Session) handleBulletBlock(a, b collision.Collidable) {
	bullet := a.(*entity.Bullet)
	blk := b.(block.Breakable)

	if !bullet.Active || blk.Phase() != block.StateNormal || blk.HitThisFrame() {
		return
	}

	res, hitBlk, hit := s.blocks.ResolveBulletCollision(bullet)
	if !hit {
		return
	}
	s.applyHit(res, hitBlk.Bounds().Center())
}

// handleBulletBall is friendly fire: a bullet destroys a ball it strikes.
// A stuck ball sits behind the muzzle and is exempt.
func (s *Session) handleBulletBall(a, b collision.Collidable) {
	bullet := a.(*entity.Bullet)
	ball := b.(*entity.Ball)

	if !bullet.Active || !ball.Active || ball.Stuck {
		return
	}

	bullet.Active = false
	ball.Active = false
	s.ballLost = true
	s.emit(event.BallLost{})
}

// applyHit turns a hit result into score and effect events. Breaks without
// an effect tag emit the generic destruction event.
func (s *Session) applyHit(res block.HitResult, at core.Vec) {
	if res.Points > 0 {
		s.emit(s.ledger.AddScore(res.Points)...)
	}
	if !res.Broke {
		return
	}

	if res.HasEffect {
		s.emit(s.powerups.HandleEffect(res.Effect, at)...)
		return
	}
	s.emit(event.BlockDestroyed{Points: res.Points})
}
