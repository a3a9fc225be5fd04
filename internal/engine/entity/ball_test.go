package entity

import (
	"math"
	"testing"

	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/rng"
)

// noJitter yields a centered random stream, so bounce jitter is exactly zero.
var noJitter = rng.Fixed{Value: 0.5}

func testField() core.Rect {
	return core.NewRect(0, 0, 640, 384)
}

func testPaddle() *Paddle {
	return NewPaddle(320, 360, 96, 8, 6)
}

func TestReleaseStraightUp(t *testing.T) {
	paddle := testPaddle()
	b := NewBall(core.Vec{X: paddle.X, Y: paddle.Y - 4}, 4, noJitter)
	b.GuidePos = GuideSteps / 2

	b.Release()

	if b.Stuck {
		t.Fatal("Release left the ball stuck")
	}
	if b.Vel.X != 0 {
		t.Errorf("Vel.X = %v, expected 0 for center guide slot", b.Vel.X)
	}
	if b.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %v, expected negative (upward)", b.Vel.Y)
	}
	if math.Abs(b.Speed()-DefaultBallSpeed) > 1e-9 {
		t.Errorf("Speed() = %v, expected default %v", b.Speed(), DefaultBallSpeed)
	}
}

func TestReleaseUsesLastRecordedSpeed(t *testing.T) {
	paddle := testPaddle()
	b := NewFreeBall(core.Vec{X: 100, Y: 100}, core.Vec{X: 0, Y: 6.5}, 4, noJitter)
	b.Update(1000.0/60.0, testField(), paddle) // Records the speed

	b.StickTo(paddle)
	b.Release()

	if math.Abs(b.Speed()-6.5) > 1e-9 {
		t.Errorf("Speed() = %v, expected the recorded 6.5", b.Speed())
	}
}

func TestLaunchDirectionTable(t *testing.T) {
	center := LaunchDirection(GuideSteps / 2)
	if math.Abs(center.X) > 1e-9 || math.Abs(center.Y+1) > 1e-9 {
		t.Errorf("center slot = %v, expected (0, -1)", center)
	}

	left := LaunchDirection(0)
	right := LaunchDirection(GuideSteps - 1)
	if left.X >= 0 {
		t.Errorf("slot 0 X = %v, expected negative (leftward)", left.X)
	}
	if right.X <= 0 {
		t.Errorf("last slot X = %v, expected positive (rightward)", right.X)
	}
	// Extremes are the 45 degree diagonals
	if math.Abs(left.X+math.Sqrt2/2) > 1e-9 || math.Abs(left.Y+math.Sqrt2/2) > 1e-9 {
		t.Errorf("slot 0 = %v, expected (-√2/2, -√2/2)", left)
	}
	// All entries are unit vectors
	for i := 0; i < GuideSteps; i++ {
		if math.Abs(LaunchDirection(i).Len()-1) > 1e-9 {
			t.Errorf("slot %d is not a unit vector", i)
		}
	}
}

func TestGuidePingPong(t *testing.T) {
	paddle := testPaddle()
	b := NewBall(core.Vec{X: paddle.X, Y: paddle.Y - 4}, 4, noJitter)
	field := testField()

	seen := make(map[int]bool)
	low, high := b.GuidePos, b.GuidePos
	for range guideTickPeriod * GuideSteps * 4 {
		b.Update(1000.0/60.0, field, paddle)
		seen[b.GuidePos] = true
		if b.GuidePos < low {
			low = b.GuidePos
		}
		if b.GuidePos > high {
			high = b.GuidePos
		}
	}

	if low != 0 || high != GuideSteps-1 {
		t.Errorf("guide range [%d, %d], expected [0, %d]", low, high, GuideSteps-1)
	}
	if len(seen) != GuideSteps {
		t.Errorf("guide visited %d slots, expected %d", len(seen), GuideSteps)
	}
}

func TestStuckBallFollowsPaddle(t *testing.T) {
	paddle := testPaddle()
	b := NewBall(core.Vec{X: paddle.X + 10, Y: paddle.Y - 4}, 4, noJitter)
	b.PaddleOffset = 10
	field := testField()

	paddle.Move(1, field)
	b.Update(1000.0/60.0, field, paddle)

	if b.Pos.X != paddle.X+10 {
		t.Errorf("Pos.X = %v, expected pinned to paddle center + offset", b.Pos.X)
	}
	if b.Pos.Y != paddle.Y-b.Radius {
		t.Errorf("Pos.Y = %v, expected on top of paddle", b.Pos.Y)
	}
}

func TestAutoLaunchTimer(t *testing.T) {
	paddle := testPaddle()
	b := NewBall(core.Vec{X: paddle.X, Y: paddle.Y - 4}, 4, noJitter)
	b.AutoLaunchTicks = 30
	field := testField()

	for range 29 {
		b.Update(1000.0/60.0, field, paddle)
	}
	if !b.Stuck {
		t.Fatal("ball released before the auto-launch timer expired")
	}

	b.Update(1000.0/60.0, field, paddle)
	if b.Stuck {
		t.Error("ball still stuck after the auto-launch timer expired")
	}
}

func TestWallBounceReflectsAndClamps(t *testing.T) {
	field := testField()
	paddle := testPaddle()

	// Heading into the left wall
	b := NewFreeBall(core.Vec{X: 5, Y: 100}, core.Vec{X: -5, Y: 0}, 4, noJitter)
	b.Update(1000.0/60.0, field, paddle)

	if b.Vel.X <= 0 {
		t.Errorf("Vel.X = %v after left wall, expected positive", b.Vel.X)
	}
	if b.Pos.X-b.Radius < field.X {
		t.Errorf("ball not clamped inside field: Pos.X = %v", b.Pos.X)
	}

	// Heading into the top wall
	b = NewFreeBall(core.Vec{X: 100, Y: 5}, core.Vec{X: 0, Y: -5}, 4, noJitter)
	b.Update(1000.0/60.0, field, paddle)

	if b.Vel.Y <= 0 {
		t.Errorf("Vel.Y = %v after top wall, expected positive", b.Vel.Y)
	}
}

func TestBallLostBelowBottom(t *testing.T) {
	field := testField()
	paddle := testPaddle()
	b := NewFreeBall(core.Vec{X: 100, Y: field.Bottom() + 1}, core.Vec{X: 0, Y: 5}, 4, noJitter)

	lost := b.Update(1000.0/60.0, field, paddle)
	if !lost {
		t.Fatal("Update did not report a lost ball")
	}
	if b.Active {
		t.Error("lost ball still active")
	}

	// Further updates on an inactive ball are no-ops
	if b.Update(1000.0/60.0, field, paddle) {
		t.Error("inactive ball reported lost again")
	}
}

func TestPaddleBounceCone(t *testing.T) {
	paddle := testPaddle()

	tests := []struct {
		name    string
		hitX    float64
		wantDir int // -1 left, 0 straight, +1 right
	}{
		{"center hit goes straight up", paddle.X, 0},
		{"left-edge hit angles left", paddle.X - paddle.Width/2 + 1, -1},
		{"right-edge hit angles right", paddle.X + paddle.Width/2 - 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewFreeBall(core.Vec{X: tc.hitX, Y: paddle.Y - 2}, core.Vec{X: 0, Y: 5}, 4, noJitter)
			speedBefore := b.Speed()
			if !b.BouncePaddle(paddle) {
				t.Fatal("overlapping descending ball should bounce")
			}

			if b.Vel.Y >= 0 {
				t.Fatalf("Vel.Y = %v, expected upward after paddle bounce", b.Vel.Y)
			}
			switch tc.wantDir {
			case 0:
				if math.Abs(b.Vel.X) > 1e-6 {
					t.Errorf("Vel.X = %v, expected straight up", b.Vel.X)
				}
			case -1:
				if b.Vel.X >= 0 {
					t.Errorf("Vel.X = %v, expected leftward", b.Vel.X)
				}
			case 1:
				if b.Vel.X <= 0 {
					t.Errorf("Vel.X = %v, expected rightward", b.Vel.X)
				}
			}
			if math.Abs(b.Speed()-speedBefore) > 1e-6 {
				t.Errorf("paddle bounce changed speed: %v -> %v", speedBefore, b.Speed())
			}
			// Bounce stays inside the 60 degree cone
			angle := math.Atan2(b.Vel.X, -b.Vel.Y)
			if math.Abs(angle) > paddleConeHalf+1e-9 {
				t.Errorf("bounce angle %v exceeds cone half-width %v", angle, paddleConeHalf)
			}
		})
	}
}

func TestPaddleBounceSkippedWhenMovingUp(t *testing.T) {
	paddle := testPaddle()

	// Ball overlapping the paddle but moving upward must not double-bounce.
	b := NewFreeBall(core.Vec{X: paddle.X, Y: paddle.Y + 1}, core.Vec{X: 1, Y: -5}, 4, noJitter)

	if b.BouncePaddle(paddle) {
		t.Fatal("upward-moving ball was bounced by the paddle")
	}
	if b.Vel != (core.Vec{X: 1, Y: -5}) {
		t.Errorf("velocity changed without a bounce: %+v", b.Vel)
	}
}

func TestJitterIsDeterministicWithSeededSource(t *testing.T) {
	field := testField()
	paddle := testPaddle()

	run := func() core.Vec {
		b := NewFreeBall(core.Vec{X: 5, Y: 100}, core.Vec{X: -5, Y: 1}, 4, rng.New(99))
		b.Update(1000.0/60.0, field, paddle)
		return b.Vel
	}

	if run() != run() {
		t.Error("same seed produced different post-bounce velocities")
	}
}

func TestStickToRecordsOffset(t *testing.T) {
	paddle := testPaddle()
	b := NewFreeBall(core.Vec{X: paddle.X + 20, Y: paddle.Y - 2}, core.Vec{X: 1, Y: 5}, 4, noJitter)

	b.StickTo(paddle)

	if !b.Stuck {
		t.Fatal("StickTo did not mark the ball stuck")
	}
	if b.PaddleOffset != 20 {
		t.Errorf("PaddleOffset = %v, expected 20", b.PaddleOffset)
	}
	if b.Vel != (core.Vec{}) {
		t.Errorf("Vel = %v, expected zero while stuck", b.Vel)
	}
}
