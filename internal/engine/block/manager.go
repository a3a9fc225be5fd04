package block

import (
	"math"

	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/entity"
	"github.com/smolin/blockade/internal/level"
)

// Reflection tuning.
const (
	// radiusInflation inflates the ball's effective radius for collision
	// candidacy, to resist tunneling at high relative speed.
	radiusInflation = 1.05

	// pushOutBuffer is added to the penetration depth when pushing a ball
	// out of a block; insideBuffer applies when the ball center was found
	// fully inside the rectangle.
	pushOutBuffer = 1.0
	insideBuffer  = 4.0
)

// Manager owns the block collection and the collision-resolution math for
// ball and bullet impacts.
type Manager struct {
	blocks []Breakable
}

// NewManager creates an empty block manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers a block with the manager.
func (m *Manager) Add(b Breakable) {
	m.blocks = append(m.blocks, b)
}

// Blocks returns the live collection.
func (m *Manager) Blocks() []Breakable {
	return m.blocks
}

// Load replaces the collection with blocks decoded from a level grid laid
// out across the given area. Unknown grid symbols fall back to a plain
// default block rather than failing the load.
func (m *Manager) Load(lv *level.Level, area core.Rect) {
	m.blocks = m.blocks[:0]

	rows := lv.Rows()
	cols := lv.Cols()
	if rows == 0 || cols == 0 {
		return
	}

	w := area.W / float64(cols)
	h := area.H / float64(rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			sym := lv.At(row, col)
			if sym == level.Empty {
				continue
			}

			rect := core.NewRect(area.X+float64(col)*w, area.Y+float64(row)*h, w, h)
			m.Add(fromSymbol(sym, rect))
		}
	}
}

// fromSymbol decodes one grid symbol into a block.
func fromSymbol(sym byte, rect core.Rect) Breakable {
	if sym >= '1' && sym <= '9' {
		return NewCounter(rect, int(sym-'0'))
	}

	var kind Kind
	switch sym {
	case 'b':
		kind = KindBlue
	case 'g':
		kind = KindGreen
	case 'o':
		kind = KindOrange
	case 'p':
		kind = KindPurple
	case 'r':
		kind = KindRed
	case 'X':
		kind = KindUnbreakable
	case '*':
		kind = KindBomb
	case 'E':
		kind = KindExpand
	case 'S':
		kind = KindShrink
	case 'T':
		kind = KindSticky
	case 'V':
		kind = KindReverse
	case 'A':
		kind = KindAmmo
	case 'M':
		kind = KindMultiball
	case 'R':
		kind = KindRoamer
	default:
		// Unrecognized symbols keep the level playable.
		kind = KindBlue
	}
	return New(kind, rect)
}

// Step advances breaking animations for the whole collection.
func (m *Manager) Step(dtMS float64) {
	for _, b := range m.blocks {
		b.Step(dtMS)
	}
}

// Prune removes destroyed blocks from the collection.
func (m *Manager) Prune() {
	live := m.blocks[:0]
	for _, b := range m.blocks {
		if b.Phase() != StateDestroyed {
			live = append(live, b)
		}
	}
	m.blocks = live
}

// ClearHitFlags resets the per-tick already-hit guard on every block.
// Called at the end of each update pass.
func (m *Manager) ClearHitFlags() {
	for _, b := range m.blocks {
		b.clearHitFlag()
	}
}

// BreakableRemaining counts blocks that still stand between the player and
// level completion.
func (m *Manager) BreakableRemaining() int {
	count := 0
	for _, b := range m.blocks {
		if b.Phase() != StateDestroyed && b.Kind().IsBreakable() {
			count++
		}
	}
	return count
}

// ResolveBallCollision finds the single closest normal, not-yet-hit block
// within the ball's inflated radius, reflects the ball off that one block
// only, and resolves the hit. Returns the block that took the hit so the
// caller can anchor effects at the right position. The session guards
// against a second resolution for the same ball within one tick, which
// avoids chaotic multi-reflection between adjacent blocks.
func (m *Manager) ResolveBallCollision(ball *entity.Ball) (HitResult, Breakable, bool) {
	if !ball.Active || ball.Stuck {
		return HitResult{}, nil, false
	}

	effRadius := ball.Radius * radiusInflation

	var closest Breakable
	closestDist := math.MaxFloat64

	for _, b := range m.blocks {
		if b.Phase() != StateNormal || b.HitThisFrame() {
			continue
		}
		dist := b.Bounds().ClosestPoint(ball.Pos).Sub(ball.Pos).Len()
		if dist <= effRadius && dist < closestDist {
			closest = b
			closestDist = dist
		}
	}

	if closest == nil {
		return HitResult{}, nil, false
	}

	m.reflectBall(ball, closest.Bounds(), effRadius)
	return closest.Hit(), closest, true
}

// ResolveBulletCollision resolves the first normal, not-yet-hit block the
// bullet currently overlaps, returning that block. The bullet is consumed on
// its first impact.
func (m *Manager) ResolveBulletCollision(bullet *entity.Bullet) (HitResult, Breakable, bool) {
	if !bullet.Active {
		return HitResult{}, nil, false
	}

	for _, b := range m.blocks {
		if b.Phase() != StateNormal || b.HitThisFrame() {
			continue
		}
		if !b.Bounds().Intersects(bullet.Bounds()) {
			continue
		}

		bullet.Active = false
		return b.Hit(), b, true
	}

	return HitResult{}, nil, false
}

// reflectBall reflects the ball's velocity off the rectangle and pushes it
// out along the collision normal, then renormalizes speed so repeated
// reflections never decay the ball to a standstill.
func (m *Manager) reflectBall(ball *entity.Ball, rect core.Rect, effRadius float64) {
	closest := rect.ClosestPoint(ball.Pos)
	delta := ball.Pos.Sub(closest)
	dist := delta.Len()

	var normal core.Vec
	buffer := pushOutBuffer
	inside := dist == 0

	if inside {
		// Center on or inside the rectangle: push out along the nearest
		// of the four edges rather than leaving velocity unchanged.
		normal = nearestEdgeNormal(ball.Pos, rect)
		buffer = insideBuffer
		dist = 0
	} else {
		normal = delta.Scale(1 / dist)
	}

	onXEdge := closest.X == rect.X || closest.X == rect.Right()
	onYEdge := closest.Y == rect.Y || closest.Y == rect.Bottom()

	switch {
	case inside:
		ball.Vel = reflect(ball.Vel, normal)
	case onXEdge && onYEdge:
		// Corner hit: full vector reflection against the corner normal.
		ball.Vel = reflect(ball.Vel, normal)
	case onXEdge:
		// Side face: negate the horizontal component.
		ball.Vel.X = -ball.Vel.X
	default:
		// Top/bottom face: negate the vertical component.
		ball.Vel.Y = -ball.Vel.Y
	}

	// Push out by the penetration depth plus a small fixed buffer.
	penetration := effRadius - dist
	ball.Pos = ball.Pos.Add(normal.Scale(penetration + buffer))

	// Renormalize to the ball's target speed; a zero velocity (degenerate
	// input) becomes a straight bounce along the normal.
	target := ball.TargetSpeed
	if target <= 0 {
		target = entity.DefaultBallSpeed
	}
	speed := ball.Vel.Len()
	if speed < 1e-9 {
		ball.Vel = normal.Scale(target)
		return
	}
	ball.Vel = ball.Vel.Scale(target / speed)
}

// reflect mirrors v against the unit normal n: v' = v - 2(v·n)n.
func reflect(v, n core.Vec) core.Vec {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// nearestEdgeNormal returns the outward normal of the rectangle edge
// nearest to p, defaulting to straight up on ties.
func nearestEdgeNormal(p core.Vec, rect core.Rect) core.Vec {
	distLeft := p.X - rect.X
	distRight := rect.Right() - p.X
	distTop := p.Y - rect.Y
	distBottom := rect.Bottom() - p.Y

	minDist := distTop
	normal := core.Vec{X: 0, Y: -1}

	if distBottom < minDist {
		minDist = distBottom
		normal = core.Vec{X: 0, Y: 1}
	}
	if distLeft < minDist {
		minDist = distLeft
		normal = core.Vec{X: -1, Y: 0}
	}
	if distRight < minDist {
		normal = core.Vec{X: 1, Y: 0}
	}

	return normal
}
