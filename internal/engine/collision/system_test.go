package collision

import (
	"testing"

	"github.com/smolin/blockade/internal/core"
)

// stub is a minimal collidable for exercising the system.
type stub struct {
	rect core.Rect
	typ  Type
	hits int
}

func (s *stub) Bounds() core.Rect   { return s.rect }
func (s *stub) CollisionType() Type { return s.typ }
func (s *stub) CollidesWith(other Collidable) bool {
	return s.rect.Intersects(other.Bounds())
}
func (s *stub) OnCollision(Collidable) { s.hits++ }

func TestCheckNonOverlappingFiresNothing(t *testing.T) {
	sys := NewSystem()
	a := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBall}
	b := &stub{rect: core.NewRect(50, 50, 10, 10), typ: TypeBlock}
	sys.Add(a)
	sys.Add(b)

	called := false
	sys.Register(TypeBall, TypeBlock, func(_, _ Collidable) { called = true })

	pairs := sys.Check()
	if len(pairs) != 0 {
		t.Errorf("Check() detected %d pairs, expected 0", len(pairs))
	}
	if called {
		t.Error("handler fired for non-overlapping pair")
	}
}

func TestCheckReversedRegistrationOrder(t *testing.T) {
	// Handler registered for (Block, Ball) must still fire for a (Ball,
	// Block) pair, with arguments in the registered order.
	sys := NewSystem()
	ball := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBall}
	block := &stub{rect: core.NewRect(5, 5, 10, 10), typ: TypeBlock}
	sys.Add(ball)
	sys.Add(block)

	calls := 0
	sys.Register(TypeBlock, TypeBall, func(a, b Collidable) {
		calls++
		if a.CollisionType() != TypeBlock || b.CollisionType() != TypeBall {
			t.Errorf("argument order (%v, %v), expected (Block, Ball)",
				a.CollisionType(), b.CollisionType())
		}
	})

	sys.Check()
	if calls != 1 {
		t.Errorf("handler called %d times, expected exactly 1", calls)
	}
}

func TestRegisterReplacesEitherOrder(t *testing.T) {
	sys := NewSystem()
	a := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBall}
	b := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBlock}
	sys.Add(a)
	sys.Add(b)

	first, second := 0, 0
	sys.Register(TypeBall, TypeBlock, func(_, _ Collidable) { first++ })
	// Re-registering the reversed pair replaces, no error
	sys.Register(TypeBlock, TypeBall, func(_, _ Collidable) { second++ })

	sys.Check()
	if first != 0 {
		t.Error("replaced handler still fired")
	}
	if second != 1 {
		t.Errorf("replacement handler fired %d times, expected 1", second)
	}
}

func TestCheckMissingHandlerIsSilentlySkipped(t *testing.T) {
	sys := NewSystem()
	a := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBall}
	b := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBullet}
	sys.Add(a)
	sys.Add(b)

	pairs := sys.Check() // No handler registered; must not panic
	if len(pairs) != 1 {
		t.Errorf("Check() detected %d pairs, expected 1", len(pairs))
	}
}

func TestAddDeduplicates(t *testing.T) {
	sys := NewSystem()
	a := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBall}
	sys.Add(a)
	sys.Add(a)

	if sys.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Add, expected 1", sys.Len())
	}
}

func TestRemoveAndClear(t *testing.T) {
	sys := NewSystem()
	a := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBall}
	b := &stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBlock}
	sys.Add(a)
	sys.Add(b)

	sys.Remove(a)
	if sys.Len() != 1 {
		t.Errorf("Len() = %d after Remove, expected 1", sys.Len())
	}

	sys.Clear()
	if sys.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", sys.Len())
	}
}

func TestCheckVisitsEachPairOnce(t *testing.T) {
	sys := NewSystem()
	// Three mutually overlapping balls: 3 unordered pairs.
	for range 3 {
		sys.Add(&stub{rect: core.NewRect(0, 0, 10, 10), typ: TypeBall})
	}

	calls := 0
	sys.Register(TypeBall, TypeBall, func(_, _ Collidable) { calls++ })

	pairs := sys.Check()
	if len(pairs) != 3 {
		t.Errorf("detected %d pairs, expected 3", len(pairs))
	}
	if calls != 3 {
		t.Errorf("handler called %d times, expected 3", calls)
	}
}
