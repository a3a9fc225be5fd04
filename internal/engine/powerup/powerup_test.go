package powerup

import (
	"testing"

	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/block"
	"github.com/smolin/blockade/internal/engine/entity"
	"github.com/smolin/blockade/internal/engine/event"
)

type fakeAmmo struct {
	added int
}

func (f *fakeAmmo) AddAmmo(n int) []event.Event {
	f.added += n
	return []event.Event{event.AmmoChanged{Ammo: f.added}}
}

func newTestManager() (*Manager, *entity.Paddle, *fakeAmmo) {
	p := entity.NewPaddle(320, 360, 96, 8, 6)
	a := &fakeAmmo{}
	return NewManager(p, a, DefaultWidths), p, a
}

func TestExpandClampedAtLarge(t *testing.T) {
	m, p, _ := newTestManager()

	evs := m.HandleEffect(block.KindExpand, core.Vec{})
	grown, ok := evs[0].(event.PaddleGrown)
	if !ok {
		t.Fatalf("got %T, want PaddleGrown", evs[0])
	}
	if !grown.AtLimit || grown.Width != DefaultWidths.Large {
		t.Errorf("first expand: %+v, want large at limit", grown)
	}
	if p.Width != DefaultWidths.Large {
		t.Errorf("paddle width = %v", p.Width)
	}

	// A second expand stays clamped at Large.
	evs = m.HandleEffect(block.KindExpand, core.Vec{})
	grown = evs[0].(event.PaddleGrown)
	if !grown.AtLimit || grown.Width != DefaultWidths.Large {
		t.Errorf("clamped expand: %+v", grown)
	}
}

func TestShrinkClampedAtSmall(t *testing.T) {
	m, p, _ := newTestManager()

	m.HandleEffect(block.KindShrink, core.Vec{})
	evs := m.HandleEffect(block.KindShrink, core.Vec{})
	shrunk := evs[0].(event.PaddleShrunk)
	if !shrunk.AtLimit || p.Width != DefaultWidths.Small {
		t.Errorf("shrink twice: %+v width=%v", shrunk, p.Width)
	}
}

func TestExpandAfterShrinkReturnsToMedium(t *testing.T) {
	m, p, _ := newTestManager()

	m.HandleEffect(block.KindShrink, core.Vec{})
	evs := m.HandleEffect(block.KindExpand, core.Vec{})
	grown := evs[0].(event.PaddleGrown)
	if grown.AtLimit || p.Width != DefaultWidths.Medium {
		t.Errorf("expand from small: %+v width=%v", grown, p.Width)
	}
}

func TestReverseToggles(t *testing.T) {
	m, _, _ := newTestManager()

	evs := m.HandleEffect(block.KindReverse, core.Vec{})
	if ev := evs[0].(event.ReverseChanged); !ev.On || !m.Reverse() {
		t.Error("first reverse should turn on")
	}
	evs = m.HandleEffect(block.KindReverse, core.Vec{})
	if ev := evs[0].(event.ReverseChanged); ev.On || m.Reverse() {
		t.Error("second reverse should turn off")
	}
}

func TestStickyIdempotent(t *testing.T) {
	m, _, _ := newTestManager()

	m.HandleEffect(block.KindSticky, core.Vec{})
	evs := m.HandleEffect(block.KindSticky, core.Vec{})
	if ev := evs[0].(event.StickyChanged); !ev.On || !m.Sticky() {
		t.Error("sticky should stay on")
	}
}

func TestBombEmitsExplosionOnly(t *testing.T) {
	m, _, _ := newTestManager()

	evs := m.HandleEffect(block.KindBomb, core.Vec{X: 50, Y: 60})
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ex := evs[0].(event.Explosion)
	if ex.X != 50 || ex.Y != 60 {
		t.Errorf("explosion at (%v,%v)", ex.X, ex.Y)
	}
	if m.Sticky() || m.Reverse() || m.Size() != SizeMedium {
		t.Error("bomb must not change power-up state")
	}
}

func TestAmmoGoesThroughLedger(t *testing.T) {
	m, _, a := newTestManager()

	evs := m.HandleEffect(block.KindAmmo, core.Vec{})
	if a.added != AmmoPerPickup {
		t.Errorf("ledger received %d, want %d", a.added, AmmoPerPickup)
	}
	if _, ok := evs[0].(event.AmmoChanged); !ok {
		t.Errorf("got %T, want AmmoChanged from the ledger", evs[0])
	}
}

func TestMultiballEmitsSpawn(t *testing.T) {
	m, _, _ := newTestManager()

	evs := m.HandleEffect(block.KindMultiball, core.Vec{})
	if sp := evs[0].(event.BallSpawned); sp.Count != 2 {
		t.Errorf("spawn count = %d, want 2", sp.Count)
	}
}

func TestNonEffectKindIsNoOp(t *testing.T) {
	m, _, _ := newTestManager()

	if evs := m.HandleEffect(block.KindBlue, core.Vec{}); evs != nil {
		t.Errorf("plain kind produced %v", evs)
	}
}

func TestResetKeepsSize(t *testing.T) {
	m, p, _ := newTestManager()

	m.HandleEffect(block.KindExpand, core.Vec{})
	m.HandleEffect(block.KindSticky, core.Vec{})
	m.HandleEffect(block.KindReverse, core.Vec{})

	m.Reset()

	if m.Sticky() || m.Reverse() {
		t.Error("reset should clear sticky and reverse")
	}
	if m.Size() != SizeLarge || p.Width != DefaultWidths.Large {
		t.Error("reset must leave paddle size alone")
	}
}
