package state

import (
	"testing"

	"github.com/smolin/blockade/internal/engine/event"
)

func TestLifeLossWithActiveBallsIsFree(t *testing.T) {
	m := NewManager(3, 60)

	if evs := m.HandleLifeLoss(true); evs != nil {
		t.Errorf("got %v, want nothing while balls remain", evs)
	}
	if m.Lives() != 3 {
		t.Errorf("lives = %d, want 3", m.Lives())
	}
}

func TestLifeLossDecrements(t *testing.T) {
	m := NewManager(3, 60)

	evs := m.HandleLifeLoss(false)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	if lc := evs[0].(event.LivesChanged); lc.Lives != 2 {
		t.Errorf("lives in event = %d, want 2", lc.Lives)
	}
}

func TestLastLifeEmitsGameOverAfterLivesChanged(t *testing.T) {
	m := NewManager(1, 60)

	evs := m.HandleLifeLoss(false)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	if lc, ok := evs[0].(event.LivesChanged); !ok || lc.Lives != 0 {
		t.Errorf("first event = %#v, want LivesChanged{0}", evs[0])
	}
	if _, ok := evs[1].(event.GameOver); !ok {
		t.Errorf("second event = %#v, want GameOver", evs[1])
	}
	if !m.GameOver() {
		t.Error("manager should be game over")
	}
}

func TestLifeLossAfterGameOverIsNoOp(t *testing.T) {
	m := NewManager(1, 60)
	m.HandleLifeLoss(false)

	if evs := m.HandleLifeLoss(false); evs != nil {
		t.Errorf("got %v after game over", evs)
	}
	if m.Lives() != 0 {
		t.Errorf("lives = %d, want 0", m.Lives())
	}
}

func TestLevelCompleteFiresOnce(t *testing.T) {
	m := NewManager(3, 60)

	if evs := m.CheckLevelComplete(5); evs != nil {
		t.Errorf("got %v with blocks remaining", evs)
	}

	evs := m.CheckLevelComplete(0)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	if _, ok := evs[0].(event.LevelComplete); !ok {
		t.Errorf("first event = %#v", evs[0])
	}
	if _, ok := evs[1].(event.Applause); !ok {
		t.Errorf("second event = %#v", evs[1])
	}

	if evs := m.CheckLevelComplete(0); evs != nil {
		t.Errorf("second call emitted %v", evs)
	}
}

func TestTimerAccumulatesWholeSeconds(t *testing.T) {
	m := NewManager(3, 60)

	// 600ms: under a second, nothing yet.
	if evs := m.UpdateTimer(600, true); evs != nil {
		t.Errorf("got %v before a full second", evs)
	}
	// +600ms crosses the boundary.
	evs := m.UpdateTimer(600, true)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	if tc := evs[0].(event.TimerChanged); tc.Remaining != 59 {
		t.Errorf("remaining = %d, want 59", tc.Remaining)
	}
	if m.BonusRemaining() != 59 {
		t.Errorf("manager remaining = %d", m.BonusRemaining())
	}
}

func TestTimerKeepsFractionAfterEmit(t *testing.T) {
	m := NewManager(3, 60)

	m.UpdateTimer(1500, true) // emits 1s, keeps 500ms
	evs := m.UpdateTimer(500, true)
	if len(evs) != 1 || evs[0].(event.TimerChanged).Remaining != 58 {
		t.Errorf("carried fraction lost: %v", evs)
	}
}

func TestTimerInactiveDoesNotAccumulate(t *testing.T) {
	m := NewManager(3, 60)

	m.UpdateTimer(900, false)
	if evs := m.UpdateTimer(200, true); evs != nil {
		t.Errorf("inactive time leaked into the clock: %v", evs)
	}
}

func TestTimerStopsAtZero(t *testing.T) {
	m := NewManager(3, 1)

	evs := m.UpdateTimer(2500, true)
	if len(evs) != 1 || evs[0].(event.TimerChanged).Remaining != 0 {
		t.Fatalf("got %v, want remaining 0", evs)
	}
	if evs := m.UpdateTimer(1000, true); evs != nil {
		t.Errorf("expired timer emitted %v", evs)
	}
}

func TestTimerHaltsOnCompletionAndGameOver(t *testing.T) {
	m := NewManager(1, 60)
	m.CheckLevelComplete(0)
	if evs := m.UpdateTimer(1000, true); evs != nil {
		t.Errorf("timer ran after completion: %v", evs)
	}

	m2 := NewManager(1, 60)
	m2.HandleLifeLoss(false)
	if evs := m2.UpdateTimer(1000, true); evs != nil {
		t.Errorf("timer ran after game over: %v", evs)
	}
}

func TestConsumeBonusZeroesClock(t *testing.T) {
	m := NewManager(3, 60)

	if got := m.ConsumeBonus(); got != 60 {
		t.Fatalf("first consume = %d, want 60", got)
	}
	if got := m.ConsumeBonus(); got != 0 {
		t.Errorf("second consume = %d, want 0", got)
	}
	if m.BonusRemaining() != 0 {
		t.Errorf("remaining = %d, want 0", m.BonusRemaining())
	}
	if evs := m.UpdateTimer(1500, true); evs != nil {
		t.Errorf("consumed clock still ticking: %v", evs)
	}
}

func TestResetForLevelRearmsLatch(t *testing.T) {
	m := NewManager(3, 60)
	m.CheckLevelComplete(0)

	m.ResetForLevel(90)

	if m.LevelComplete() {
		t.Error("latch should rearm")
	}
	if m.BonusRemaining() != 90 {
		t.Errorf("bonus = %d, want 90", m.BonusRemaining())
	}
	if evs := m.CheckLevelComplete(0); len(evs) != 2 {
		t.Errorf("rearmed latch emitted %v", evs)
	}
}
