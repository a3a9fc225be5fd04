// Package state isolates the life-loss, level-complete, and bonus-timer
// decisions from rendering and input.
package state

import "github.com/smolin/blockade/internal/engine/event"

// DefaultLives is the starting life count.
const DefaultLives = 3

// Manager tracks lives, the level-completion latch, and the bonus timer.
type Manager struct {
	lives         int
	gameOver      bool
	levelComplete bool

	bonusSeconds int
	timerAccumMS float64
}

// NewManager starts a fresh game state with the given lives and bonus
// countdown in seconds.
func NewManager(lives, bonusSeconds int) *Manager {
	return &Manager{lives: lives, bonusSeconds: bonusSeconds}
}

// Lives returns the remaining life count.
func (m *Manager) Lives() int { return m.lives }

// GameOver reports whether the game has ended.
func (m *Manager) GameOver() bool { return m.gameOver }

// LevelComplete reports whether the completion latch has fired.
func (m *Manager) LevelComplete() bool { return m.levelComplete }

// BonusRemaining returns the bonus seconds left on the clock.
func (m *Manager) BonusRemaining() int { return m.bonusSeconds }

// ConsumeBonus returns the bonus seconds left and zeroes the clock, so the
// seconds-to-points conversion happens exactly once no matter how many
// callers reach for it.
func (m *Manager) ConsumeBonus() int {
	bonus := m.bonusSeconds
	m.bonusSeconds = 0
	m.timerAccumMS = 0
	return bonus
}

// HandleLifeLoss resolves a lost ball. Losing one ball of several costs
// nothing; only when no active ball remains does a life go. At zero lives
// the game-over event follows the lives-changed event.
func (m *Manager) HandleLifeLoss(hasActiveBalls bool) []event.Event {
	if m.gameOver || hasActiveBalls {
		return nil
	}

	m.lives--
	events := []event.Event{event.LivesChanged{Lives: m.lives}}
	if m.lives <= 0 {
		m.gameOver = true
		events = append(events, event.GameOver{})
	}
	return events
}

// CheckLevelComplete latches completion the first time the breakable count
// reaches zero. Repeat calls emit nothing.
func (m *Manager) CheckLevelComplete(blocksRemaining int) []event.Event {
	if m.levelComplete || blocksRemaining > 0 {
		return nil
	}

	m.levelComplete = true
	return []event.Event{event.LevelComplete{Bonus: m.bonusSeconds}, event.Applause{}}
}

// UpdateTimer burns down the bonus clock in whole seconds accumulated from
// dt. Inactive frames (paused, over, complete) do not accumulate.
func (m *Manager) UpdateTimer(dtMS float64, active bool) []event.Event {
	if !active || m.gameOver || m.levelComplete || m.bonusSeconds <= 0 {
		return nil
	}

	m.timerAccumMS += dtMS
	if m.timerAccumMS < 1000 {
		return nil
	}

	whole := int(m.timerAccumMS / 1000)
	m.timerAccumMS -= float64(whole) * 1000

	m.bonusSeconds -= whole
	if m.bonusSeconds < 0 {
		m.bonusSeconds = 0
	}
	return []event.Event{event.TimerChanged{Remaining: m.bonusSeconds}}
}

// ResetForLevel rearms the completion latch and timer for a new level.
// Lives carry over.
func (m *Manager) ResetForLevel(bonusSeconds int) {
	m.levelComplete = false
	m.bonusSeconds = bonusSeconds
	m.timerAccumMS = 0
}
