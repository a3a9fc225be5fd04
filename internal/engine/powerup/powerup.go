// Package powerup applies block effect tags to paddle and game state.
package powerup

import (
	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/block"
	"github.com/smolin/blockade/internal/engine/entity"
	"github.com/smolin/blockade/internal/engine/event"
)

// Size is the paddle size ordinal.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// AmmoPerPickup is how many rounds an ammo block refills.
const AmmoPerPickup = 3

// AmmoStore is the slice of the score/ammo ledger the power-up manager
// needs. The ledger emits its own events on mutation.
type AmmoStore interface {
	AddAmmo(n int) []event.Event
}

// Widths maps each size ordinal to a paddle width in pixels.
type Widths struct {
	Small  float64
	Medium float64
	Large  float64
}

// DefaultWidths matches the stock paddle sizing.
var DefaultWidths = Widths{Small: 64, Medium: 96, Large: 128}

func (w Widths) at(s Size) float64 {
	switch s {
	case SizeSmall:
		return w.Small
	case SizeLarge:
		return w.Large
	default:
		return w.Medium
	}
}

// Manager tracks the transient power-up state: sticky paddle, reversed
// controls, and the paddle size ordinal.
type Manager struct {
	paddle *entity.Paddle
	ammo   AmmoStore
	widths Widths

	size    Size
	sticky  bool
	reverse bool
}

// NewManager wires the manager to the paddle it resizes and the ledger it
// refills ammo through. The paddle starts at medium size.
func NewManager(paddle *entity.Paddle, ammo AmmoStore, widths Widths) *Manager {
	m := &Manager{
		paddle: paddle,
		ammo:   ammo,
		widths: widths,
		size:   SizeMedium,
	}
	m.paddle.SetWidth(widths.at(m.size))
	return m
}

// Sticky reports whether balls stick to the paddle on contact.
func (m *Manager) Sticky() bool { return m.sticky }

// Reverse reports whether movement controls are mirrored.
func (m *Manager) Reverse() bool { return m.reverse }

// Size returns the current paddle size ordinal.
func (m *Manager) Size() Size { return m.size }

// HandleEffect applies one effect tag and returns the events it produced.
// The position is where the effect originated, used by area effects.
func (m *Manager) HandleEffect(effect block.Kind, at core.Vec) []event.Event {
	switch effect {
	case block.KindBomb:
		return []event.Event{event.Explosion{X: at.X, Y: at.Y}}

	case block.KindAmmo:
		return m.ammo.AddAmmo(AmmoPerPickup)

	case block.KindExpand:
		if m.size < SizeLarge {
			m.size++
		}
		m.paddle.SetWidth(m.widths.at(m.size))
		return []event.Event{event.PaddleGrown{
			Width:   m.paddle.Width,
			AtLimit: m.size == SizeLarge,
		}}

	case block.KindShrink:
		if m.size > SizeSmall {
			m.size--
		}
		m.paddle.SetWidth(m.widths.at(m.size))
		return []event.Event{event.PaddleShrunk{
			Width:   m.paddle.Width,
			AtLimit: m.size == SizeSmall,
		}}

	case block.KindReverse:
		m.reverse = !m.reverse
		return []event.Event{event.ReverseChanged{On: m.reverse}}

	case block.KindSticky:
		m.sticky = true
		return []event.Event{event.StickyChanged{On: true}}

	case block.KindMultiball:
		return []event.Event{event.BallSpawned{Count: 2}}
	}

	return nil
}

// Reset clears sticky and reverse. Paddle size survives life loss and
// level transitions.
func (m *Manager) Reset() {
	m.sticky = false
	m.reverse = false
}
