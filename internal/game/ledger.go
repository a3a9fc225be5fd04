package game

import "github.com/smolin/blockade/internal/engine/event"

// Ledger is the concrete score/ammo store behind the engine's opaque
// ledger dependency. Every mutation returns the events it produced.
type Ledger struct {
	score   int
	ammo    int
	maxAmmo int
}

// NewLedger creates a ledger with the given starting ammo and cap. A cap of
// zero means unlimited.
func NewLedger(startAmmo, maxAmmo int) *Ledger {
	return &Ledger{ammo: startAmmo, maxAmmo: maxAmmo}
}

// Score returns the current score.
func (l *Ledger) Score() int { return l.score }

// Ammo returns the current ammunition count.
func (l *Ledger) Ammo() int { return l.ammo }

// AddScore awards points and reports the new total.
func (l *Ledger) AddScore(points int) []event.Event {
	if points == 0 {
		return nil
	}
	l.score += points
	return []event.Event{event.ScoreChanged{Score: l.score, Delta: points}}
}

// AddAmmo refills the magazine up to the cap.
func (l *Ledger) AddAmmo(n int) []event.Event {
	l.ammo += n
	if l.maxAmmo > 0 && l.ammo > l.maxAmmo {
		l.ammo = l.maxAmmo
	}
	return []event.Event{event.AmmoChanged{Ammo: l.ammo}}
}

// FireAmmo spends one round. Firing on empty is a normal gameplay condition
// signaled through ok, not an error.
func (l *Ledger) FireAmmo() (bool, []event.Event) {
	if l.ammo <= 0 {
		return false, nil
	}
	l.ammo--
	return true, []event.Event{event.AmmoChanged{Ammo: l.ammo}}
}

// Reset clears the ledger for a new run.
func (l *Ledger) Reset(startAmmo int) {
	l.score = 0
	l.ammo = startAmmo
}
