package collision

// Handler resolves a detected collision between two entities. Arguments are
// supplied in the order matching the registered type pair.
type Handler func(a, b Collidable)

type pairKey struct {
	a, b Type
}

// Pair records one detected collision.
type Pair struct {
	A, B Collidable
}

// System is a generic O(n²) pairwise collision detector over registered
// collidables. The live entity count stays in the low hundreds at most, so
// the quadratic pass is cheaper than maintaining a spatial index.
type System struct {
	collidables []Collidable
	handlers    map[pairKey]Handler
}

// NewSystem creates an empty collision system.
func NewSystem() *System {
	return &System{
		handlers: make(map[pairKey]Handler),
	}
}

// Add registers an entity in the live set. Duplicates are ignored.
func (s *System) Add(c Collidable) {
	for _, existing := range s.collidables {
		if existing == c {
			return
		}
	}
	s.collidables = append(s.collidables, c)
}

// Remove drops an entity from the live set.
func (s *System) Remove(c Collidable) {
	for i, existing := range s.collidables {
		if existing == c {
			s.collidables = append(s.collidables[:i], s.collidables[i+1:]...)
			return
		}
	}
}

// Clear empties the live set. Handlers stay registered.
func (s *System) Clear() {
	s.collidables = s.collidables[:0]
}

// Len returns the number of registered collidables.
func (s *System) Len() int {
	return len(s.collidables)
}

// Register stores a handler for the unordered pair (typeA, typeB).
// Registering the same pair again, in either order, replaces the previous
// handler. The handler receives its arguments in the order registered here.
func (s *System) Register(typeA, typeB Type, fn Handler) {
	delete(s.handlers, pairKey{typeB, typeA})
	s.handlers[pairKey{typeA, typeB}] = fn
}

// Check iterates all unordered pairs exactly once and invokes the registered
// handler for each colliding pair. A colliding pair with no handler is
// silently skipped. Returns the detected pairs.
func (s *System) Check() []Pair {
	var detected []Pair

	for i := 0; i < len(s.collidables); i++ {
		for j := i + 1; j < len(s.collidables); j++ {
			a, b := s.collidables[i], s.collidables[j]
			if !a.CollidesWith(b) {
				continue
			}

			detected = append(detected, Pair{A: a, B: b})

			if fn, ok := s.handlers[pairKey{a.CollisionType(), b.CollisionType()}]; ok {
				fn(a, b)
			} else if fn, ok := s.handlers[pairKey{b.CollisionType(), a.CollisionType()}]; ok {
				fn(b, a)
			}
		}
	}

	return detected
}
