package relation

import (
	"slices"

	"github.com/specialistvlad/ramodel/internal/variable"
)

// StateConstraints is an ordered set of constraint keys. Each key pins some
// variables to a value and leaves the rest as don't-care.
type StateConstraints struct {
	keys []variable.Key
}

// NewStateConstraints returns a constraint set holding the given keys, sorted
// and deduplicated.
func NewStateConstraints(keys ...variable.Key) *StateConstraints {
	sc := &StateConstraints{keys: make([]variable.Key, 0, len(keys))}
	for _, k := range keys {
		sc.keys = append(sc.keys, slices.Clone(k))
	}
	slices.SortFunc(sc.keys, variable.Key.Compare)
	sc.keys = slices.CompactFunc(sc.keys, func(a, b variable.Key) bool { return a.Compare(b) == 0 })
	return sc
}

// ConstraintCount returns the number of constraints. A nil set has none.
func (sc *StateConstraints) ConstraintCount() int {
	if sc == nil {
		return 0
	}
	return len(sc.keys)
}

// Constraint returns the i-th key, or nil when i is out of range.
func (sc *StateConstraints) Constraint(i int) variable.Key {
	if sc == nil || i < 0 || i >= len(sc.keys) {
		return nil
	}
	return sc.keys[i]
}

func (sc *StateConstraints) compare(other *StateConstraints) int {
	if c := sc.ConstraintCount() - other.ConstraintCount(); c != 0 {
		return c
	}
	for i := range sc.ConstraintCount() {
		if c := sc.keys[i].Compare(other.keys[i]); c != 0 {
			return c
		}
	}
	return 0
}
