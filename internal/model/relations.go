package model

import (
	"slices"

	"github.com/specialistvlad/ramodel/internal/relation"
)

// AddRelation inserts rel in canonical order. A nil rel is ignored.
//
// With normalize set and a non-empty model, a relation already implied by
// the model is skipped. For state-based models (or a state-based rel) this is
// decided by ContainsRelation using cache; otherwise by variable containment,
// and any existing relation contained in rel is absorbed (removed).
//
// The returned error is always an invariant violation from the state-based
// containment test, or ErrCatalogMismatch.
func (m *Model) AddRelation(rel *relation.Relation, normalize bool, cache Cache) error {
	if rel == nil {
		return nil
	}
	if len(m.relations) > 0 && m.relations[0].Variables() != rel.Variables() {
		return &InvariantError{Op: "add relation", Relation: rel.PrintName(false), Err: ErrCatalogMismatch}
	}

	if normalize && len(m.relations) > 0 {
		if m.IsStateBased() || rel.IsStateBased() {
			implied, err := m.ContainsRelation(rel, cache)
			if err != nil {
				return err
			}
			if implied {
				return nil
			}
		} else {
			for i := 0; i < len(m.relations); i++ {
				if m.relations[i].Contains(rel) {
					return nil
				}
				if rel.Contains(m.relations[i]) {
					m.relations = slices.Delete(m.relations, i, i+1)
					i--
				}
			}
		}
	}

	m.insert(rel)
	return nil
}

// insert places rel at its canonical position and invalidates derived state.
func (m *Model) insert(rel *relation.Relation) {
	if len(m.relations) == cap(m.relations) {
		grown := make([]*relation.Relation, len(m.relations), max(1, cap(m.relations)*growthFactor))
		copy(grown, m.relations)
		m.relations = grown
	}

	pos := len(m.relations)
	for i, r := range m.relations {
		if rel.Compare(r) < 0 {
			pos = i
			break
		}
	}
	m.relations = m.relations[:len(m.relations)+1]
	copy(m.relations[pos+1:], m.relations[pos:])
	m.relations[pos] = rel

	m.invalidate()
}
