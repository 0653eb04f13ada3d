package model

import (
	"math"

	"github.com/specialistvlad/ramodel/internal/relation"
)

// Cache looks up previously built models by canonical name. It may be nil
// wherever it is accepted.
type Cache interface {
	FindModel(name string) *Model
}

// ContainsRelation reports whether rel is already implied by m.
//
// For variable-based models and relations this is plain variable
// containment. When either side is state-based, rel is implied when it is a
// member of m or when adding it leaves the degrees of freedom unchanged.
func (m *Model) ContainsRelation(rel *relation.Relation, cache Cache) (bool, error) {
	if !m.IsStateBased() && !rel.IsStateBased() {
		for _, r := range m.relations {
			if r.Contains(rel) {
				return true, nil
			}
		}
		return false, nil
	}

	for _, r := range m.relations {
		if r == rel {
			return true, nil
		}
	}

	candidate := New(len(m.relations) + 1)
	candidate.CopyRelations(m, -1, -1)
	candidate.insert(rel)
	defer candidate.Release()

	candidateDF, err := candidate.resolveDegreesOfFreedom(cache)
	if err != nil {
		return false, err
	}
	df, err := m.resolveDegreesOfFreedom(cache)
	if err != nil {
		return false, err
	}
	return math.Abs(df-candidateDF) < DFTolerance, nil
}

// ContainsModel reports whether every relation of other is contained in m.
func (m *Model) ContainsModel(other *Model, cache Cache) (bool, error) {
	for _, r := range other.relations {
		ok, err := m.ContainsRelation(r, cache)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// IsEquivalentTo reports whether m and other describe the same structure.
// For state-based models that means the same instance, the same canonical
// name, or mutual containment. Variable-based models are only equivalent to
// themselves here.
func (m *Model) IsEquivalentTo(other *Model, cache Cache) (bool, error) {
	if m == other {
		return true, nil
	}
	if !m.IsStateBased() && !other.IsStateBased() {
		return false, nil
	}
	if m.PrintName(false) == other.PrintName(false) {
		return true, nil
	}

	contains, err := m.ContainsModel(other, cache)
	if err != nil || !contains {
		return false, err
	}
	return other.ContainsModel(m, cache)
}
