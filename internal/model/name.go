package model

import "strings"

const (
	independentToken    = "IV"
	singleVariableToken = "IVI"
)

// PrintName returns the model's canonical name, or its inverse form, built
// from the relation names joined by ":". The result is cached until the next
// mutation.
//
// In directed systems the relation over all independent variables is written
// as "IV"; other independent-only relations keep their own names. In
// undirected systems the single-variable relations collapse into "IVI" when
// there are two or more and they hold every variable missing from the larger
// variable-based relations.
func (m *Model) PrintName(useInverse bool) string {
	if useInverse && m.inverseNameValid {
		return m.inverseName
	}
	if !useInverse && m.printNameValid {
		return m.printName
	}

	name := m.formatName(useInverse)
	if useInverse {
		m.inverseName, m.inverseNameValid = name, true
	} else {
		m.printName, m.printNameValid = name, true
	}
	return name
}

func (m *Model) formatName(useInverse bool) string {
	if len(m.relations) == 0 {
		return ""
	}
	vars := m.relations[0].Variables()

	var token string
	folded := make([]bool, len(m.relations))
	if vars.IsDirected() {
		if i := m.independentRelation(); i >= 0 {
			folded[i] = true
			token = independentToken
		}
	} else if singles := m.freeSingles(); len(singles) > 1 {
		for _, i := range singles {
			folded[i] = true
		}
		token = singleVariableToken
	}

	parts := make([]string, 0, len(m.relations)+1)
	if token != "" {
		parts = append(parts, token)
	}
	for i, r := range m.relations {
		if !folded[i] {
			parts = append(parts, r.PrintName(useInverse))
		}
	}
	return strings.Join(parts, ":")
}

// independentRelation returns the position of the first relation holding
// exactly the catalog's independent variables as a variable-based relation,
// or -1.
func (m *Model) independentRelation() int {
	vars := m.relations[0].Variables()
	independent := 0
	for i := 0; i < vars.Len(); i++ {
		if !vars.Get(i).Dependent {
			independent++
		}
	}
	for i, r := range m.relations {
		if !r.IsStateBased() && r.IsIndependentOnly() && r.VariableCount() == independent {
			return i
		}
	}
	return -1
}

// freeSingles returns the positions of the single-variable, variable-based
// relations when they are exactly one per variable left out of every larger
// variable-based relation, and nil otherwise.
func (m *Model) freeSingles() []int {
	vars := m.relations[0].Variables()
	inLarger := make([]bool, vars.Len())
	var singles []int
	for i, r := range m.relations {
		if r.IsStateBased() {
			continue
		}
		if r.VariableCount() == 1 {
			singles = append(singles, i)
			continue
		}
		for _, v := range r.Indices() {
			inLarger[v] = true
		}
	}

	free := 0
	for _, covered := range inLarger {
		if !covered {
			free++
		}
	}
	if len(singles) != free {
		return nil
	}
	seen := make([]bool, vars.Len())
	for _, i := range singles {
		v := m.relations[i].Indices()[0]
		if inLarger[v] || seen[v] {
			return nil
		}
		seen[v] = true
	}
	return singles
}
