package model

import "github.com/specialistvlad/ramodel/internal/linalg"

// DFTolerance is the fixed tolerance for comparing degrees of freedom: the
// machine epsilon of float64.
const DFTolerance = 0x1p-52

// DegreesOfFreedom returns the model's state-based degrees of freedom, the
// rank of its structure matrix minus one, computing and storing it in the
// AttributeDF attribute on first use.
func (m *Model) DegreesOfFreedom() (float64, error) {
	if df := m.Attribute(AttributeDF); df >= 0 {
		return df, nil
	}
	if err := m.completeStateBased(); err != nil {
		return 0, err
	}
	df := float64(linalg.Rank(m.structure.Rows) - 1)
	m.SetAttribute(AttributeDF, df)
	return df, nil
}

// resolveDegreesOfFreedom prefers the value memoized on this model, then the
// one on the cached model of the same name, computing it there if needed.
// Only without a cached counterpart is it computed on m directly.
func (m *Model) resolveDegreesOfFreedom(cache Cache) (float64, error) {
	if df := m.Attribute(AttributeDF); df >= 0 {
		return df, nil
	}
	if cache != nil {
		if cached := cache.FindModel(m.PrintName(false)); cached != nil && cached != m {
			df, err := cached.DegreesOfFreedom()
			if err != nil {
				return 0, err
			}
			m.SetAttribute(AttributeDF, df)
			return df, nil
		}
	}
	return m.DegreesOfFreedom()
}
