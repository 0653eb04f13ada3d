package model

import (
	"testing"

	"github.com/specialistvlad/ramodel/internal/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreesOfFreedom(t *testing.T) {
	vars := newVars(t, "XY", 2, 2)

	testCases := []struct {
		name     string
		model    *Model
		expected float64
	}{
		{name: "independence", model: buildModel(t, true, rel(t, vars, "X"), rel(t, vars, "Y")), expected: 2},
		{name: "saturated", model: buildModel(t, true, rel(t, vars, "XY")), expected: 3},
		{name: "full joint state-based", model: buildModel(t, false, fullJoint(t, vars)), expected: 3},
		{name: "single margin", model: buildModel(t, true, rel(t, vars, "X")), expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			df, err := tc.model.DegreesOfFreedom()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, df)
			assert.Equal(t, tc.expected, tc.model.Attribute(AttributeDF), "degrees of freedom are memoized")
		})
	}
}

// Two binary variables X and Y; M = {X, Y}; adding the full joint state-based
// relation strictly lowers the degrees of freedom left, so it is kept.
func TestScenario_StateBasedRelationIsNotAbsorbed(t *testing.T) {
	vars := newVars(t, "XY", 2, 2)
	m := buildModel(t, true, rel(t, vars, "X"), rel(t, vars, "Y"))
	require.Equal(t, 2, m.RelationCount())
	before := m.PrintName(false)

	require.NoError(t, m.AddRelation(fullJoint(t, vars), true, nil))

	assert.Equal(t, 3, m.RelationCount())
	assert.True(t, m.IsStateBased())
	assert.NotEqual(t, before, m.PrintName(false))
	assert.Equal(t, "IVI:X0Y0+X0Y1+X1Y0+X1Y1", m.PrintName(false))

	df, err := m.DegreesOfFreedom()
	require.NoError(t, err)
	assert.Equal(t, 3.0, df)
}

func TestContainsRelation_ImpliedStateBased(t *testing.T) {
	vars := newVars(t, "XY", 2, 2)
	joint := fullJoint(t, vars)
	m := buildModel(t, false, joint)

	ok, err := m.ContainsRelation(joint, nil)
	require.NoError(t, err)
	assert.True(t, ok, "a member relation is contained")

	ok, err = m.ContainsRelation(rel(t, vars, "X"), nil)
	require.NoError(t, err)
	assert.True(t, ok, "margins of the full joint add nothing")

	require.NoError(t, m.AddRelation(rel(t, vars, "X"), true, nil))
	assert.Equal(t, 1, m.RelationCount(), "implied relation must be skipped")
}

func TestContainsRelation_NotImpliedStateBased(t *testing.T) {
	vars := newVars(t, "XY", 2, 2)
	m := buildModel(t, true, rel(t, vars, "X"))
	pinY := stateRel(t, vars, []int{0, 1}, []int{variable.DontCare, 0})

	ok, err := m.ContainsRelation(pinY, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, m.RelationCount(), "the candidate is a copy")
	assert.Equal(t, 1.0, m.Attribute(AttributeDF))
}

func TestContainsRelation_VariableBased(t *testing.T) {
	vars := newVars(t, "ABC", 2, 2, 2)
	m := buildModel(t, true, rel(t, vars, "AB"), rel(t, vars, "C"))

	ok, err := m.ContainsRelation(rel(t, vars, "A"), nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.ContainsRelation(rel(t, vars, "BC"), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContainsRelation_UsesCache(t *testing.T) {
	vars := newVars(t, "XY", 2, 2)
	pinY := stateRel(t, vars, []int{0, 1}, []int{variable.DontCare, 0})

	// A cached instance of the candidate {X, pinY} with an unset df gets
	// its df computed and stored on the cached instance.
	cachedCandidate := buildModel(t, false, rel(t, vars, "X"), pinY)
	cache := newMapCache(cachedCandidate)
	m := buildModel(t, true, rel(t, vars, "X"))

	ok, err := m.ContainsRelation(pinY, cache)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2.0, cachedCandidate.Attribute(AttributeDF))
	assert.Positive(t, cache.lookups)

	// A cached value is trusted as is: claim the candidate has m's df.
	stale := buildModel(t, false, rel(t, vars, "X"), pinY)
	stale.SetAttribute(AttributeDF, 1)
	m2 := buildModel(t, true, rel(t, vars, "X"))
	ok, err = m2.ContainsRelation(pinY, newMapCache(stale))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestContainsRelation_ModelDFFromCache(t *testing.T) {
	vars := newVars(t, "XY", 2, 2)
	canonical := buildModel(t, true, rel(t, vars, "X"))
	m := buildModel(t, true, rel(t, vars, "X"))

	_, err := m.ContainsRelation(fullJoint(t, vars), newMapCache(canonical))
	require.NoError(t, err)
	assert.Equal(t, 1.0, canonical.Attribute(AttributeDF), "df is computed on the cached instance")
	assert.Equal(t, 1.0, m.Attribute(AttributeDF))
	assert.Nil(t, m.structure, "m itself was not completed")
}

func TestContainsModel(t *testing.T) {
	vars := newVars(t, "ABC", 2, 2, 2)
	big := buildModel(t, true, rel(t, vars, "AB"), rel(t, vars, "BC"))
	small := buildModel(t, true, rel(t, vars, "A"), rel(t, vars, "C"))

	ok, err := big.ContainsModel(big, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = big.ContainsModel(small, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = small.ContainsModel(big, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContainsModel_StateBasedIsReflexive(t *testing.T) {
	vars := newVars(t, "XY", 2, 2)
	m := buildModel(t, false, rel(t, vars, "X"), stateRel(t, vars, []int{0, 1}, []int{1, 1}))

	ok, err := m.ContainsModel(m, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsEquivalentTo(t *testing.T) {
	vars := newVars(t, "XY", 2, 2)
	joint := fullJoint(t, vars)

	t.Run("same instance", func(t *testing.T) {
		m := buildModel(t, true, rel(t, vars, "X"))
		ok, err := m.IsEquivalentTo(m, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("variable-based distinct instances", func(t *testing.T) {
		a := buildModel(t, true, rel(t, vars, "X"))
		b := buildModel(t, true, rel(t, vars, "X"))
		ok, err := a.IsEquivalentTo(b, nil)
		require.NoError(t, err)
		assert.False(t, ok, "only identity counts for variable-based models")
	})

	t.Run("state-based same name", func(t *testing.T) {
		a := buildModel(t, false, joint)
		b := buildModel(t, false, joint)
		ok, err := a.IsEquivalentTo(b, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("state-based mutual containment", func(t *testing.T) {
		a := buildModel(t, false, joint)
		b := buildModel(t, false, rel(t, vars, "X"), joint)
		require.NotEqual(t, a.PrintName(false), b.PrintName(false))

		ok, err := a.IsEquivalentTo(b, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("state-based different structure", func(t *testing.T) {
		a := buildModel(t, false, joint)
		b := buildModel(t, false, rel(t, vars, "X"), stateRel(t, vars, []int{0, 1}, []int{0, 0}))

		ok, err := a.IsEquivalentTo(b, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
