package model

import (
	"testing"

	"github.com/specialistvlad/ramodel/internal/relation"
	"github.com/specialistvlad/ramodel/internal/variable"
	"github.com/stretchr/testify/require"
)

// mapCache is a minimal Cache keyed by canonical name.
type mapCache struct {
	models  map[string]*Model
	lookups int
}

func newMapCache(models ...*Model) *mapCache {
	c := &mapCache{models: make(map[string]*Model)}
	for _, m := range models {
		c.models[m.PrintName(false)] = m
	}
	return c
}

func (c *mapCache) FindModel(name string) *Model {
	c.lookups++
	return c.models[name]
}

// newVars builds a catalog of variables named by abbrevs, each with the
// matching cardinality.
func newVars(t *testing.T, abbrevs string, cards ...int) *variable.List {
	t.Helper()
	require.Len(t, cards, len(abbrevs))
	l := variable.NewList()
	for i, a := range abbrevs {
		_, err := l.Add("var"+string(a), string(a), cards[i], false)
		require.NoError(t, err)
	}
	return l
}

func rel(t *testing.T, vars *variable.List, abbrevs string) *relation.Relation {
	t.Helper()
	idx := make([]int, 0, len(abbrevs))
	for _, a := range abbrevs {
		i, ok := vars.IndexOf(string(a))
		require.True(t, ok, "unknown abbreviation %q", a)
		idx = append(idx, i)
	}
	r, err := relation.New(vars, idx)
	require.NoError(t, err)
	return r
}

func stateRel(t *testing.T, vars *variable.List, indices []int, states ...[]int) *relation.Relation {
	t.Helper()
	r, err := relation.NewStateBased(vars, indices, states)
	require.NoError(t, err)
	return r
}

func buildModel(t *testing.T, normalize bool, rels ...*relation.Relation) *Model {
	t.Helper()
	m := New(len(rels))
	for _, r := range rels {
		require.NoError(t, m.AddRelation(r, normalize, nil))
	}
	return m
}

// fullJoint is the state-based relation listing every state of two binary variables.
func fullJoint(t *testing.T, vars *variable.List) *relation.Relation {
	t.Helper()
	return stateRel(t, vars, []int{0, 1}, []int{0, 0}, []int{0, 1}, []int{1, 0}, []int{1, 1})
}
