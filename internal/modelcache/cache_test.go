package modelcache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/specialistvlad/ramodel/internal/metrics"
	"github.com/specialistvlad/ramodel/internal/model"
	"github.com/specialistvlad/ramodel/internal/relation"
	"github.com/specialistvlad/ramodel/internal/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVars(t *testing.T, n int) *variable.List {
	t.Helper()
	l := variable.NewList()
	for i := 0; i < n; i++ {
		abbrev := string(rune('A' + i))
		_, err := l.Add("var"+abbrev, abbrev, 2, false)
		require.NoError(t, err)
	}
	return l
}

func newModel(t *testing.T, vars *variable.List, indices ...[]int) *model.Model {
	t.Helper()
	m := model.New(len(indices))
	for _, idx := range indices {
		r, err := relation.New(vars, idx)
		require.NoError(t, err)
		require.NoError(t, m.AddRelation(r, true, nil))
	}
	return m
}

func TestAddAndFindModel(t *testing.T) {
	met := metrics.New()
	c := New(met)
	vars := newVars(t, 3)

	assert.Nil(t, c.FindModel("AB:BC"))

	m := newModel(t, vars, []int{0, 1}, []int{1, 2})
	canonical, added := c.AddModel(m)
	require.True(t, added)
	assert.Same(t, m, canonical)
	assert.Equal(t, 1, m.ID)

	dup := newModel(t, vars, []int{1, 2}, []int{0, 1})
	canonical, added = c.AddModel(dup)
	assert.False(t, added)
	assert.Same(t, m, canonical)
	assert.Zero(t, dup.ID)

	assert.Same(t, m, c.FindModel("AB:BC"))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(met.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(met.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(met.CachedModels))
}

func TestDelete(t *testing.T) {
	c := New(nil)
	vars := newVars(t, 2)
	m := newModel(t, vars, []int{0, 1})
	m.SetAttribute(model.AttributeDF, 3)
	c.AddModel(m)

	assert.True(t, c.Delete("AB"))
	assert.False(t, c.Delete("AB"))
	assert.Nil(t, c.FindModel("AB"))
	assert.Equal(t, model.Unset, m.Attribute(model.AttributeDF), "deleted models release their attributes")
}

func TestNilCacheFindsNothing(t *testing.T) {
	var c *Cache
	assert.Nil(t, c.FindModel("A"))
}

func TestCache_ServesModelDegreesOfFreedom(t *testing.T) {
	c := New(nil)
	vars := newVars(t, 2)
	canonical := newModel(t, vars, []int{0})
	c.AddModel(canonical)

	joint, err := relation.NewStateBased(vars, []int{0, 1}, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	require.NoError(t, err)

	m := newModel(t, vars, []int{0})
	require.NoError(t, m.AddRelation(joint, true, c))
	assert.Equal(t, 2, m.RelationCount())
	assert.Equal(t, 1.0, canonical.Attribute(model.AttributeDF))
}

// TestCache_ConcurrentAccess verifies that concurrent adds of distinct and
// duplicate models keep exactly one instance per name.
func TestCache_ConcurrentAccess(t *testing.T) {
	c := New(metrics.New())
	vars := newVars(t, 4)
	pairs := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	numGoroutines := 60

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			m := model.New(1)
			r, err := relation.New(vars, pairs[i%len(pairs)])
			if err != nil {
				t.Errorf("failed to build relation: %v", err)
				return
			}
			_ = m.AddRelation(r, false, nil)
			c.AddModel(m)
			c.FindModel(fmt.Sprint(r))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, len(pairs), c.Len())
	assert.Equal(t, []string{"AB", "AC", "AD", "BC", "BD", "CD"}, c.Names())
}
