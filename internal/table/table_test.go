package table

import (
	"testing"

	"github.com/specialistvlad/ramodel/internal/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SetAndLookup(t *testing.T) {
	tbl := New(1, 4)
	tbl.Set(variable.Key{3}, 0.25)
	tbl.Set(variable.Key{1}, 0.5)
	tbl.Set(variable.Key{2}, 0.25)

	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, variable.Key{1}, tbl.Tuple(0).Key, "tuples are kept in key order")

	v, ok := tbl.Lookup(variable.Key{2})
	require.True(t, ok)
	assert.Equal(t, 0.25, v)

	_, ok = tbl.Lookup(variable.Key{9})
	assert.False(t, ok)
	assert.InDelta(t, 1.0, tbl.Sum(), 1e-12)
}

func TestTable_SetReplaces(t *testing.T) {
	tbl := New(1, 0)
	key := variable.Key{7}
	tbl.Set(key, 1)
	key[0] = 8 // stored key must be a copy
	tbl.Set(variable.Key{7}, 2)

	require.Equal(t, 1, tbl.Len())
	v, ok := tbl.Lookup(variable.Key{7})
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
	assert.Positive(t, tbl.Size())
	assert.Equal(t, 1, tbl.KeySize())
}
