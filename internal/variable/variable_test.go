package variable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, cards ...int) *List {
	t.Helper()
	l := NewList()
	for i, c := range cards {
		abbrev := string(rune('A' + i))
		_, err := l.Add("var"+abbrev, abbrev, c, false)
		require.NoError(t, err)
	}
	return l
}

func TestList_Add(t *testing.T) {
	testCases := []struct {
		name      string
		abbrev    string
		card      int
		expectErr bool
	}{
		{name: "binary", abbrev: "A", card: 2},
		{name: "multi letter abbreviation", abbrev: "Ab", card: 5},
		{name: "single valued", abbrev: "C", card: 1},
		{name: "error - zero cardinality", abbrev: "D", card: 0, expectErr: true},
		{name: "error - negative cardinality", abbrev: "E", card: -3, expectErr: true},
		{name: "error - lower case abbreviation", abbrev: "f", card: 2, expectErr: true},
		{name: "error - empty abbreviation", abbrev: "", card: 2, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewList()
			idx, err := l.Add(tc.name, tc.abbrev, tc.card, false)
			if tc.expectErr {
				require.Error(t, err)
				assert.Equal(t, 0, l.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, idx)
			assert.Equal(t, tc.card, l.Get(0).Cardinality)
		})
	}
}

func TestList_DuplicateAbbreviation(t *testing.T) {
	l := newTestList(t, 2)
	_, err := l.Add("other", "A", 3, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")
}

func TestList_Layout(t *testing.T) {
	// 2 -> 2 bits, 3 -> 2 bits, 4 -> 3 bits
	l := newTestList(t, 2, 3, 4)
	require.Equal(t, 1, l.KeySize())

	a, b, c := l.Get(0), l.Get(1), l.Get(2)
	assert.Equal(t, uint(30), a.Shift)
	assert.Equal(t, uint(28), b.Shift)
	assert.Equal(t, uint(25), c.Shift)
	assert.Zero(t, a.Mask&b.Mask)
	assert.Zero(t, b.Mask&c.Mask)
}

func TestList_LayoutSpillsIntoNewSegment(t *testing.T) {
	cards := make([]int, 17) // 17 binary variables need 34 bits
	for i := range cards {
		cards[i] = 2
	}
	l := newTestList(t, cards...)
	assert.Equal(t, 2, l.KeySize())
	assert.Equal(t, 0, l.Get(15).Segment)
	assert.Equal(t, 1, l.Get(16).Segment)
	assert.Equal(t, uint(30), l.Get(16).Shift)
}

func TestKey_SetAndValue(t *testing.T) {
	l := newTestList(t, 2, 3, 4)
	k := l.NewKey()
	for i := 0; i < l.Len(); i++ {
		assert.Equal(t, DontCare, l.Value(k, i), "fresh key must be all don't-care")
	}

	require.NoError(t, l.SetValue(k, 0, 1))
	require.NoError(t, l.SetValue(k, 2, 3))
	assert.Equal(t, 1, l.Value(k, 0))
	assert.Equal(t, DontCare, l.Value(k, 1))
	assert.Equal(t, 3, l.Value(k, 2))

	require.NoError(t, l.SetValue(k, 0, 0))
	assert.Equal(t, 0, l.Value(k, 0))
	require.NoError(t, l.SetValue(k, 2, DontCare))
	assert.Equal(t, DontCare, l.Value(k, 2))

	require.Error(t, l.SetValue(k, 1, 3), "value equal to cardinality is out of range")
	require.Error(t, l.SetValue(k, 5, 0), "variable index out of range")
}

func TestList_DirectedAndDF(t *testing.T) {
	l := newTestList(t, 2, 3)
	assert.False(t, l.IsDirected())
	assert.Equal(t, 5.0, l.DegreesOfFreedom())

	_, err := l.Add("outcome", "Z", 2, true)
	require.NoError(t, err)
	assert.True(t, l.IsDirected())
	assert.Equal(t, []int{2, 3, 2}, l.Cardinalities())

	idx, ok := l.IndexOf("Z")
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	_, ok = l.IndexOf("Q")
	assert.False(t, ok)
	assert.Nil(t, l.Get(3))
}

func TestKey_Compare(t *testing.T) {
	assert.Equal(t, 0, Key{1, 2}.Compare(Key{1, 2}))
	assert.Negative(t, Key{1, 2}.Compare(Key{1, 3}))
	assert.Positive(t, Key{2}.Compare(Key{1, 9}))
	assert.Negative(t, Key{1}.Compare(Key{1, 0}))
}
