// Package table holds the fitted distribution a model may carry. Computing
// fits (for example by iterative proportional fitting) happens elsewhere; this
// package only stores the result.
package table

import (
	"slices"

	"github.com/specialistvlad/ramodel/internal/variable"
)

// Tuple is one cell of a table.
type Tuple struct {
	Key   variable.Key
	Value float64
}

// Table is a sparse map from packed keys to values, kept sorted by key.
type Table struct {
	keySize int
	tuples  []Tuple
}

// New creates an empty table for keys of the given size.
func New(keySize, capacity int) *Table {
	return &Table{keySize: keySize, tuples: make([]Tuple, 0, capacity)}
}

// KeySize returns the number of segments per key.
func (t *Table) KeySize() int { return t.keySize }

// Len returns the number of tuples.
func (t *Table) Len() int { return len(t.tuples) }

// Set stores value under key, replacing any previous value.
func (t *Table) Set(key variable.Key, value float64) {
	i, found := slices.BinarySearchFunc(t.tuples, key, func(tp Tuple, k variable.Key) int {
		return tp.Key.Compare(k)
	})
	if found {
		t.tuples[i].Value = value
		return
	}
	t.tuples = slices.Insert(t.tuples, i, Tuple{Key: slices.Clone(key), Value: value})
}

// Lookup returns the value stored under key.
func (t *Table) Lookup(key variable.Key) (float64, bool) {
	i, found := slices.BinarySearchFunc(t.tuples, key, func(tp Tuple, k variable.Key) int {
		return tp.Key.Compare(k)
	})
	if !found {
		return 0, false
	}
	return t.tuples[i].Value, true
}

// Tuple returns the i-th tuple in key order.
func (t *Table) Tuple(i int) Tuple { return t.tuples[i] }

// Sum returns the total of all values.
func (t *Table) Sum() float64 {
	var sum float64
	for _, tp := range t.tuples {
		sum += tp.Value
	}
	return sum
}

// Size returns the approximate memory footprint of the table in bytes.
func (t *Table) Size() int64 {
	return int64(cap(t.tuples)) * int64(8+4*t.keySize+24)
}
