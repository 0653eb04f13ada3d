// Package statespace enumerates the joint state space of a list of
// categorical variables as a mixed-radix counter.
package statespace

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCardinality is returned for a variable with fewer than one value.
	ErrInvalidCardinality = errors.New("cardinality must be at least 1")
	// ErrTooLarge is returned when the state space does not fit in an int.
	ErrTooLarge = errors.New("state space too large")
)

// Size returns the number of joint states: the product of all cardinalities.
// An empty list has exactly one (empty) state.
func Size(cards []int) (int, error) {
	size := 1
	for i, c := range cards {
		if c < 1 {
			return 0, fmt.Errorf("variable %d: %w (got %d)", i, ErrInvalidCardinality, c)
		}
		if size > math.MaxInt/c {
			return 0, ErrTooLarge
		}
		size *= c
	}
	return size, nil
}

// Enumerate returns every joint state exactly once. Row r holds one value per
// variable. The last variable is the fastest-varying digit, so the rows are
// in lexicographic order of the value tuples.
func Enumerate(cards []int) ([][]int, error) {
	size, err := Size(cards)
	if err != nil {
		return nil, err
	}

	n := len(cards)
	states := make([][]int, size)
	// one backing array keeps the table contiguous
	backing := make([]int, size*n)
	for r := range states {
		states[r] = backing[r*n : (r+1)*n : (r+1)*n]
	}

	for r := 1; r < size; r++ {
		copy(states[r], states[r-1])
		for pos := n - 1; pos >= 0; pos-- {
			if states[r][pos] < cards[pos]-1 {
				states[r][pos]++
				break
			}
			states[r][pos] = 0
		}
	}
	return states, nil
}
