package variable

import (
	"fmt"
	"strings"
)

// KeySegment is one word of a packed key.
type KeySegment uint32

// DontCare marks an unconstrained variable when returned by Value.
const DontCare = -1

// Key is a packed assignment of values (or don't-care) to every variable of a
// catalog.
type Key []KeySegment

// NewKey returns a key for the catalog with every variable set to don't-care.
func (l *List) NewKey() Key {
	k := make(Key, l.keySize)
	for i := range k {
		k[i] = ^KeySegment(0)
	}
	return k
}

// SetValue stores value for variable index i. DontCare clears the constraint.
func (l *List) SetValue(k Key, i, value int) error {
	v := l.Get(i)
	if v == nil {
		return fmt.Errorf("variable index %d out of range", i)
	}
	if value == DontCare {
		k[v.Segment] |= v.Mask
		return nil
	}
	if value < 0 || value >= v.Cardinality {
		return fmt.Errorf("value %d out of range for variable %s (cardinality %d)", value, v.Abbrev, v.Cardinality)
	}
	k[v.Segment] = (k[v.Segment] &^ v.Mask) | (KeySegment(value) << v.Shift & v.Mask)
	return nil
}

// Value extracts the value of variable index i from k. It returns DontCare
// when every bit of the variable's field is set.
func (l *List) Value(k Key, i int) int {
	v := l.vars[i]
	field := k[v.Segment] & v.Mask
	if field == v.Mask {
		return DontCare
	}
	return int(field >> v.Shift)
}

// Compare orders keys segment by segment.
func (k Key) Compare(other Key) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		switch {
		case k[i] < other[i]:
			return -1
		case k[i] > other[i]:
			return 1
		}
	}
	return len(k) - len(other)
}

// String renders the key as hex segments, for diagnostics.
func (k Key) String() string {
	parts := make([]string, len(k))
	for i, s := range k {
		parts[i] = fmt.Sprintf("%08x", uint32(s))
	}
	return strings.Join(parts, ".")
}
