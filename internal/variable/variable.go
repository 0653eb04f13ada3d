package variable

import (
	"errors"
	"fmt"
	"math/bits"
	"regexp"
)

// KeySegmentBits is the width of a single key segment.
const KeySegmentBits = 32

// abbrevRegex enforces the notation convention: one upper-case letter followed
// by any number of lower-case letters. This keeps "AbC" splittable into "Ab", "C".
var abbrevRegex = regexp.MustCompile(`^[A-Z][a-z]*$`)

// ErrInvalidCardinality is returned when a variable is declared with fewer
// than one value.
var ErrInvalidCardinality = errors.New("variable cardinality must be at least 1")

// Variable is one categorical variable and its position in the key layout.
type Variable struct {
	Name        string
	Abbrev      string
	Cardinality int
	Dependent   bool

	Segment int
	Shift   uint
	Mask    KeySegment
}

// List is the ordered variable catalog. The order of Add calls defines the
// variable indices used by relations and the digit order of the state space.
type List struct {
	vars    []*Variable
	byAbbr  map[string]int
	keySize int
	used    uint // bits used in the last segment
}

// NewList creates an empty catalog.
func NewList() *List {
	return &List{byAbbr: make(map[string]int)}
}

// Add appends a variable and assigns it a bit field. It returns the new
// variable's index.
func (l *List) Add(name, abbrev string, cardinality int, dependent bool) (int, error) {
	if cardinality < 1 {
		return -1, fmt.Errorf("variable %q: %w (got %d)", name, ErrInvalidCardinality, cardinality)
	}
	if !abbrevRegex.MatchString(abbrev) {
		return -1, fmt.Errorf("variable %q: invalid abbreviation %q", name, abbrev)
	}
	if _, exists := l.byAbbr[abbrev]; exists {
		return -1, fmt.Errorf("variable %q: abbreviation %q already in use", name, abbrev)
	}

	// values 0..card-1 plus the all-ones don't-care code
	width := uint(bits.Len(uint(cardinality)))
	if l.keySize == 0 || l.used+width > KeySegmentBits {
		l.keySize++
		l.used = 0
	}
	shift := KeySegmentBits - l.used - width
	l.used += width

	v := &Variable{
		Name:        name,
		Abbrev:      abbrev,
		Cardinality: cardinality,
		Dependent:   dependent,
		Segment:     l.keySize - 1,
		Shift:       shift,
		Mask:        KeySegment((uint64(1)<<width)-1) << shift,
	}
	l.vars = append(l.vars, v)
	l.byAbbr[abbrev] = len(l.vars) - 1
	return len(l.vars) - 1, nil
}

// Len returns the number of variables in the catalog.
func (l *List) Len() int { return len(l.vars) }

// Get returns the variable at index i, or nil if i is out of range.
func (l *List) Get(i int) *Variable {
	if i < 0 || i >= len(l.vars) {
		return nil
	}
	return l.vars[i]
}

// IndexOf returns the index of the variable with the given abbreviation.
func (l *List) IndexOf(abbrev string) (int, bool) {
	i, ok := l.byAbbr[abbrev]
	return i, ok
}

// KeySize returns the number of segments in a key for this catalog.
func (l *List) KeySize() int { return l.keySize }

// IsDirected reports whether any variable is a dependent variable.
func (l *List) IsDirected() bool {
	for _, v := range l.vars {
		if v.Dependent {
			return true
		}
	}
	return false
}

// Cardinalities returns the cardinalities in catalog order.
func (l *List) Cardinalities() []int {
	cards := make([]int, len(l.vars))
	for i, v := range l.vars {
		cards[i] = v.Cardinality
	}
	return cards
}

// DegreesOfFreedom returns the degrees of freedom of the saturated
// distribution over the catalog: the state-space size minus one.
func (l *List) DegreesOfFreedom() float64 {
	df := 1.0
	for _, v := range l.vars {
		df *= float64(v.Cardinality)
	}
	return df - 1
}
