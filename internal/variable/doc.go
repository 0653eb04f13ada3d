// Package variable provides the variable catalog shared by every relation and
// model: the ordered list of categorical variables, their cardinalities, and
// the bit-packed key layout used to encode joint states.
//
// Each variable occupies a fixed bit field inside one KeySegment of a Key.
// The field is wide enough to hold every value 0..cardinality-1 plus one extra
// code, all bits set, which means "don't care" (the variable is unconstrained).
package variable
