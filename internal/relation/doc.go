// Package relation implements the structural components of a model.
//
// A Relation is either variable-based (a subset of the catalog's variables) or
// state-based (an explicit set of constraints over joint states of a subset of
// variables). Relations are immutable once built and are meant to be shared:
// many models hold the same *Relation, and their lifetime is managed by a
// central store rather than by any model.
package relation
