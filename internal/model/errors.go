package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRelations is returned when a structure matrix is requested for a
	// model that has no relations.
	ErrNoRelations = errors.New("model contains no relations")
	// ErrMissingConstraints is returned when a relation exposes no state
	// constraint data at all, or a nil constraint key.
	ErrMissingConstraints = errors.New("relation has no state constraint data")
	// ErrNoConstraints is returned when a relation exposes an empty
	// constraint set.
	ErrNoConstraints = errors.New("relation has zero state constraints")
	// ErrCatalogMismatch is returned when a relation is defined over a
	// different variable catalog than the model's other relations.
	ErrCatalogMismatch = errors.New("relation uses a different variable catalog")
)

// InvariantError reports a configuration or programming error that makes the
// requested derived structure impossible to build. Callers must not continue
// with partial data; the model's structure matrix is left absent.
type InvariantError struct {
	Op       string
	Relation string
	Err      error
}

func (e *InvariantError) Error() string {
	if e.Relation == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: relation %s: %v", e.Op, e.Relation, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }
