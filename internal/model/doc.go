// Package model implements the Model: an ordered, minimal set of shared
// relations together with the structures derived from it.
//
// Derived state (the structure matrix, the canonical names, the attribute
// store and the fit table) is computed lazily and dropped on every successful
// AddRelation, so it is never stale. A Model is not safe for concurrent
// mutation; callers that share one across goroutines must lock externally.
//
// For state-based models, containment and equivalence are decided by
// comparing degrees of freedom: adding a relation that is already implied by
// the model leaves the rank of the structure matrix unchanged. Degrees of
// freedom are memoized on each model and, through a Cache, on the canonical
// instance of a model with the same name.
package model
