// Package relstore is the central registry of relations. Every relation is
// interned once under its canonical name, and models hold the shared
// instance. The store owns relation lifetime; models never do.
package relstore

import (
	"sort"
	"sync"

	"github.com/specialistvlad/ramodel/internal/relation"
)

// Store interns relations by canonical name using a mutex for thread-safe
// concurrent access.
type Store struct {
	mu        sync.RWMutex
	relations map[string]*relation.Relation
}

// New creates a new, empty relation store.
func New() *Store {
	return &Store{relations: make(map[string]*relation.Relation)}
}

// Intern returns the stored relation with the same canonical name as r,
// storing r first if no such relation exists yet.
func (s *Store) Intern(r *relation.Relation) *relation.Relation {
	if r == nil {
		return nil
	}
	key := r.PrintName(false)

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.relations[key]; ok {
		return existing
	}
	s.relations[key] = r
	return r
}

// Get retrieves a relation by canonical name.
func (s *Store) Get(name string) (*relation.Relation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.relations[name]
	return r, ok
}

// Len returns the number of interned relations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.relations)
}

// All returns every interned relation in canonical order.
func (s *Store) All() []*relation.Relation {
	s.mu.RLock()
	all := make([]*relation.Relation, 0, len(s.relations))
	for _, r := range s.relations {
		all = append(all, r)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Compare(all[j]) < 0 })
	return all
}
