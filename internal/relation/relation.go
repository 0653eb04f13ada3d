package relation

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/specialistvlad/ramodel/internal/statespace"
	"github.com/specialistvlad/ramodel/internal/variable"
)

// ErrNoVariables is returned when a relation is built over an empty variable set.
var ErrNoVariables = errors.New("relation must reference at least one variable")

// Relation is one structural component of a model.
type Relation struct {
	vars       *variable.List
	indices    []int
	stateBased bool

	constraintsOnce sync.Once
	constraints     *StateConstraints

	name        string
	inverseName string
}

// New builds a variable-based relation over the given variable indices.
func New(vars *variable.List, indices []int) (*Relation, error) {
	idx, err := normalizeIndices(vars, indices)
	if err != nil {
		return nil, err
	}
	r := &Relation{vars: vars, indices: idx}
	r.name, r.inverseName = r.buildNames()
	return r, nil
}

// NewStateBased builds a state-based relation. Each state holds one value per
// relation variable, in ascending variable-index order; variable.DontCare
// leaves that variable unconstrained. At least one state is required.
func NewStateBased(vars *variable.List, indices []int, states [][]int) (*Relation, error) {
	idx, err := normalizeIndices(vars, indices)
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, errors.New("state-based relation needs at least one state")
	}

	keys := make([]variable.Key, 0, len(states))
	for n, state := range states {
		if len(state) != len(idx) {
			return nil, fmt.Errorf("state %d has %d values, relation has %d variables", n, len(state), len(idx))
		}
		k := vars.NewKey()
		for pos, value := range state {
			if err := vars.SetValue(k, idx[pos], value); err != nil {
				return nil, fmt.Errorf("state %d: %w", n, err)
			}
		}
		keys = append(keys, k)
	}
	return NewWithConstraints(vars, idx, NewStateConstraints(keys...))
}

// NewWithConstraints builds a state-based relation from a prepared
// constraint set. The set is not validated: an empty or nil set is accepted
// here and rejected later when a structure matrix is built from it.
func NewWithConstraints(vars *variable.List, indices []int, sc *StateConstraints) (*Relation, error) {
	idx, err := normalizeIndices(vars, indices)
	if err != nil {
		return nil, err
	}
	r := &Relation{vars: vars, indices: idx, stateBased: true}
	r.constraintsOnce.Do(func() { r.constraints = sc })
	r.name, r.inverseName = r.buildNames()
	return r, nil
}

func normalizeIndices(vars *variable.List, indices []int) ([]int, error) {
	if vars == nil {
		return nil, errors.New("relation requires a variable list")
	}
	if len(indices) == 0 {
		return nil, ErrNoVariables
	}
	idx := slices.Clone(indices)
	slices.Sort(idx)
	idx = slices.Compact(idx)
	for _, i := range idx {
		if vars.Get(i) == nil {
			return nil, fmt.Errorf("variable index %d out of range", i)
		}
	}
	return idx, nil
}

// Variables returns the catalog the relation is defined over.
func (r *Relation) Variables() *variable.List { return r.vars }

// Indices returns the relation's variable indices in ascending order.
func (r *Relation) Indices() []int { return slices.Clone(r.indices) }

// VariableCount returns the number of variables in the relation.
func (r *Relation) VariableCount() int { return len(r.indices) }

// IsStateBased reports whether the relation is defined by explicit state constraints.
func (r *Relation) IsStateBased() bool { return r.stateBased }

// IsIndependentOnly reports whether, in a directed system, the relation
// contains no dependent variable.
func (r *Relation) IsIndependentOnly() bool {
	if !r.vars.IsDirected() {
		return false
	}
	for _, i := range r.indices {
		if r.vars.Get(i).Dependent {
			return false
		}
	}
	return true
}

// Contains reports whether every variable of other is also in r.
func (r *Relation) Contains(other *Relation) bool {
	if len(other.indices) > len(r.indices) {
		return false
	}
	j := 0
	for _, want := range other.indices {
		for j < len(r.indices) && r.indices[j] < want {
			j++
		}
		if j == len(r.indices) || r.indices[j] != want {
			return false
		}
	}
	return true
}

// Compare is the canonical total order over relations: variable indices
// lexicographically, then fewer variables first, then variable-based before
// state-based, then by constraints.
func (r *Relation) Compare(other *Relation) int {
	if r == other {
		return 0
	}
	if c := slices.Compare(r.indices, other.indices); c != 0 {
		return c
	}
	switch {
	case !r.stateBased && other.stateBased:
		return -1
	case r.stateBased && !other.stateBased:
		return 1
	case !r.stateBased:
		return 0
	}
	c := r.StateConstraints().compare(other.StateConstraints())
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

// StateConstraints returns the relation's constraint set. A variable-based
// relation yields one constraint per joint state of its variables, or nil if
// they cannot be described.
func (r *Relation) StateConstraints() *StateConstraints {
	r.constraintsOnce.Do(func() {
		r.constraints = r.jointStateConstraints()
	})
	return r.constraints
}

// jointStateConstraints builds one constraint per joint state of the
// relation's variables. It returns nil if the catalog cannot describe them.
func (r *Relation) jointStateConstraints() *StateConstraints {
	cards := make([]int, len(r.indices))
	for pos, i := range r.indices {
		v := r.vars.Get(i)
		if v == nil {
			return nil
		}
		cards[pos] = v.Cardinality
	}
	states, err := statespace.Enumerate(cards)
	if err != nil {
		return nil
	}
	keys := make([]variable.Key, len(states))
	for n, state := range states {
		k := r.vars.NewKey()
		for pos, value := range state {
			if err := r.vars.SetValue(k, r.indices[pos], value); err != nil {
				return nil
			}
		}
		keys[n] = k
	}
	return NewStateConstraints(keys...)
}

// PrintName returns the relation's canonical name, or its inverse name: the
// variables not in the relation.
func (r *Relation) PrintName(useInverse bool) string {
	if useInverse {
		return r.inverseName
	}
	return r.name
}

// String implements fmt.Stringer.
func (r *Relation) String() string { return r.name }

func (r *Relation) buildNames() (string, string) {
	if r.stateBased {
		name := r.constraintName()
		return name, name
	}

	var sb strings.Builder
	for _, i := range r.indices {
		sb.WriteString(r.vars.Get(i).Abbrev)
	}

	var inv strings.Builder
	j := 0
	for i := 0; i < r.vars.Len(); i++ {
		if j < len(r.indices) && r.indices[j] == i {
			j++
			continue
		}
		inv.WriteString(r.vars.Get(i).Abbrev)
	}
	if inv.Len() == 0 {
		inv.WriteString("-")
	}
	return sb.String(), inv.String()
}

// constraintName renders each constraint as abbreviation/value pairs, "*" for
// don't-care, with constraints joined by "+".
func (r *Relation) constraintName() string {
	sc := r.constraints
	if sc.ConstraintCount() == 0 {
		var sb strings.Builder
		for _, i := range r.indices {
			sb.WriteString(r.vars.Get(i).Abbrev)
		}
		return sb.String() + "{}"
	}
	tokens := make([]string, sc.ConstraintCount())
	for n := range tokens {
		k := sc.Constraint(n)
		var sb strings.Builder
		for _, i := range r.indices {
			sb.WriteString(r.vars.Get(i).Abbrev)
			if v := r.vars.Value(k, i); v == variable.DontCare {
				sb.WriteByte('*')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
		tokens[n] = sb.String()
	}
	return strings.Join(tokens, "+")
}
