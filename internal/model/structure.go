package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/ramodel/internal/statespace"
	"github.com/specialistvlad/ramodel/internal/variable"
)

// StructureMatrix is the constraint-by-state 0/1 matrix of a model. Row r is
// set at column k when enumerated state k satisfies constraint r. The last
// row is the default constraint, satisfied by every state.
type StructureMatrix struct {
	Rows             [][]uint8
	StateSpaceSize   int
	TotalConstraints int
}

// StructureMatrix returns the model's structure matrix, building it on first
// use after a mutation.
func (m *Model) StructureMatrix() (*StructureMatrix, error) {
	if err := m.completeStateBased(); err != nil {
		return nil, err
	}
	return m.structure, nil
}

// completeStateBased builds the structure matrix if it is absent. All
// relations of a model share the first relation's variable catalog.
func (m *Model) completeStateBased() error {
	if len(m.relations) == 0 {
		return &InvariantError{Op: "build structure matrix", Err: ErrNoRelations}
	}
	if m.structure != nil {
		return nil
	}

	vars := m.relations[0].Variables()
	states, err := statespace.Enumerate(vars.Cardinalities())
	if err != nil {
		return &InvariantError{Op: "enumerate state space", Err: err}
	}
	sm, err := m.buildStructureMatrix(vars, states)
	if err != nil {
		return err
	}
	m.structure = sm
	return nil
}

func (m *Model) buildStructureMatrix(vars *variable.List, states [][]int) (*StructureMatrix, error) {
	total := 0
	for _, r := range m.relations {
		sc := r.StateConstraints()
		switch {
		case sc == nil:
			return nil, &InvariantError{Op: "build structure matrix", Relation: r.PrintName(false), Err: ErrMissingConstraints}
		case sc.ConstraintCount() <= 0:
			return nil, &InvariantError{Op: "build structure matrix", Relation: r.PrintName(false), Err: ErrNoConstraints}
		}
		total += sc.ConstraintCount()
	}

	sm := &StructureMatrix{
		Rows:             make([][]uint8, total+1),
		StateSpaceSize:   len(states),
		TotalConstraints: total + 1,
	}
	backing := make([]uint8, (total+1)*len(states))
	for i := range sm.Rows {
		sm.Rows[i] = backing[i*len(states) : (i+1)*len(states) : (i+1)*len(states)]
	}
	for k := range sm.Rows[total] {
		sm.Rows[total][k] = 1
	}

	row := 0
	for _, r := range m.relations {
		sc := r.StateConstraints()
		for j := 0; j < sc.ConstraintCount(); j++ {
			key := sc.Constraint(j)
			if key == nil {
				return nil, &InvariantError{Op: "build structure matrix", Relation: r.PrintName(false), Err: ErrMissingConstraints}
			}
			for _, k := range matchingStates(key, vars, states) {
				sm.Rows[row][k] = 1
			}
			row++
		}
	}
	return sm, nil
}

// matchingStates returns the indices of the enumerated states that agree with
// key on every variable the key does not leave as don't-care.
func matchingStates(key variable.Key, vars *variable.List, states [][]int) []int {
	values := make([]int, vars.Len())
	for i := range values {
		values[i] = vars.Value(key, i)
	}

	var matches []int
	for k, state := range states {
		match := true
		for i, want := range values {
			if want != variable.DontCare && state[i] != want {
				match = false
				break
			}
		}
		if match {
			matches = append(matches, k)
		}
	}
	return matches
}

// PrintStructureMatrix writes the matrix as comma-terminated rows.
func (m *Model) PrintStructureMatrix(w io.Writer) error {
	sm, err := m.StructureMatrix()
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, row := range sm.Rows {
		for _, v := range row {
			fmt.Fprintf(&sb, "%d,", v)
		}
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())
	return err
}
