// This file contains the logic for translating HCL schema structs into the
// format-agnostic study defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/ramodel/internal/config"
	"github.com/specialistvlad/ramodel/internal/ctxlog"
	"github.com/specialistvlad/ramodel/internal/schema"
	"github.com/specialistvlad/ramodel/internal/variable"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// wildcard is the state value that leaves a variable unconstrained.
const wildcard = "*"

func translateVariable(v *schema.Variable) *config.Variable {
	return &config.Variable{
		Name:        v.Name,
		Abbrev:      v.Abbrev,
		Cardinality: v.Cardinality,
		Dependent:   v.Dependent != nil && *v.Dependent,
	}
}

// translateModel converts a model block; normalization defaults to on.
func translateModel(m *schema.Model) *config.Model {
	out := &config.Model{
		Name:      m.Name,
		Relations: m.Relations,
		Normalize: m.Normalize == nil || *m.Normalize,
	}
	if m.Structure != nil {
		out.Structure = *m.Structure
	}
	return out
}

func translateRelation(ctx context.Context, r *schema.Relation) (*config.Relation, error) {
	states, err := decodeStates(ctx, r.States, len(r.Variables))
	if err != nil {
		return nil, fmt.Errorf("relation %q: %w", r.Name, err)
	}
	return &config.Relation{
		Name:      r.Name,
		Variables: r.Variables,
		States:    states,
	}, nil
}

// decodeStates evaluates a list of state tuples. Each element is either a
// number or the "*" wildcard.
func decodeStates(ctx context.Context, expr hcl.Expression, width int) ([][]int, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return nil, fmt.Errorf("states must be a known, non-null list")
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("states must be a list of tuples, got %s", val.Type().FriendlyName())
	}

	var states [][]int
	for it := val.ElementIterator(); it.Next(); {
		_, row := it.Element()
		if !row.CanIterateElements() {
			return nil, fmt.Errorf("state %d must be a tuple, got %s", len(states), row.Type().FriendlyName())
		}
		if n := row.LengthInt(); n != width {
			return nil, fmt.Errorf("state %d has %d values, expected %d", len(states), n, width)
		}

		state := make([]int, 0, width)
		for cell := row.ElementIterator(); cell.Next(); {
			_, v := cell.Element()
			value, err := decodeStateValue(v)
			if err != nil {
				return nil, fmt.Errorf("state %d: %w", len(states), err)
			}
			state = append(state, value)
		}
		states = append(states, state)
	}
	logger.Debug("Decoded relation states.", "count", len(states))
	return states, nil
}

func decodeStateValue(v cty.Value) (int, error) {
	if v.IsNull() {
		return 0, fmt.Errorf("state value cannot be null")
	}
	if v.Type() == cty.String && v.AsString() == wildcard {
		return variable.DontCare, nil
	}
	num, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to a state value: %w", v.Type().FriendlyName(), err)
	}
	var out int
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return 0, fmt.Errorf("invalid state value: %w", err)
	}
	if out < 0 {
		return 0, fmt.Errorf("state value %d is negative", out)
	}
	return out, nil
}
