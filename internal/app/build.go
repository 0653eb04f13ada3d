package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/ramodel/internal/config"
	"github.com/specialistvlad/ramodel/internal/ctxlog"
	"github.com/specialistvlad/ramodel/internal/model"
	"github.com/specialistvlad/ramodel/internal/notation"
	"github.com/specialistvlad/ramodel/internal/relation"
	"github.com/specialistvlad/ramodel/internal/relstore"
	"github.com/specialistvlad/ramodel/internal/variable"
)

// workspace holds everything built from one study: the catalog, the shared
// relation instances and the declared relations by name.
type workspace struct {
	vars      *variable.List
	byName    map[string]int
	relations *relstore.Store
	declared  map[string]*relation.Relation
}

func buildWorkspace(ctx context.Context, study *config.Study) (*workspace, error) {
	logger := ctxlog.FromContext(ctx)

	ws := &workspace{
		vars:      variable.NewList(),
		byName:    make(map[string]int, len(study.Variables)),
		relations: relstore.New(),
		declared:  make(map[string]*relation.Relation, len(study.Relations)),
	}
	for _, v := range study.Variables {
		idx, err := ws.vars.Add(v.Name, v.Abbrev, v.Cardinality, v.Dependent)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		ws.byName[v.Name] = idx
	}
	logger.Debug("Variable catalog built.", "count", ws.vars.Len(), "directed", ws.vars.IsDirected())

	for _, r := range study.Relations {
		rel, err := ws.declaredRelation(r)
		if err != nil {
			return nil, fmt.Errorf("relation %q: %w", r.Name, err)
		}
		ws.declared[r.Name] = ws.relations.Intern(rel)
	}
	logger.Debug("Declared relations built.", "count", len(ws.declared))
	return ws, nil
}

// declaredRelation builds a state-based relation, reordering each state's
// columns into ascending variable order.
func (ws *workspace) declaredRelation(r *config.Relation) (*relation.Relation, error) {
	indices := make([]int, len(r.Variables))
	seen := make(map[int]struct{}, len(r.Variables))
	for i, name := range r.Variables {
		idx, ok := ws.byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown variable %q", name)
		}
		if _, dup := seen[idx]; dup {
			return nil, fmt.Errorf("variable %q listed more than once", name)
		}
		seen[idx] = struct{}{}
		indices[i] = idx
	}

	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return indices[a] - indices[b] })

	states := make([][]int, len(r.States))
	for n, state := range r.States {
		if len(state) != len(indices) {
			return nil, fmt.Errorf("state %d has %d values, expected %d", n, len(state), len(indices))
		}
		sorted := make([]int, len(state))
		for pos, from := range order {
			sorted[pos] = state[from]
		}
		states[n] = sorted
	}
	return relation.NewStateBased(ws.vars, indices, states)
}

// buildModel assembles a model from its notation or relation references.
// Relations are shared through the workspace store.
func (ws *workspace) buildModel(cm *config.Model, cache model.Cache) (*model.Model, error) {
	var rels []*relation.Relation
	if cm.Structure != "" {
		sets, err := notation.Parse(cm.Structure, ws.vars)
		if err != nil {
			return nil, err
		}
		for _, set := range sets {
			rel, err := ws.variableRelation(set)
			if err != nil {
				return nil, err
			}
			rels = append(rels, rel)
		}
	} else {
		for _, ref := range cm.Relations {
			if rel, ok := ws.declared[ref]; ok {
				rels = append(rels, rel)
				continue
			}
			sets, err := notation.Parse(ref, ws.vars)
			if err != nil {
				return nil, fmt.Errorf("relation reference %q: %w", ref, err)
			}
			for _, set := range sets {
				rel, err := ws.variableRelation(set)
				if err != nil {
					return nil, err
				}
				rels = append(rels, rel)
			}
		}
	}

	m := model.New(len(rels))
	for _, rel := range rels {
		if err := m.AddRelation(rel, cm.Normalize, cache); err != nil {
			return nil, err
		}
	}
	if missing := m.UncoveredVariables(); len(missing) > 0 {
		abbrevs := make([]string, len(missing))
		for i, idx := range missing {
			abbrevs[i] = ws.vars.Get(idx).Abbrev
		}
		return nil, fmt.Errorf("model leaves variables %s out of every relation", strings.Join(abbrevs, ", "))
	}
	return m, nil
}

func (ws *workspace) variableRelation(indices []int) (*relation.Relation, error) {
	rel, err := relation.New(ws.vars, indices)
	if err != nil {
		return nil, err
	}
	return ws.relations.Intern(rel), nil
}
