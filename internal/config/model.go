package config

import (
	"errors"
	"fmt"
)

// Study is the unified, format-agnostic representation of everything a run
// evaluates.
type Study struct {
	Variables   []*Variable
	Relations   []*Relation
	Models      []*Model
	Comparisons []*Comparison
}

// Variable declares one categorical variable.
type Variable struct {
	Name        string
	Abbrev      string
	Cardinality int
	Dependent   bool
}

// Relation declares a named state-based relation. Each state holds one value
// per entry of Variables; variable.DontCare marks a wildcard.
type Relation struct {
	Name      string
	Variables []string
	States    [][]int
}

// Model declares a model either by notation (Structure) or by a list of
// relation references, each a Relation name or a notation component.
type Model struct {
	Name      string
	Structure string
	Relations []string
	Normalize bool
}

// Comparison asks for containment and equivalence between two models.
type Comparison struct {
	Name  string
	Left  string
	Right string
}

// Validate checks cross references that do not depend on the variable
// catalog: unique names and comparison targets.
func (s *Study) Validate() error {
	if len(s.Variables) == 0 {
		return errors.New("study declares no variables")
	}

	varNames := make(map[string]struct{}, len(s.Variables))
	for _, v := range s.Variables {
		if _, dup := varNames[v.Name]; dup {
			return fmt.Errorf("variable %q declared more than once", v.Name)
		}
		varNames[v.Name] = struct{}{}
	}

	relNames := make(map[string]struct{}, len(s.Relations))
	for _, r := range s.Relations {
		if _, dup := relNames[r.Name]; dup {
			return fmt.Errorf("relation %q declared more than once", r.Name)
		}
		relNames[r.Name] = struct{}{}
	}

	models := make(map[string]struct{}, len(s.Models))
	for _, m := range s.Models {
		if _, dup := models[m.Name]; dup {
			return fmt.Errorf("model %q declared more than once", m.Name)
		}
		if m.Structure == "" && len(m.Relations) == 0 {
			return fmt.Errorf("model %q needs a structure or a relations list", m.Name)
		}
		if m.Structure != "" && len(m.Relations) > 0 {
			return fmt.Errorf("model %q sets both structure and relations", m.Name)
		}
		models[m.Name] = struct{}{}
	}

	for _, c := range s.Comparisons {
		for _, ref := range []string{c.Left, c.Right} {
			if _, ok := models[ref]; !ok {
				return fmt.Errorf("comparison %q references unknown model %q", c.Name, ref)
			}
		}
	}
	return nil
}
