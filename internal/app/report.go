package app

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report is the result of evaluating one study.
type Report struct {
	Variables   int                `yaml:"variables"`
	Directed    bool               `yaml:"directed"`
	SaturatedDF float64            `yaml:"saturated_df"`
	Relations   int                `yaml:"shared_relations"`
	Models      []ModelReport      `yaml:"models"`
	Comparisons []ComparisonReport `yaml:"comparisons,omitempty"`
}

// ModelReport describes one evaluated model.
type ModelReport struct {
	Name             string  `yaml:"name"`
	ID               int     `yaml:"id"`
	DuplicateOf      string  `yaml:"duplicate_of,omitempty"`
	Notation         string  `yaml:"notation"`
	InverseNotation  string  `yaml:"inverse_notation"`
	RelationCount    int     `yaml:"relation_count"`
	StateBased       bool    `yaml:"state_based"`
	MatrixRows       int     `yaml:"matrix_rows"`
	MatrixColumns    int     `yaml:"matrix_columns"`
	DegreesOfFreedom float64 `yaml:"df"`
}

// ComparisonReport holds the containment and equivalence results for a pair
// of models.
type ComparisonReport struct {
	Name          string `yaml:"name"`
	Left          string `yaml:"left"`
	Right         string `yaml:"right"`
	LeftContains  bool   `yaml:"left_contains_right"`
	RightContains bool   `yaml:"right_contains_left"`
	Equivalent    bool   `yaml:"equivalent"`
}

func writeReport(w io.Writer, format string, r *Report) error {
	if format == OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}
	return writeTextReport(w, r)
}

func writeTextReport(w io.Writer, r *Report) error {
	kind := "undirected"
	if r.Directed {
		kind = "directed"
	}
	if _, err := fmt.Fprintf(w, "Study: %d variables (%s), %d shared relations, saturated df %g\n", r.Variables, kind, r.Relations, r.SaturatedDF); err != nil {
		return err
	}

	for _, m := range r.Models {
		fmt.Fprintf(w, "\nModel %s (#%d)\n", m.Name, m.ID)
		if m.DuplicateOf != "" {
			fmt.Fprintf(w, "\tsame structure as: %s\n", m.DuplicateOf)
		}
		fmt.Fprintf(w, "\tnotation: %s\n", m.Notation)
		fmt.Fprintf(w, "\tinverse:  %s\n", m.InverseNotation)
		fmt.Fprintf(w, "\trelations: %d, state-based: %t\n", m.RelationCount, m.StateBased)
		fmt.Fprintf(w, "\tstructure matrix: %dx%d\n", m.MatrixRows, m.MatrixColumns)
		fmt.Fprintf(w, "\tdf: %g\n", m.DegreesOfFreedom)
	}

	for _, c := range r.Comparisons {
		fmt.Fprintf(w, "\nCompare %s: %s vs %s\n", c.Name, c.Left, c.Right)
		fmt.Fprintf(w, "\t%s contains %s: %t\n", c.Left, c.Right, c.LeftContains)
		fmt.Fprintf(w, "\t%s contains %s: %t\n", c.Right, c.Left, c.RightContains)
		if _, err := fmt.Fprintf(w, "\tequivalent: %t\n", c.Equivalent); err != nil {
			return err
		}
	}
	return nil
}
