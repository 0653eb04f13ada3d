// Package schema holds the HCL decoding targets for study files.
package schema

import "github.com/hashicorp/hcl/v2"

// Variable represents a `variable` block declaring one categorical variable.
type Variable struct {
	Name        string `hcl:"name,label"`
	Abbrev      string `hcl:"abbrev"`
	Cardinality int    `hcl:"cardinality"`
	Dependent   *bool  `hcl:"dependent,optional"`
}

// Relation represents a `relation` block declaring a state-based relation.
// States is kept as a raw expression because its elements mix numbers with
// the "*" wildcard.
type Relation struct {
	Name      string         `hcl:"name,label"`
	Variables []string       `hcl:"variables"`
	States    hcl.Expression `hcl:"states"`
}

// Model represents a `model` block.
type Model struct {
	Name      string   `hcl:"name,label"`
	Structure *string  `hcl:"structure,optional"`
	Relations []string `hcl:"relations,optional"`
	Normalize *bool    `hcl:"normalize,optional"`
}

// Compare represents a `compare` block.
type Compare struct {
	Name  string `hcl:"name,label"`
	Left  string `hcl:"left"`
	Right string `hcl:"right"`
}

// StudyFile represents the top-level structure of a study file.
type StudyFile struct {
	Variables []*Variable `hcl:"variable,block"`
	Relations []*Relation `hcl:"relation,block"`
	Models    []*Model    `hcl:"model,block"`
	Compares  []*Compare  `hcl:"compare,block"`
}
