package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStudy() *Study {
	return &Study{
		Variables: []*Variable{
			{Name: "age", Abbrev: "A", Cardinality: 3},
			{Name: "sex", Abbrev: "S", Cardinality: 2},
		},
		Relations: []*Relation{{Name: "pin", Variables: []string{"A"}, States: [][]int{{0}}}},
		Models: []*Model{
			{Name: "indep", Structure: "IVI", Normalize: true},
			{Name: "custom", Relations: []string{"AS", "pin"}, Normalize: true},
		},
		Comparisons: []*Comparison{{Name: "c", Left: "indep", Right: "custom"}},
	}
}

func TestStudy_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(s *Study)
		wantErr string
	}{
		{name: "valid", mutate: func(s *Study) {}},
		{name: "no variables", mutate: func(s *Study) { s.Variables = nil }, wantErr: "no variables"},
		{name: "duplicate variable", mutate: func(s *Study) { s.Variables = append(s.Variables, s.Variables[0]) }, wantErr: "variable \"age\""},
		{name: "duplicate relation", mutate: func(s *Study) { s.Relations = append(s.Relations, s.Relations[0]) }, wantErr: "relation \"pin\""},
		{name: "duplicate model", mutate: func(s *Study) { s.Models = append(s.Models, s.Models[0]) }, wantErr: "model \"indep\""},
		{name: "empty model", mutate: func(s *Study) { s.Models[0].Structure = "" }, wantErr: "needs a structure"},
		{name: "both forms", mutate: func(s *Study) { s.Models[1].Structure = "AS" }, wantErr: "both structure and relations"},
		{name: "unknown comparison target", mutate: func(s *Study) { s.Comparisons[0].Right = "nope" }, wantErr: "unknown model \"nope\""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := validStudy()
			tc.mutate(s)
			err := s.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
