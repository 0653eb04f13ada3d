package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/specialistvlad/ramodel/internal/variable"
)

const (
	independentToken    = "IV"
	singleVariableToken = "IVI"
)

var (
	componentRegex = regexp.MustCompile(`^(?:[A-Z][a-z]*)+$`)
	abbrevRegex    = regexp.MustCompile(`[A-Z][a-z]*`)
)

// Parse converts a model name into one variable index set per relation.
func Parse(name string, vars *variable.List) ([][]int, error) {
	if name == "" {
		return nil, fmt.Errorf("model notation cannot be empty")
	}

	var (
		sets      [][]int
		expandIVI bool
		mentioned = make(map[int]struct{})
	)
	for _, component := range strings.Split(name, ":") {
		switch component {
		case "":
			return nil, fmt.Errorf("model notation %q contains an empty component", name)
		case independentToken:
			if !vars.IsDirected() {
				return nil, fmt.Errorf("%s is only valid for directed systems", independentToken)
			}
			sets = append(sets, independentIndices(vars))
			continue
		case singleVariableToken:
			if vars.IsDirected() {
				return nil, fmt.Errorf("%s is only valid for undirected systems", singleVariableToken)
			}
			expandIVI = true
			continue
		}

		indices, err := parseComponent(component, vars)
		if err != nil {
			return nil, err
		}
		for _, i := range indices {
			mentioned[i] = struct{}{}
		}
		sets = append(sets, indices)
	}

	if expandIVI {
		for i := 0; i < vars.Len(); i++ {
			if _, ok := mentioned[i]; !ok {
				sets = append(sets, []int{i})
			}
		}
	}
	return sets, nil
}

func parseComponent(component string, vars *variable.List) ([]int, error) {
	if !componentRegex.MatchString(component) {
		return nil, fmt.Errorf("invalid relation component %q", component)
	}
	var indices []int
	for _, abbrev := range abbrevRegex.FindAllString(component, -1) {
		i, ok := vars.IndexOf(abbrev)
		if !ok {
			return nil, fmt.Errorf("relation %q: unknown variable %q", component, abbrev)
		}
		indices = append(indices, i)
	}
	return indices, nil
}

func independentIndices(vars *variable.List) []int {
	var indices []int
	for i := 0; i < vars.Len(); i++ {
		if !vars.Get(i).Dependent {
			indices = append(indices, i)
		}
	}
	return indices
}
