package resolver

import (
	"maps"
	"slices"
)

// ResolveAliases follows alias chains down to literal values.
//
// literals maps tokens to their own raw values. A token is an alias when
// it references exactly one distinct token, as `var(--a)` or
// `var(--a, red)` do; it resolves to whatever its referent resolves to.
// Tokens combining several references, and chains ending in an undeclared
// token, stay unresolved and are absent from the result.
func ResolveAliases(graph *DependencyGraph, literals map[string]string) (map[string]string, error) {
	sortedNames, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	resolved := maps.Clone(literals)
	if resolved == nil {
		resolved = make(map[string]string)
	}

	// Dependencies come first, so a referent is resolved before its aliases
	for _, name := range sortedNames {
		if _, ok := literals[name]; ok {
			continue
		}
		deps := graph.GetDependencies(name)
		slices.Sort(deps)
		deps = slices.Compact(deps)
		if len(deps) != 1 {
			continue
		}
		if value, ok := resolved[deps[0]]; ok {
			resolved[name] = value
		}
	}

	return resolved, nil
}
