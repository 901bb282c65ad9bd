package resolver

import (
	"slices"

	"bennypowers.dev/csstokens/internal/parser/css"
)

// DependencyGraph represents a directed graph of var() references between
// custom properties
type DependencyGraph struct {
	// tokens with outgoing references, in first-seen order
	nodes []string
	// adjacency list: token name -> tokens it references
	dependencies map[string][]string
	// reverse lookup: token name -> tokens that reference it
	dependents map[string][]string
}

// BuildDependencyGraph builds a dependency graph from extracted references.
// A token declared more than once keeps its first position and the
// references of its last declaration.
func BuildDependencyGraph(refs []css.TokenReference) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
	}

	for _, ref := range refs {
		if _, seen := graph.dependencies[ref.TokenName]; !seen {
			graph.nodes = append(graph.nodes, ref.TokenName)
		}
		graph.dependencies[ref.TokenName] = slices.Clone(ref.ReferencedTokens)
	}

	for _, node := range graph.nodes {
		for _, dep := range graph.dependencies[node] {
			if !slices.Contains(graph.dependents[dep], node) {
				graph.dependents[dep] = append(graph.dependents[dep], node)
			}
		}
	}

	return graph
}

// Nodes returns the tokens that reference other tokens, in first-seen order
func (g *DependencyGraph) Nodes() []string {
	return slices.Clone(g.nodes)
}

// Len returns the number of tokens with outgoing references
func (g *DependencyGraph) Len() int {
	return len(g.nodes)
}

// GetDependencies returns the list of tokens that the given token references
func (g *DependencyGraph) GetDependencies(tokenName string) []string {
	if deps, ok := g.dependencies[tokenName]; ok {
		return slices.Clone(deps)
	}
	return []string{}
}

// GetDependents returns the tokens whose values reference the given token
func (g *DependencyGraph) GetDependents(tokenName string) []string {
	if deps, ok := g.dependents[tokenName]; ok {
		return slices.Clone(deps)
	}
	return []string{}
}

// HasCycle returns true if the graph contains a circular reference
func (g *DependencyGraph) HasCycle() bool {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.nodes {
		if g.hasCycleDFS(node, visited, recStack) {
			return true
		}
	}

	return false
}

// hasCycleDFS performs depth-first search to detect cycles
func (g *DependencyGraph) hasCycleDFS(node string, visited, recStack map[string]bool) bool {
	if recStack[node] {
		return true
	}
	if visited[node] {
		return false
	}

	visited[node] = true
	recStack[node] = true

	for _, dep := range g.dependencies[node] {
		if g.hasCycleDFS(dep, visited, recStack) {
			return true
		}
	}

	recStack[node] = false
	return false
}

// FindCycles returns the cycles met by a depth-first traversal from each
// unvisited node, in node order. Each cycle starts and ends with the same
// token: [--a --b --a].
//
// The visited set is shared across traversal roots, so a node explored
// from one root is not explored again from another. A cycle reachable only
// through an already explored node is not reported twice, and the result
// is not a full enumeration of every elementary cycle.
func (g *DependencyGraph) FindCycles() [][]string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	cycles := [][]string{}

	for _, node := range g.nodes {
		if !visited[node] {
			g.findCyclesDFS(node, nil, visited, recStack, &cycles)
		}
	}

	return cycles
}

// findCyclesDFS records a cycle each time it reaches a node on the current
// path. path holds the ancestors of node.
func (g *DependencyGraph) findCyclesDFS(node string, path []string, visited, recStack map[string]bool, cycles *[][]string) {
	if recStack[node] {
		if start := slices.Index(path, node); start >= 0 {
			cycle := slices.Concat(path[start:], []string{node})
			*cycles = append(*cycles, cycle)
		}
		return
	}
	if visited[node] {
		return
	}

	visited[node] = true
	recStack[node] = true

	path = append(slices.Clip(path), node)
	for _, dep := range g.dependencies[node] {
		g.findCyclesDFS(dep, path, visited, recStack, cycles)
	}

	recStack[node] = false
}

// FindCycle returns the first cycle path, or nil if there is none
func (g *DependencyGraph) FindCycle() []string {
	if cycles := g.FindCycles(); len(cycles) > 0 {
		return cycles[0]
	}
	return nil
}

// TopologicalSort returns tokens in dependency order (dependencies first).
// Referenced tokens that reference nothing themselves are included.
// Returns an error wrapping ErrCircularReference if the graph has a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, NewCircularReferenceError("", cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.nodes {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

// topologicalSortDFS performs DFS for topological sort
func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
