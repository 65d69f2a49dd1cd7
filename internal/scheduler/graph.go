package scheduler

import "github.com/gbtux/teammanager/internal/domain"

// Graph is an adjacency view over a dependency list. Edge order follows the
// input order, which keeps every traversal deterministic.
type Graph struct {
	outgoing map[string][]domain.Dependency
	incoming map[string][]domain.Dependency
	nodes    []string
}

// NewGraph indexes dependencies by source and by target.
func NewGraph(deps []domain.Dependency) *Graph {
	g := &Graph{
		outgoing: make(map[string][]domain.Dependency),
		incoming: make(map[string][]domain.Dependency),
	}
	seen := make(map[string]bool)
	for _, d := range deps {
		g.outgoing[d.SourceID] = append(g.outgoing[d.SourceID], d)
		g.incoming[d.TargetID] = append(g.incoming[d.TargetID], d)
		for _, id := range []string{d.SourceID, d.TargetID} {
			if !seen[id] {
				seen[id] = true
				g.nodes = append(g.nodes, id)
			}
		}
	}
	return g
}

// Successors returns the dependencies leaving id.
func (g *Graph) Successors(id string) []domain.Dependency {
	return g.outgoing[id]
}

// Predecessors returns the dependencies entering id.
func (g *Graph) Predecessors(id string) []domain.Dependency {
	return g.incoming[id]
}

const (
	white = iota
	grey
	black
)

// DetectCycle returns a *CycleError for the first cycle found anywhere in
// the graph, or nil.
func (g *Graph) DetectCycle() error {
	color := make(map[string]int, len(g.nodes))
	for _, id := range g.nodes {
		if color[id] == white {
			if err := g.visit(id, color, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// DetectCycleFrom only inspects the part of the graph reachable from id.
func (g *Graph) DetectCycleFrom(id string) error {
	return g.visit(id, make(map[string]int), nil)
}

func (g *Graph) visit(id string, color map[string]int, path []string) error {
	color[id] = grey
	path = append(path, id)
	for _, d := range g.outgoing[id] {
		switch color[d.TargetID] {
		case grey:
			return &CycleError{Path: cyclePath(path, d.TargetID)}
		case white:
			if err := g.visit(d.TargetID, color, path); err != nil {
				return err
			}
		}
	}
	color[id] = black
	return nil
}

// cyclePath trims the DFS path to the loop closing at target.
func cyclePath(path []string, target string) []string {
	for i, id := range path {
		if id == target {
			loop := append([]string{}, path[i:]...)
			return append(loop, target)
		}
	}
	return append(append([]string{}, path...), target)
}

// TopologicalOrder orders ids so every feature comes after all of its
// predecessors. Traversal starts from ids without incoming dependencies, in
// the given order, then picks up whatever is left. On a cyclic graph each id
// still appears exactly once.
func (g *Graph) TopologicalOrder(ids []string) []string {
	visited := make(map[string]bool, len(ids))
	var post []string

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, d := range g.outgoing[id] {
			visit(d.TargetID)
		}
		post = append(post, id)
	}

	for _, id := range ids {
		if len(g.incoming[id]) == 0 {
			visit(id)
		}
	}
	for _, id := range ids {
		visit(id)
	}

	order := make([]string, len(post))
	for i, id := range post {
		order[len(post)-1-i] = id
	}
	return order
}
