// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors, Sources, Sinks).
//
// Determinism:
//   - Every method returns node IDs sorted ascending.
//
// Concurrency:
//   - muNode read lock for validation, then muEdgeAdj read lock (same order as mutators).
package core

import "sort"

// Successors returns the IDs of nodes reachable by one outgoing edge of id.
// Complexity: O(d log d).
func (g *Graph[W]) Successors(id int) ([]int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if !g.validID(id) {
		return nil, ErrNodeNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, 0, len(g.out[id]))
	for to := range g.out[id] {
		out = append(out, to)
	}
	sort.Ints(out)

	return out, nil
}

// Predecessors returns the IDs of nodes with an edge into id.
// Complexity: O(d log d).
func (g *Graph[W]) Predecessors(id int) ([]int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if !g.validID(id) {
		return nil, ErrNodeNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, 0, len(g.in[id]))
	for from := range g.in[id] {
		out = append(out, from)
	}
	sort.Ints(out)

	return out, nil
}

// Sources returns the nodes without incoming edges.
// Complexity: O(V).
func (g *Graph[W]) Sources() []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []int
	for id, bucket := range g.in {
		if len(bucket) == 0 {
			out = append(out, id)
		}
	}

	return out
}

// Sinks returns the nodes without outgoing edges.
// Complexity: O(V).
func (g *Graph[W]) Sinks() []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []int
	for id, bucket := range g.out {
		if len(bucket) == 0 {
			out = append(out, id)
		}
	}

	return out
}
