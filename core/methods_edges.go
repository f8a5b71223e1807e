// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/UpdateEdge/HasEdge/Edge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
//
// Concurrency:
//   - Node validation under muNode read lock, then edge mutation under muEdgeAdj.
//   - Read queries under muEdgeAdj read lock.
package core

import "sort"

// AddEdge creates the edge from→to carrying w.
//
// Steps:
//  1. Reject self-loops (ErrLoopNotAllowed).
//  2. Validate both endpoints under muNode (ErrNodeNotFound).
//  3. Under muEdgeAdj, reject a duplicate (ErrEdgeExists) and link both directions.
//
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(from, to int, w W) error {
	if from == to {
		return ErrLoopNotAllowed
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if !g.validID(from) || !g.validID(to) {
		return ErrNodeNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.out[from][to]; ok {
		return ErrEdgeExists
	}
	if g.out[from] == nil {
		g.out[from] = make(map[int]*Edge[W], 1)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[int]struct{}, 1)
	}
	g.out[from][to] = &Edge[W]{From: from, To: to, Weight: w}
	g.in[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// UpdateEdge replaces the weight of from→to with fn(old weight).
// fn runs under the edge write lock and must not call back into g.
// Complexity: O(1) plus the cost of fn.
func (g *Graph[W]) UpdateEdge(from, to int, fn func(W) W) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edgeLocked(from, to)
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = fn(e.Weight)

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph[W]) HasEdge(from, to int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.edgeLocked(from, to)

	return ok
}

// Edge returns a copy of the edge from→to, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph[W]) Edge(from, to int) (Edge[W], error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edgeLocked(from, to)
	if !ok {
		return Edge[W]{}, ErrEdgeNotFound
	}

	return *e, nil
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph[W]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph[W]) Edges() []Edge[W] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge[W], 0, g.edgeCount)
	for _, bucket := range g.out {
		for _, e := range bucket {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// edgeLocked looks up from→to. Caller holds muEdgeAdj.
func (g *Graph[W]) edgeLocked(from, to int) (*Edge[W], bool) {
	if from < 0 || from >= len(g.out) {
		return nil, false
	}
	e, ok := g.out[from][to]

	return e, ok
}

// validID reports whether id is in range. Caller holds muNode.
func (g *Graph[W]) validID(id int) bool {
	return id >= 0 && id < len(g.nodes)
}
