// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Node IDs are assigned sequentially; Nodes() returns them in ID order.
//
// Concurrency:
//   - Node catalog protected by muNode.
//   - Adjacency buckets bootstrapped under muEdgeAdj (lock order muNode -> muEdgeAdj).
package core

// AddNode appends a node carrying base and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddNode(base byte) int {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Base: base})

	// Bootstrap adjacency buckets so edge methods can index by ID.
	g.muEdgeAdj.Lock()
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	g.muEdgeAdj.Unlock()

	return id
}

// HasNode reports whether id names an existing node.
// Complexity: O(1).
func (g *Graph[W]) HasNode(id int) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return id >= 0 && id < len(g.nodes)
}

// Node returns the node with the given ID, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph[W]) Node(id int) (Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if id < 0 || id >= len(g.nodes) {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[id], nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph[W]) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// Nodes returns a copy of all nodes in ascending ID order.
// Complexity: O(V).
func (g *Graph[W]) Nodes() []Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}
