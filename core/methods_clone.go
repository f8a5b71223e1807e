// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the topology. Weights are copied by value,
// so weight types holding pointers end up shared with the source.
// Complexity: O(V + E).
func (g *Graph[W]) Clone() *Graph[W] {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph[W](WithNodeCapacity(len(g.nodes)))
	clone.nodes = append(clone.nodes, g.nodes...)
	clone.out = make([]map[int]*Edge[W], len(g.out))
	clone.in = make([]map[int]struct{}, len(g.in))
	for from, bucket := range g.out {
		if len(bucket) == 0 {
			continue
		}
		clone.out[from] = make(map[int]*Edge[W], len(bucket))
		for to, e := range bucket {
			ne := *e
			clone.out[from][to] = &ne
		}
	}
	for to, bucket := range g.in {
		if len(bucket) == 0 {
			continue
		}
		clone.in[to] = make(map[int]struct{}, len(bucket))
		for from := range bucket {
			clone.in[to][from] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
