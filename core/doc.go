// Package core provides the thread-safe, in-memory graph a partial-order
// alignment is built on.
//
// The Graph G = (V,E) is narrow:
//
//   - Directed edges only; at most one edge per ordered node pair.
//   - No self-loops (ErrLoopNotAllowed); an alignment graph is a DAG.
//   - Dense node IDs (0,1,2,…) assigned by AddNode and never reused.
//   - Each node stores one symbol (Base); each edge stores a Weight of any
//     type W, typically the score accumulated by the sequences that walk it.
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency (muEdgeAdj).
//
// Deterministic iteration: Nodes() is in ID order, Edges() is sorted by
// (From, To), Successors/Predecessors/Sources/Sinks are sorted ascending.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(base byte) int                         // O(1)
//	Node(id int) (Node, error)                     // O(1)
//	HasNode(id int) bool, NodeCount() int          // O(1)
//	Nodes() []Node                                 // O(V)
//
//	// Edge lifecycle
//	AddEdge(from, to int, w W) error               // O(1)
//	UpdateEdge(from, to int, fn func(W) W) error   // O(1)
//	Edge(from, to int) (Edge[W], error)            // O(1)
//	HasEdge(from, to int) bool, EdgeCount() int    // O(1)
//	Edges() []Edge[W]                              // O(E log E)
//
//	// Adjacency
//	Successors(id), Predecessors(id)               // O(d log d)
//	Sources(), Sinks()                             // O(V)
//
//	// Copy
//	Clone() *Graph[W]                              // O(V+E)
//
// Errors are sentinels; test them with errors.Is.
package core
