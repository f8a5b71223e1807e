// Package dfs orders the nodes of an alignment graph with a depth-first
// topological sort.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of nodes in a directed
//     acyclic graph such that for every edge u→v, u appears before v.
//     Vertex coloring (White, Gray, Black) detects back-edges; a cycle is
//     reported as ErrCycleDetected.
//
// Why:
//   - The partial-order aligner fills one dynamic-programming row per node
//     and needs every predecessor row done first.
//   - Loading a graph from disk must reject anything that is not a DAG.
//
// Determinism:
//
//   - Roots are visited in ascending node ID, successors in ascending node
//     ID; the result is the reverse post-order. The same graph always yields
//     the same order.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) (recursion stack and state slice).
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  cycle discovered
//   - ErrNeighborFetch  successor lookup failed (wraps the core error)
//   - context errors    returned verbatim when WithCancelContext is cancelled
package dfs
