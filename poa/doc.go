// Package poa builds a partial-order alignment graph whose edges carry a
// score from a pluggable ordered algebra.
//
// What:
//
//   - New seeds the graph with a first sequence as a linear chain.
//   - Global aligns a query against the whole graph (Needleman–Wunsch over
//     a DAG) and returns the best path as a list of operations.
//   - AddAlignment folds a sequence into the graph along such a path,
//     accumulating a per-sequence seed on every edge it walks.
//
// Algorithm Outline:
//
//  1. Order nodes topologically (dfs.TopologicalSort); row 0 is a virtual
//     start row.
//  2. cell(start, 0) = Identity; cell(start, j) = Gap^j.
//  3. For each node v and column j, Merge the candidates
//     match  = cell(p, j-1) ⊗ Score(base(v), q[j-1])
//     delete = cell(p, j)   ⊗ Gap
//     insert = cell(v, j-1) ⊗ Gap
//     over every predecessor p (the start row for sources).
//  4. The alignment ends at the sink with the best last-column cell and is
//     recovered by following the stored pointers.
//
// Determinism:
//
//   - Predecessors are scanned in ascending ID and the first best candidate
//     (match, delete, insert) wins a tie. Sinks tie-break on lowest ID.
//
// Complexity:
//
//   - Time O((V+E)·m), Memory O(V·m) for a query of length m.
//
// Concurrency:
//
//   - Global may run concurrently with itself; AddAlignment takes the write
//     lock and serialises against both.
package poa
