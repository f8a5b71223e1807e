package dfs

import "errors"

// Visitation states of a node during the traversal.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are done.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a back-edge was encountered.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve successors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)
