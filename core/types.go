// Package core defines the graph that backs a partial-order alignment:
// nodes carry one sequence symbol, directed edges carry a weight of any type.
//
// All core APIs use two sync.RWMutex locks (muNode for the node catalog,
// muEdgeAdj for edges and adjacency) taken in that order, so a finished
// graph can be read from many goroutines while a single writer extends it.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound    - referenced node ID does not exist.
//	ErrEdgeNotFound    - no edge between the given nodes.
//	ErrEdgeExists      - an edge between the given nodes is already present.
//	ErrLoopNotAllowed  - from == to; alignment graphs are acyclic.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates a second edge between the same ordered pair.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node is one symbol of the alignment graph.
//
// ID is dense: nodes are numbered 0,1,2,… in insertion order and never removed.
type Node struct {
	// ID is the node index within its Graph.
	ID int

	// Base is the sequence symbol the node stands for.
	Base byte
}

// Edge connects two consecutive symbols of at least one folded sequence.
type Edge[W any] struct {
	// From is the source node ID.
	From int

	// To is the destination node ID.
	To int

	// Weight is the support accumulated on this edge.
	Weight W
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	nodeCap int
}

// WithNodeCapacity preallocates room for n nodes.
// Negative values are ignored.
func WithNodeCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.nodeCap = n
		}
	}
}

// Graph is a directed graph with dense node IDs and at most one edge per
// ordered node pair.
//
// muNode protects nodes; muEdgeAdj protects out, in and edgeCount.
type Graph[W any] struct {
	muNode    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards out, in, edgeCount

	nodes []Node

	// out[from][to] = edge; in[to][from] marks the reverse adjacency.
	out       []map[int]*Edge[W]
	in        []map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) with WithNodeCapacity(n).
func NewGraph[W any](opts ...GraphOption) *Graph[W] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[W]{
		nodes: make([]Node, 0, cfg.nodeCap),
		out:   make([]map[int]*Edge[W], 0, cfg.nodeCap),
		in:    make([]map[int]struct{}, 0, cfg.nodeCap),
	}
}
