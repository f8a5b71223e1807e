package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/colourpoa/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// graphView is the part of core.Graph the sort reads.
type graphView interface {
	NodeCount() int
	Successors(id int) ([]int, error)
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph graphView   // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	state []int       // visitation state per node ID
	order []int       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all nodes in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// If successor lookup fails, returns an error wrapping ErrNeighborFetch.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort[W any](g *core.Graph[W], options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state; all nodes start White
	n := g.NodeCount()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// 4. Drive DFS from every unvisited node in ID order
	for id := 0; id < n; id++ {
		if sorter.state[id] == White {
			if err := sorter.visit(id); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 5. Retrieve successors in ascending order
	next, err := t.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	// 6. Recurse into each successor; nodes appended after the snapshot are ignored
	for _, to := range next {
		if to >= len(t.state) {
			continue
		}
		if err = t.visit(to); err != nil {
			return err
		}
	}

	// 7. Mark as fully explored (Black) and record in post-order
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
