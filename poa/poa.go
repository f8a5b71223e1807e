package poa

import (
	"github.com/katalvlaran/colourpoa/core"
	"github.com/katalvlaran/colourpoa/scoring"
)

// New seeds a graph with seq as a linear chain; every chain edge weighs seed.
// Returns ErrEmptySequence if seq is empty.
func New[S any](alg scoring.Algebra[S], sc scoring.Scoring[S], seq []byte, seed S) (*POA[S], error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	g := core.NewGraph[S](core.WithNodeCapacity(len(seq)))
	prev := g.AddNode(seq[0])
	for _, b := range seq[1:] {
		next := g.AddNode(b)
		if err := g.AddEdge(prev, next, seed); err != nil {
			return nil, err
		}
		prev = next
	}

	return &POA[S]{alg: alg, sc: sc, graph: g, sequences: 1}, nil
}

// Graph returns the underlying graph. Callers must not mutate it while
// alignments are in flight.
func (p *POA[S]) Graph() *core.Graph[S] {
	return p.graph
}

// Sequences returns how many sequences the graph holds, the seed included.
func (p *POA[S]) Sequences() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.sequences
}

// Snapshot returns a deep copy of the graph taken under the read lock, safe
// to export while further sequences are folded in.
func (p *POA[S]) Snapshot() *core.Graph[S] {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.Clone()
}
