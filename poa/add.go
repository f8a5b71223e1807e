package poa

import "fmt"

// AddAlignment folds seq into the graph along aln, which must have been
// computed for seq. A matched symbol equal to its node's base reuses the
// node; a mismatched or inserted symbol gets a new node. Every edge the
// sequence walks is created with weight seed or, when present, combined
// with seed. Deleted nodes are skipped.
//
// Returns ErrEmptySequence for an empty seq and ErrAlignmentMismatch when
// aln does not consume seq exactly or names an unknown node. The graph is
// left untouched on error.
func (p *POA[S]) AddAlignment(aln Alignment[S], seq []byte, seed S) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// 1. Validate before mutating anything
	consumed := 0
	for k, op := range aln.Ops {
		switch op.Kind {
		case OpMatch:
			consumed++
			fallthrough
		case OpDelete:
			if !p.graph.HasNode(op.Node) {
				return fmt.Errorf("%w: op %d names node %d", ErrAlignmentMismatch, k, op.Node)
			}
		case OpInsert:
			consumed++
		default:
			return fmt.Errorf("%w: op %d has kind %d", ErrAlignmentMismatch, k, op.Kind)
		}
	}
	if consumed != len(seq) {
		return fmt.Errorf("%w: consumes %d symbols, sequence has %d", ErrAlignmentMismatch, consumed, len(seq))
	}

	// 2. Walk the path, creating nodes and accumulating edges
	prev, i := -1, 0
	for _, op := range aln.Ops {
		var node int
		switch op.Kind {
		case OpDelete:
			continue
		case OpMatch:
			existing, err := p.graph.Node(op.Node)
			if err != nil {
				return err
			}
			if existing.Base == seq[i] {
				node = op.Node
			} else {
				node = p.graph.AddNode(seq[i])
			}
		default:
			node = p.graph.AddNode(seq[i])
		}
		if prev >= 0 {
			if err := p.link(prev, node, seed); err != nil {
				return err
			}
		}
		prev = node
		i++
	}
	p.sequences++

	return nil
}

// link adds seed to edge from→to, creating the edge if needed.
func (p *POA[S]) link(from, to int, seed S) error {
	if p.graph.HasEdge(from, to) {
		return p.graph.UpdateEdge(from, to, func(w S) S {
			return p.alg.Combine(w, seed)
		})
	}

	return p.graph.AddEdge(from, to, seed)
}
