package poa

import (
	"context"

	"github.com/katalvlaran/colourpoa/dfs"
	"github.com/katalvlaran/colourpoa/scoring"
)

// cell accumulates the candidates of one DP cell.
type cell[S any] struct {
	alg  scoring.Algebra[S]
	acc  S       // Merge of every candidate so far
	top  S       // first candidate with the best ordering
	at   pointer // where top came from
	seen bool
}

// reset prepares c for a new cell.
func (c *cell[S]) reset() {
	c.acc = c.alg.Annihilator()
	c.seen = false
}

// add offers candidate v reached through (kind, pred).
func (c *cell[S]) add(v S, kind OpKind, pred int) {
	c.acc = c.alg.Merge(c.acc, v)
	if !c.seen || c.alg.Compare(v, c.top) > 0 {
		c.top, c.at, c.seen = v, pointer{kind: kind, pred: pred}, true
	}
}

// Global computes the best global alignment of query against the graph.
//
// Steps:
//  1. Order nodes topologically; row r holds node order[r-1], row 0 is start.
//  2. Fill the start row with Gap^j.
//  3. Fill every node row from its predecessor rows (see package doc).
//  4. Pick the best sink and trace the pointers back to (start, 0).
//
// Returns ErrEmptySequence for an empty query and ctx.Err() if ctx is
// cancelled between rows.
func (p *POA[S]) Global(ctx context.Context, query []byte) (Alignment[S], error) {
	if len(query) == 0 {
		return Alignment[S]{}, ErrEmptySequence
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	// 1. Topological order and node → row index
	order, err := dfs.TopologicalSort(p.graph, dfs.WithCancelContext(ctx))
	if err != nil {
		return Alignment[S]{}, err
	}
	n, m := len(order), len(query)
	rowOf := make([]int, n)
	for i, id := range order {
		rowOf[id] = i + 1
	}

	score := make([][]S, n+1)
	ptr := make([][]pointer, n+1)
	for r := range score {
		score[r] = make([]S, m+1)
		ptr[r] = make([]pointer, m+1)
	}

	// 2. Start row: only insertions are possible
	score[0][0] = p.alg.Identity()
	for j := 1; j <= m; j++ {
		score[0][j] = p.alg.Combine(score[0][j-1], p.sc.Gap)
		ptr[0][j] = pointer{kind: OpInsert}
	}

	// 3. Node rows; sources hang off the start row
	c := cell[S]{alg: p.alg}
	start := []int{0}
	source := make([]bool, n)
	for _, id := range p.graph.Sources() {
		source[id] = true
	}
	for i, id := range order {
		if err = ctx.Err(); err != nil {
			return Alignment[S]{}, err
		}
		r := i + 1
		node, err := p.graph.Node(id)
		if err != nil {
			return Alignment[S]{}, err
		}
		predRows := start
		if !source[id] {
			preds, err := p.graph.Predecessors(id)
			if err != nil {
				return Alignment[S]{}, err
			}
			predRows = make([]int, len(preds))
			for k, pid := range preds {
				predRows[k] = rowOf[pid]
			}
		}

		for j := 0; j <= m; j++ {
			c.reset()
			if j > 0 {
				s := p.sc.Score(node.Base, query[j-1])
				for _, pr := range predRows {
					c.add(p.alg.Combine(score[pr][j-1], s), OpMatch, pr)
				}
			}
			for _, pr := range predRows {
				c.add(p.alg.Combine(score[pr][j], p.sc.Gap), OpDelete, pr)
			}
			if j > 0 {
				c.add(p.alg.Combine(score[r][j-1], p.sc.Gap), OpInsert, r)
			}
			score[r][j], ptr[r][j] = c.acc, c.at
		}
	}

	// 4. Best sink, lowest ID on ties
	end := -1
	for _, id := range p.graph.Sinks() {
		if end < 0 || p.alg.Compare(score[rowOf[id]][m], score[rowOf[end]][m]) > 0 {
			end = id
		}
	}

	return Alignment[S]{
		Score: score[rowOf[end]][m],
		Ops:   traceback(order, ptr, rowOf[end], m),
	}, nil
}

// traceback follows ptr from (row, col) to (start, 0) and returns the ops in
// path order.
func traceback(order []int, ptr [][]pointer, row, col int) []Op {
	ops := make([]Op, 0, row+col)
	for row != 0 || col != 0 {
		if row == 0 {
			ops = append(ops, Op{Kind: OpInsert, Node: -1})
			col--
			continue
		}
		pt := ptr[row][col]
		id := order[row-1]
		switch pt.kind {
		case OpMatch:
			ops = append(ops, Op{Kind: OpMatch, Node: id})
			row, col = pt.pred, col-1
		case OpDelete:
			ops = append(ops, Op{Kind: OpDelete, Node: id})
			row = pt.pred
		default:
			ops = append(ops, Op{Kind: OpInsert, Node: -1})
			col--
		}
	}
	// reverse in-place
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}
