package poa

import (
	"errors"
	"sync"

	"github.com/katalvlaran/colourpoa/core"
	"github.com/katalvlaran/colourpoa/scoring"
)

var (
	// ErrEmptySequence indicates an empty seed, query or folded sequence.
	ErrEmptySequence = errors.New("poa: sequence must be non-empty")

	// ErrAlignmentMismatch indicates an alignment that does not consume the
	// folded sequence exactly or names a node the graph does not have.
	ErrAlignmentMismatch = errors.New("poa: alignment does not fit sequence")
)

// OpKind is the kind of a single alignment step.
type OpKind uint8

const (
	// OpMatch aligns one query symbol to Op.Node; the bases may differ.
	OpMatch OpKind = iota
	// OpInsert consumes one query symbol that has no node; Op.Node is -1.
	OpInsert
	// OpDelete skips graph node Op.Node.
	OpDelete
)

// String returns "match", "insert" or "delete".
func (k OpKind) String() string {
	switch k {
	case OpMatch:
		return "match"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Op is one step of an alignment path.
type Op struct {
	Kind OpKind
	Node int
}

// Alignment is the best global path of a query through the graph.
type Alignment[S any] struct {
	Score S
	Ops   []Op
}

// POA is a partial-order alignment graph with S-valued edges.
type POA[S any] struct {
	mu        sync.RWMutex
	alg       scoring.Algebra[S]
	sc        scoring.Scoring[S]
	graph     *core.Graph[S]
	sequences int
}

// pointer records which candidate produced a DP cell.
type pointer struct {
	kind OpKind
	pred int // source row; 0 is the start row
}
