package export

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/colourpoa/colour"
	"github.com/katalvlaran/colourpoa/core"
)

// GraphName is the DOT graph identifier used by WriteDOT.
const GraphName = "colourpoa"

// baseNode is a gonum node labelled with its nucleotide.
type baseNode struct {
	id   int64
	base byte
}

func (n baseNode) ID() int64 { return n.id }

func (n baseNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: string(n.base)}}
}

// pairEdge is a gonum edge carrying a ScorePair.
type pairEdge struct {
	from, to baseNode
	w        colour.ScorePair
}

func (e pairEdge) From() graph.Node { return e.from }
func (e pairEdge) To() graph.Node   { return e.to }

func (e pairEdge) ReversedEdge() graph.Edge {
	return pairEdge{from: e.to, to: e.from, w: e.w}
}

func (e pairEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: e.w.String()},
		{Key: "color", Value: e.w.Label().Colour()},
	}
}

// toGonum copies g into a gonum directed graph.
func toGonum(g *core.Graph[colour.ScorePair]) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	nodes := g.Nodes()
	byID := make([]baseNode, len(nodes))
	for _, n := range nodes {
		bn := baseNode{id: int64(n.ID), base: n.Base}
		byID[n.ID] = bn
		dg.AddNode(bn)
	}
	for _, e := range g.Edges() {
		dg.SetEdge(pairEdge{from: byID[e.From], to: byID[e.To], w: e.Weight})
	}

	return dg
}

// WriteDOT encodes g with gonum's DOT marshaller.
func WriteDOT(w io.Writer, g *core.Graph[colour.ScorePair]) error {
	b, err := dot.Marshal(toGonum(g), GraphName, "", "\t")
	if err != nil {
		return fmt.Errorf("export: marshal dot: %w", err)
	}
	if _, err = w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")

	return err
}

// WriteLegacyDOT writes g in the line-oriented layout shown in the package
// documentation. Nodes and edges appear in ascending ID order.
func WriteLegacyDOT(w io.Writer, g *core.Graph[colour.ScorePair]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")
	for _, n := range g.Nodes() {
		fmt.Fprintf(bw, "    %d [ label = \"%c\" ]\n", n.ID, n.Base)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "    %d -> %d [ label = %s ]\n", e.From, e.To, e.Weight.DOTLabel())
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// Counts summarises a coloured graph.
type Counts struct {
	Nodes   int
	Edges   int
	ByLabel map[colour.Label]int
}

// Summary counts nodes, edges and edges per Label. Every Label is present
// in ByLabel, possibly with zero.
func Summary(g *core.Graph[colour.ScorePair]) Counts {
	c := Counts{
		Nodes:   g.NodeCount(),
		ByLabel: make(map[colour.Label]int, len(colour.Labels())),
	}
	for _, l := range colour.Labels() {
		c.ByLabel[l] = 0
	}
	for _, e := range g.Edges() {
		c.Edges++
		c.ByLabel[e.Weight.Label()]++
	}

	return c
}
