package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colourpoa/core"
)

// chain builds base[0]→base[1]→… with weight i on edge i.
func chain(t *testing.T, bases string) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int]()
	prev := -1
	for i := 0; i < len(bases); i++ {
		id := g.AddNode(bases[i])
		if prev >= 0 {
			require.NoError(t, g.AddEdge(prev, id, i))
		}
		prev = id
	}

	return g
}

func TestAddNode_SequentialIDs(t *testing.T) {
	g := core.NewGraph[int](core.WithNodeCapacity(4))
	assert.Equal(t, 0, g.AddNode('A'))
	assert.Equal(t, 1, g.AddNode('C'))
	assert.Equal(t, 2, g.NodeCount())

	n, err := g.Node(1)
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: 1, Base: 'C'}, n)

	_, err = g.Node(2)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Node(-1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.True(t, g.HasNode(0))
	assert.False(t, g.HasNode(5))
}

func TestAddEdge_Errors(t *testing.T) {
	g := chain(t, "AC")

	assert.ErrorIs(t, g.AddEdge(0, 0, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 7, 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, 1, 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(0, 1, 1), core.ErrEdgeExists)
	assert.Equal(t, 1, g.EdgeCount())

	// the reverse direction is a different edge
	require.NoError(t, g.AddEdge(1, 0, 9))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestUpdateEdge(t *testing.T) {
	g := chain(t, "ACG")

	require.NoError(t, g.UpdateEdge(1, 2, func(w int) int { return w + 10 }))
	e, err := g.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, e.Weight)

	assert.ErrorIs(t, g.UpdateEdge(2, 1, func(w int) int { return w }), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.UpdateEdge(99, 1, func(w int) int { return w }), core.ErrEdgeNotFound)

	_, err = g.Edge(0, 2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEdge_ReturnsCopy(t *testing.T) {
	g := chain(t, "AC")
	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	e.Weight = 100

	again, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Weight, "mutating a returned edge must not leak into the graph")
}

func TestAdjacency_Sorted(t *testing.T) {
	g := core.NewGraph[int]()
	for _, b := range "ABCDE" {
		g.AddNode(byte(b))
	}
	require.NoError(t, g.AddEdge(0, 3, 0))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))
	require.NoError(t, g.AddEdge(1, 3, 0))

	succ, err := g.Successors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, succ)

	pred, err := g.Predecessors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, pred)

	pred, err = g.Predecessors(0)
	require.NoError(t, err)
	assert.Empty(t, pred)

	_, err = g.Successors(10)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Predecessors(-2)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.Equal(t, []int{0, 4}, g.Sources())
	assert.Equal(t, []int{3, 4}, g.Sinks())
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(3, 2))
}

func TestEdges_Deterministic(t *testing.T) {
	g := core.NewGraph[int]()
	for range 4 {
		g.AddNode('N')
	}
	require.NoError(t, g.AddEdge(2, 3, 0))
	require.NoError(t, g.AddEdge(0, 2, 0))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 3, 0))

	var got [][2]int
	for _, e := range g.Edges() {
		got = append(got, [2]int{e.From, e.To})
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, got)
}

func TestClone_Independent(t *testing.T) {
	g := chain(t, "ACGT")
	c := g.Clone()

	assert.Equal(t, g.Nodes(), c.Nodes())
	assert.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.UpdateEdge(0, 1, func(int) int { return 42 }))
	id := c.AddNode('G')
	require.NoError(t, c.AddEdge(3, id, 0))

	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Weight)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, c.EdgeCount())

	pred, err := c.Predecessors(id)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, pred)
}
