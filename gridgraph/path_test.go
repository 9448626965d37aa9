package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/battlegrid/gridgraph"
)

// chain links the cells of path through Dist/Prev as a search would.
func chain(t *testing.T, g *gridgraph.Graph, path []gridgraph.Cell) {
	t.Helper()
	prev := -1
	for d, c := range path {
		n, ok := g.Node(c)
		require.True(t, ok, "cell %v not in graph", c)
		n.Dist = d
		n.Prev = prev
		prev = c.Index()
	}
}

func TestPathTo_Chain(t *testing.T) {
	g := gridgraph.NewGraph(nil)
	want := []gridgraph.Cell{{0, 0}, {0, 1}, {1, 1}, {2, 1}}
	chain(t, g, want)

	assert.Equal(t, want, g.PathTo(gridgraph.Cell{X: 2, Y: 1}))
}

// TestPathTo_Source returns just the source cell.
func TestPathTo_Source(t *testing.T) {
	g := gridgraph.NewGraph(nil)
	src := gridgraph.Cell{X: 7, Y: 7}
	chain(t, g, []gridgraph.Cell{src})

	assert.Equal(t, []gridgraph.Cell{src}, g.PathTo(src))
}

// TestPathTo_Unreached returns nil for nodes never touched and for occupied cells.
func TestPathTo_Unreached(t *testing.T) {
	var m gridgraph.Mask
	m.Block(gridgraph.Cell{X: 3, Y: 3})
	g := gridgraph.NewGraph(&m)

	assert.Nil(t, g.PathTo(gridgraph.Cell{X: 1, Y: 1}))
	assert.Nil(t, g.PathTo(gridgraph.Cell{X: 3, Y: 3}))
	assert.Nil(t, g.PathTo(gridgraph.Cell{X: -1, Y: 3}))
}
