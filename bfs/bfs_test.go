package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/battlegrid/bfs"
	"github.com/katalvlaran/battlegrid/dijkstra"
	"github.com/katalvlaran/battlegrid/gridgraph"
)

func TestShortestPath_NilGraph(t *testing.T) {
	path, err := bfs.ShortestPath(nil, gridgraph.Cell{}, gridgraph.Cell{})
	assert.Nil(t, path)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestShortestPath_NegativeDepth(t *testing.T) {
	g := gridgraph.NewGraph(nil)
	path, err := bfs.ShortestPath(g, gridgraph.Cell{}, gridgraph.Cell{X: 1}, bfs.WithMaxDepth(-2))
	assert.Nil(t, path)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestShortestPath_Column(t *testing.T) {
	g := gridgraph.NewGraph(nil)
	path, err := bfs.ShortestPath(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 0, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}, path)
}

func TestShortestPath_SameCell(t *testing.T) {
	g := gridgraph.NewGraph(nil)
	c := gridgraph.Cell{X: 26, Y: 20}
	path, err := bfs.ShortestPath(g, c, c)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{c}, path)
}

func TestShortestPath_Enclosed(t *testing.T) {
	var m gridgraph.Mask
	for _, c := range []gridgraph.Cell{{X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 6}} {
		m.Block(c)
	}
	g := gridgraph.NewGraph(&m)

	path, err := bfs.ShortestPath(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 5, Y: 5})
	require.NoError(t, err)
	assert.Empty(t, path)

	// and the other way round: the enclosed cell cannot get out
	path, err = bfs.ShortestPath(g, gridgraph.Cell{X: 5, Y: 5}, gridgraph.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestShortestPath_MaxDepth(t *testing.T) {
	g := gridgraph.NewGraph(nil)
	src, dst := gridgraph.Cell{X: 3, Y: 3}, gridgraph.Cell{X: 3, Y: 8}

	path, err := bfs.ShortestPath(g, src, dst, bfs.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = bfs.ShortestPath(g, src, dst, bfs.WithMaxDepth(5))
	require.NoError(t, err)
	assert.Len(t, path, 6)
	// 0 lifts a range set earlier.
	path, err = bfs.ShortestPath(g, src, dst, bfs.WithMaxDepth(2), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, path, 6)
}

// TestShortestPath_VisitLayers checks that depths are dequeued in layers.
func TestShortestPath_VisitLayers(t *testing.T) {
	g := gridgraph.NewGraph(nil)
	var depths []int
	_, err := bfs.ShortestPath(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 26, Y: 20},
		bfs.WithOnVisit(func(_ gridgraph.Cell, d int) { depths = append(depths, d) }))
	require.NoError(t, err)

	require.Len(t, depths, gridgraph.Size, "corner target is the last cell dequeued")
	for i := 1; i < len(depths); i++ {
		require.GreaterOrEqual(t, depths[i], depths[i-1])
	}
	assert.Equal(t, 46, depths[len(depths)-1])
}

// TestShortestPath_AgreesWithDijkstra compares path lengths of both searches
// on random crowded fields.
func TestShortestPath_AgreesWithDijkstra(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := 0; round < 100; round++ {
		var m gridgraph.Mask
		for i := 0; i < gridgraph.Size*2/5; i++ {
			m.Block(gridgraph.CellAt(r.Intn(gridgraph.Size)))
		}
		src := gridgraph.CellAt(r.Intn(gridgraph.Size))
		dst := gridgraph.CellAt(r.Intn(gridgraph.Size))
		m.Clear(src)
		m.Clear(dst)
		g := gridgraph.NewGraph(&m)

		fifo, err := bfs.ShortestPath(g, src, dst)
		require.NoError(t, err)
		heap, err := dijkstra.ShortestPath(g, src, dst)
		require.NoError(t, err)

		require.Equal(t, len(heap), len(fifo), "round %d: %v→%v", round, src, dst)
		require.Equal(t, g.Connected(src, dst), len(fifo) > 0, "round %d", round)
	}
}
