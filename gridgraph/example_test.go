// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/battlegrid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: NewGraph
////////////////////////////////////////////////////////////////////////////////

// ExampleNewGraph shows how occupied cells drop out of the graph and how the
// neighbours of a cell next to a blocker shrink.
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleNewGraph() {
	var m gridgraph.Mask
	m.Block(gridgraph.Cell{X: 1, Y: 0})
	g := gridgraph.NewGraph(&m)

	n, _ := g.Node(gridgraph.Cell{X: 0, Y: 0})
	fmt.Println("nodes:", g.Len())
	fmt.Print("neighbours of (0,0):")
	for _, idx := range n.Neighbors {
		fmt.Printf(" %v", gridgraph.CellAt(idx))
	}
	fmt.Println()

	// Output:
	// nodes: 566
	// neighbours of (0,0): {0 1}
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_ConnectedComponents walls off the two leftmost columns.
func ExampleGraph_ConnectedComponents() {
	var m gridgraph.Mask
	for y := 0; y < gridgraph.Height; y++ {
		m.Block(gridgraph.Cell{X: 2, Y: y})
	}
	g := gridgraph.NewGraph(&m)

	for i, comp := range g.ConnectedComponents() {
		fmt.Printf("component %d: %d cells, first %v\n", i, len(comp), gridgraph.CellAt(comp[0]))
	}

	// Output:
	// component 0: 42 cells, first {0 0}
	// component 1: 504 cells, first {3 0}
}
