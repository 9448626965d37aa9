package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/battlegrid/bfs"
	"github.com/katalvlaran/battlegrid/gridgraph"
)

// ExampleShortestPath routes around a short wall.
//
//	. . # .
//	S . # T
//	. . . .
//
// The wall at x=2 covers y=0..1, so the path dips to y=2 and back up.
func ExampleShortestPath() {
	var m gridgraph.Mask
	m.Block(gridgraph.Cell{X: 2, Y: 0})
	m.Block(gridgraph.Cell{X: 2, Y: 1})
	g := gridgraph.NewGraph(&m)

	path, err := bfs.ShortestPath(g, gridgraph.Cell{X: 0, Y: 1}, gridgraph.Cell{X: 3, Y: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", len(path)-1)
	// Output: steps: 5
}
