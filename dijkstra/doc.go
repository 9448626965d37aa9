// Package dijkstra finds a minimum-length path between two cells of a
// gridgraph.Graph with a priority-queue driven uniform-cost search.
//
// Overview:
//
//   - Every battlefield step costs 1, so the search settles cells in
//     increasing number of steps from the source.
//   - A binary min-heap (container/heap) keyed on distance orders the frontier;
//     improvements are re-inserted and stale entries skipped when popped.
//   - The search stops as soon as the destination is settled and rebuilds the
//     path from the predecessor links stored on the nodes.
//
// Key features:
//
//   - MaxDistance: caps exploration, e.g. to a unit's movement range.
//   - OnExpand: observe the settle order (instrumentation, tests).
//
// Result semantics:
//
//   - A found path runs source→destination inclusive; consecutive cells are
//     orthogonally adjacent.
//   - No path is reported as a nil slice with a nil error. Only a nil graph
//     yields ErrNilGraph.
//   - Among several shortest paths the one returned is unspecified.
//
// Example usage:
//
//	g := gridgraph.NewGraph(&mask)
//	path, err := dijkstra.ShortestPath(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 0, Y: 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(path) - 1, "steps")
package dijkstra
