// Package bfs implements breadth-first shortest paths on the battlefield graph.
//
// What:
//
//   - ShortestPath: fewest-steps path between two cells of a gridgraph.Graph.
//   - Options: MaxDepth (movement range), OnVisit hook.
//
// Why:
//
//   - Every step on the battlefield costs 1, so a FIFO queue is a valid and
//     cheaper substitute for the priority queue of package dijkstra. Both
//     return paths of equal length; when several shortest paths exist they may
//     pick different ones.
//
// Complexity:
//
//   - Time:  O(V + E), V ≤ 567, E ≤ 4V.
//   - Space: O(V) for the queue; Dist/Prev are stored on the graph nodes.
//
// Errors:
//
//   - ErrGraphNil:        nil graph.
//   - ErrOptionViolation: invalid option (negative MaxDepth).
//
// No path is not an error: ShortestPath returns a nil slice.
package bfs
