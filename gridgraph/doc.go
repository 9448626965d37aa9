// Package gridgraph models the fixed 27×21 battlefield as a graph of free cells.
//
// What:
//
//   - Cell is the comparable (x,y) key; Mask is the occupancy snapshot.
//   - NewGraph turns every free cell of a Mask into a Node linked to its free
//     orthogonal neighbours. Occupied cells never become nodes.
//   - Nodes carry the search state (Dist, Prev) that dijkstra and bfs fill in;
//     PathTo walks it back into a source→target path.
//   - ConnectedComponents groups free cells into mutually reachable regions.
//
// Why:
//
//   - A dense array indexed by y*Width+x avoids per-node allocation and keeps
//     lookups O(1) on a board that never changes size.
//   - Graphs are built fresh for each pathfinding call, so no state leaks
//     between calls.
//
// Complexity:
//
//   - NewGraph:            O(W×H×4), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//   - PathTo:              O(d), d = path length.
//
// Diagonal movement and weighted terrain are not modelled: every edge has
// weight 1.
package gridgraph
