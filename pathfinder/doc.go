// Package pathfinder is the battlefield path finder used by unit programs to
// walk towards the unit they attack.
//
// What:
//
//   - OccupancyMask: the cells blocked by living units other than the mover and
//     the target, for one call.
//   - FindPath: occupancy mask → gridgraph.Graph → shortest-path search →
//     reconstructed cell sequence, mover→target inclusive.
//   - Reachable: connectivity check between mover and target.
//   - Finder: a reusable configuration (search Strategy, MaxSteps).
//
// Guarantees:
//
//   - A non-empty path starts at the mover, ends at the target, and each step
//     moves one cell up, down, left or right.
//   - The path has the minimum possible number of steps; which of several
//     equally short paths is returned is unspecified.
//   - "No path" is an empty slice, never an error.
//   - Nothing is cached: every call rebuilds its graph from the roster it is
//     given, so calls share no state.
//
// Complexity:
//
//   - FindPath: O(k + W×H×log(W×H)) with Dijkstra, O(k + W×H) with BFS, for a
//     roster of k units on the fixed 27×21 field.
//
// Errors:
//
//   - ErrOptionViolation: returned by New and ParseStrategy only.
package pathfinder
