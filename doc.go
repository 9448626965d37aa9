// Package battlegrid is a turn-based battle simulator on a 27×21 grid, built
// around a shortest-path finder for units walking up to their targets.
//
// What is inside?
//
//	gridgraph/   dense 4-connected grid graph, occupancy mask, path rebuild, components
//	dijkstra/    uniform-cost Dijkstra on a gridgraph.Graph
//	bfs/         FIFO breadth-first shortest path on the same graph
//	pathfinder/  mover → target paths around living units (the public entry point)
//	unit/        Unit and Army types
//	target/      which enemies are open to attack
//	preset/      greedy army generation from a catalogue and a point budget
//	battle/      the round loop and the default unit program
//	cmd/         battlesim (full battle, JSON summary) and pathfind (ASCII path view)
//
// Quick ASCII example (S mover, T target, # living unit, * path):
//
//	S * * * .
//	# # # * .
//	T * * * .
//
// Coordinates: x grows to the right (0..26), y grows downwards (0..20).
// Cells are 4-connected; every step costs 1.
package battlegrid
