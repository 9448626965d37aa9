// Package pathfinder computes the movement path of one unit towards another
// across the 27×21 battlefield, around every other living unit.
package pathfinder

import (
	"github.com/katalvlaran/battlegrid/bfs"
	"github.com/katalvlaran/battlegrid/dijkstra"
	"github.com/katalvlaran/battlegrid/gridgraph"
)

// Finder is a configured path finder. It holds no per-call state and is safe
// for concurrent use.
type Finder struct {
	opts Options
}

// defaultFinder backs the package-level functions.
var defaultFinder = &Finder{opts: DefaultOptions()}

// New builds a Finder from functional options.
// Returns ErrOptionViolation (wrapped) if any option is invalid.
func New(opts ...Option) (*Finder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Finder{opts: o}, nil
}

// Strategy returns the search algorithm used by f.
func (f *Finder) Strategy() Strategy { return f.opts.Strategy }

// FindPath returns the cells of a shortest 4-directional path from mover's
// cell to target's cell, both inclusive, avoiding every cell held by another
// living unit of roster.
//
// The result is empty when no path exists: an endpoint is nil or off the field, the
// target is walled in, or (with MaxSteps) it is too far. No path is never an
// error. If mover and target share a cell the path is that single cell.
//
// Each call builds its own occupancy mask and graph from the roster, so the
// roster must not be mutated while the call is running.
func (f *Finder) FindPath(mover, target Occupant, roster []Occupant) []gridgraph.Cell {
	if isNil(mover) || isNil(target) {
		return nil
	}
	g := gridgraph.NewGraph(OccupancyMask(roster, mover, target))
	return f.search(g, cellOf(mover), cellOf(target))
}

// search dispatches to the configured algorithm. Both searches only fail on a
// nil graph or bad options, which New and FindPath rule out.
func (f *Finder) search(g *gridgraph.Graph, src, dst gridgraph.Cell) []gridgraph.Cell {
	var (
		path []gridgraph.Cell
		err  error
	)
	switch f.opts.Strategy {
	case BFS:
		path, err = bfs.ShortestPath(g, src, dst, bfs.WithMaxDepth(f.opts.MaxSteps))
	default:
		var dopts []dijkstra.Option
		if f.opts.MaxSteps > 0 {
			dopts = append(dopts, dijkstra.WithMaxDistance(f.opts.MaxSteps))
		}
		path, err = dijkstra.ShortestPath(g, src, dst, dopts...)
	}
	if err != nil {
		return nil
	}
	return path
}

// Reachable reports whether any path connects mover and target, ignoring
// MaxSteps. It labels connected regions instead of searching.
func (f *Finder) Reachable(mover, target Occupant, roster []Occupant) bool {
	if isNil(mover) || isNil(target) {
		return false
	}
	g := gridgraph.NewGraph(OccupancyMask(roster, mover, target))
	return g.Connected(cellOf(mover), cellOf(target))
}

// FindPath is Finder.FindPath with the default options (Dijkstra, no limit).
func FindPath(mover, target Occupant, roster []Occupant) []gridgraph.Cell {
	return defaultFinder.FindPath(mover, target, roster)
}

// Reachable is Finder.Reachable with the default options.
func Reachable(mover, target Occupant, roster []Occupant) bool {
	return defaultFinder.Reachable(mover, target, roster)
}

// Roster converts a slice of occupant pointers (e.g. []*unit.Unit) into a
// []Occupant. Nil pointers are dropped.
func Roster[U any, P interface {
	*U
	Occupant
}](units []P) []Occupant {
	out := make([]Occupant, 0, len(units))
	for _, p := range units {
		if p == nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
