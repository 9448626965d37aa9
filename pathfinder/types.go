// Package pathfinder defines the Occupant abstraction, the search strategies
// and the functional options of the battlefield path finder.
package pathfinder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/battlegrid/gridgraph"
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("pathfinder: invalid option supplied")

// Occupant is anything standing on the battlefield. The mover and the target
// are told apart from the rest of a roster by identity (==), so implementations
// should be pointer types. Values of an uncomparable type never match the mover
// or the target and block their cell like any other unit.
type Occupant interface {
	Position() (x, y int)
	IsAlive() bool
}

// Strategy selects the search algorithm.
type Strategy int

const (
	// Dijkstra uses the heap-based uniform-cost search.
	Dijkstra Strategy = iota
	// BFS uses a plain FIFO breadth-first search.
	BFS
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Dijkstra:
		return "dijkstra"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "dijkstra" or "bfs" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "dijkstra", "":
		return Dijkstra, nil
	case "bfs":
		return BFS, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Options configures a Finder.
type Options struct {
	// Strategy is the search algorithm; default Dijkstra.
	Strategy Strategy
	// MaxSteps, if > 0, treats targets farther than this many steps as
	// unreachable. 0 means no limit.
	MaxSteps int

	err error
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns Dijkstra without a step limit.
func DefaultOptions() Options {
	return Options{Strategy: Dijkstra}
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Dijkstra && s != BFS {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithMaxSteps limits the path length in steps (edges).
//
//	n > 0: limit to n steps
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// cellOf converts an occupant's position into a battlefield cell.
func cellOf(o Occupant) gridgraph.Cell {
	x, y := o.Position()
	return gridgraph.Cell{X: x, Y: y}
}
