// Package bfs holds the errors and the range/hook options of the
// breadth-first battlefield search.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/battlegrid/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned for a nil battlefield graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a search. A bad value is kept in the options and returned as
// ErrOptionViolation by ShortestPath.
type Option func(*BFSOptions)

// BFSOptions holds the search radius and the visit hook.
type BFSOptions struct {
	// OnVisit receives each dequeued cell and its distance in steps from src.
	OnVisit func(c gridgraph.Cell, depth int)

	// MaxDepth is the movement range in steps: cells farther from src are
	// never queued. 0 means the whole field.
	MaxDepth int

	// first invalid option, reported by ShortestPath
	err error
}

// DefaultOptions searches the whole field without a hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit: func(gridgraph.Cell, int) {},
	}
}

// WithOnVisit sets the hook run for every dequeued cell. nil is ignored.
func WithOnVisit(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to cells at most d steps from src; a target
// farther away has no path. d == 0 lifts the limit, d < 0 is rejected.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
