// Package dijkstra defines the sentinel errors and functional options for the
// uniform-cost search over a gridgraph.Graph.
//
// Options:
//
//	– MaxDistance: cap on steps to explore; nodes farther away are never settled.
//	– OnExpand:    hook invoked once for every node settled by the search.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrBadMaxDistance if MaxDistance < 0 (raised as a panic by WithMaxDistance).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/battlegrid/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *gridgraph.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the search.
//
// MaxDistance – nodes whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// OnExpand    – called with the cell and its final distance each time a node is
//
//	settled, the target included. Default is a no-op.
type Options struct {
	MaxDistance int
	OnExpand    func(c gridgraph.Cell, dist int)
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold, in steps.
// A target farther than max is reported as unreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnExpand registers a hook called for every settled node.
// A nil fn leaves the default no-op in place.
func WithOnExpand(fn func(c gridgraph.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance: math.MaxInt (explore everything reachable).
//   - OnExpand:    no-op.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt,
		OnExpand:    func(gridgraph.Cell, int) {},
	}
}
