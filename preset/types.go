package preset

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/battlegrid/internal/rng"
)

// Sentinel errors for preset generation.
var (
	// ErrNegativeBudget indicates a negative point budget.
	ErrNegativeBudget = errors.New("preset: point budget must be non-negative")
	// ErrBadCost indicates a catalogue entry whose cost is zero or negative.
	ErrBadCost = errors.New("preset: unit cost must be positive")
	// ErrFieldFull indicates more units than free cells in the army's columns.
	ErrFieldFull = errors.New("preset: not enough cells for the selected units")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("preset: invalid option supplied")
)

// Side is the half of the battlefield an army deploys on.
type Side int

const (
	// Left deploys on columns 0..2 (the computer's side).
	Left Side = iota
	// Right deploys on columns 24..26 (the player's side).
	Right
)

// Columns is the number of battlefield columns an army deploys on.
const Columns = 3

// DefaultMaxPerType caps how many units of one type an army may field.
const DefaultMaxPerType = 11

// Options configures Generate.
type Options struct {
	Rand       *rand.Rand
	Side       Side
	MaxPerType int

	err error
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// DefaultOptions returns a left-side army, 11 units per type, seed 1.
func DefaultOptions() Options {
	return Options{
		Rand:       rng.New(1),
		Side:       Left,
		MaxPerType: DefaultMaxPerType,
	}
}

// WithRand sets the random source used for placement. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSide selects the deployment columns.
func WithSide(s Side) Option {
	return func(o *Options) {
		o.Side = s
	}
}

// WithMaxPerType overrides the per-type cap; n must be positive.
func WithMaxPerType(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxPerType = n
	}
}
