package battle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/battlegrid/pathfinder"
	"github.com/katalvlaran/battlegrid/unit"
)

// Sentinel errors for battle simulation.
var (
	// ErrNilArmy indicates that one of the armies is nil.
	ErrNilArmy = errors.New("battle: army is nil")
	// ErrStalemate indicates a full round in which nobody could attack.
	ErrStalemate = errors.New("battle: stalemate, no unit could attack")
	// ErrRoundLimit indicates that MaxRounds elapsed without a winner.
	ErrRoundLimit = errors.New("battle: round limit reached")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("battle: invalid option supplied")
)

// Side names an army.
type Side int

const (
	// None means the battle ended without a winner.
	None Side = iota
	// Player is the army deployed on the right.
	Player
	// Computer is the army deployed on the left.
	Computer
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case None:
		return "none"
	case Player:
		return "player"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Logger receives every attack performed during the battle.
type Logger interface {
	Log(attacker, target *unit.Unit)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(attacker, target *unit.Unit)

// Log implements Logger.
func (f LoggerFunc) Log(attacker, target *unit.Unit) { f(attacker, target) }

// Result summarises a finished battle.
type Result struct {
	Winner  Side `json:"winner"`
	Rounds  int  `json:"rounds"`
	Attacks int  `json:"attacks"`
}

// Options configures Simulate.
type Options struct {
	Logger    Logger
	Finder    *pathfinder.Finder
	MaxRounds int

	err error
}

// Option represents a functional option for configuring Simulate.
type Option func(*Options)

// DefaultOptions returns a silent logger, the default path finder and no
// round limit.
func DefaultOptions() Options {
	f, _ := pathfinder.New()
	return Options{
		Logger: LoggerFunc(func(_, _ *unit.Unit) {}),
		Finder: f,
	}
}

// WithLogger sets the attack logger. nil is ignored.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFinder sets the path finder used by default programs. nil is ignored.
func WithFinder(f *pathfinder.Finder) Option {
	return func(o *Options) {
		if f != nil {
			o.Finder = f
		}
	}
}

// WithMaxRounds caps the number of rounds; 0 means no cap.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}
