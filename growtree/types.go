package growtree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/mazegrow/gridgraph"
	"github.com/katalvlaran/mazegrow/observability"
)

// Sentinel errors for generator construction and stepping.
var (
	// ErrInvalidSize is returned when width or height is not positive.
	ErrInvalidSize = errors.New("growtree: grid size must be at least 1x1")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("growtree: start cell out of bounds")

	// ErrUnknownStrategy is returned for a Strategy value or name that is not defined.
	ErrUnknownStrategy = errors.New("growtree: unknown candidate strategy")

	// ErrNotInitialized is returned by Step when Initialize has not been called.
	ErrNotInitialized = errors.New("growtree: generator not initialized")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("growtree: invalid option supplied")
)

// State is the generator lifecycle state.
type State int

const (
	// Idle means Initialize has not been called yet.
	Idle State = iota
	// Running means the frontier may still hold candidates.
	Running
	// Finished is terminal: the frontier was found empty.
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// VisitFunc is notified when a cell is visited for the first time.
type VisitFunc func(pos gridgraph.Coord)

// DeadEndFunc is notified when a candidate is retired from the frontier.
type DeadEndFunc func(pos gridgraph.Coord)

// CarveFunc is notified after a passage from src to dst has been carved.
type CarveFunc func(src, dst gridgraph.Coord)

// Option configures a Generator via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables and listeners of a Generator.
type Options struct {
	// Ctx is handed to observers with every event.
	Ctx context.Context

	// Rand drives candidate and neighbor selection. Never shared across goroutines.
	Rand *rand.Rand

	// OnVisit, OnDeadEnd and OnCarve are invoked synchronously, in
	// registration order, before Step returns.
	OnVisit   []VisitFunc
	OnDeadEnd []DeadEndFunc
	OnCarve   []CarveFunc

	// Observer receives telemetry events; nil disables event construction.
	Observer observability.Observer

	err error
}

// DefaultOptions returns Options with a background context and an RNG
// seeded with defaultSeed, so unconfigured generators are reproducible.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Rand: rngFromSeed(0),
	}
}

// WithContext sets the context passed to observers.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand injects the random source. A nil source is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: random source is nil", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed replaces the random source with a fresh one from seed.
// seed == 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithOnVisit subscribes fn to first visits. May be given several times.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = append(o.OnVisit, fn)
		}
	}
}

// WithOnDeadEnd subscribes fn to dead-end retirements. May be given several times.
func WithOnDeadEnd(fn DeadEndFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDeadEnd = append(o.OnDeadEnd, fn)
		}
	}
}

// WithOnCarve subscribes fn to carved passages. May be given several times.
func WithOnCarve(fn CarveFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = append(o.OnCarve, fn)
		}
	}
}

// WithObserver adds an event observer. Several observers are combined with
// an observability.MultiObserver.
func WithObserver(obs observability.Observer) Option {
	return func(o *Options) {
		switch {
		case obs == nil:
		case o.Observer == nil:
			o.Observer = obs
		default:
			o.Observer = observability.NewMultiObserver(o.Observer, obs)
		}
	}
}

// WithLogger logs every event through logger using an observability.SlogObserver.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			WithObserver(observability.NewSlogObserver(logger))(o)
		}
	}
}
