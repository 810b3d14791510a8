// Package cheat defines options and error definitions for racetrack
// shortcut analysis.
package cheat

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/steeplejack/advent-of-code/dijkstra"
)

// Sentinel errors for cheat analysis.
var (
	// ErrRepeatedNode is returned when a path visits the same node twice.
	ErrRepeatedNode = errors.New("cheat: path visits a node more than once")

	// ErrBadRadius is returned for a negative cheat radius.
	ErrBadRadius = errors.New("cheat: radius must be non-negative")

	// ErrNilScores is returned when NewAnalyzer receives a nil score map.
	ErrNilScores = errors.New("cheat: score map is nil")

	// ErrNilGrid is returned when FromGrid receives a nil grid.
	ErrNilGrid = errors.New("cheat: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cheat: invalid option supplied")
)

// Option configures an Analyzer via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by the
// constructor it was passed to.
type Option func(*Options)

// Options holds the Analyzer configuration.
type Options struct {
	// Logger receives Debug records for each pipeline stage.
	Logger *slog.Logger

	// Dijkstra is forwarded to the shortest-path search in FromGrid.
	Dijkstra []dijkstra.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a discarding logger and no Dijkstra options.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger. A nil logger is an option violation.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger cannot be nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithDijkstraOptions forwards opts to the shortest-path search run by FromGrid.
func WithDijkstraOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Dijkstra = append(o.Dijkstra, opts...)
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
