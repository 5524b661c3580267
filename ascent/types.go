// Package ascent defines options and sentinel errors for the backtracking
// longest-ascending-path strategy.
package ascent

import (
	"context"
	"errors"

	"github.com/mirelenko/statewalk/chargrid"
)

// ErrNilGrid is returned when a nil *chargrid.Grid is passed to Longest.
var ErrNilGrid = errors.New("ascent: grid is nil")

// Option configures optional behavior of Longest.
type Option func(*Options)

// Options holds configurable parameters for the backtracking walk.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// The context is polled once per visited cell.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked each time a cell joins the active
	// branch. Returning an error aborts the walk with that error.
	OnVisit func(c chargrid.Coord) error
}

// DefaultOptions returns Options with a Background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a per-cell hook.
func WithOnVisit(fn func(c chargrid.Coord) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
