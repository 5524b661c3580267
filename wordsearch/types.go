// Package wordsearch defines options and sentinel errors for prefix-pruned
// word discovery on a letter grid.
package wordsearch

import (
	"context"
	"errors"
)

// ErrNilGrid is returned when a nil *chargrid.Grid is passed to Search.
var ErrNilGrid = errors.New("wordsearch: grid is nil")

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for the word search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// The context is polled once per popped path.
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result captures the outcome of a word search.
type Result struct {
	// Words holds every dictionary word traced on the grid,
	// deduplicated and sorted.
	Words []string

	// PrunedBranches counts paths abandoned because their letters formed
	// no dictionary prefix. Diagnostics only.
	PrunedBranches int
}
