// Package search defines the Problem contract, configurable options, and
// sentinel errors shared by every statewalk traversal strategy.
package search

import (
	"context"
	"errors"
)

// Sentinel errors for the search core.
var (
	// ErrNilProblem is returned when a nil Problem is passed to DepthFirst.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNotImplemented is the panic payload raised when an abstract Problem
	// method without an override is invoked. It signals a programming defect
	// in the Problem implementation, not a recoverable condition.
	ErrNotImplemented = errors.New("search: Problem method not implemented")
)

// Problem is the state-space contract every traversal strategy consumes.
//
// States are opaque comparable values (graph-node labels, grid coordinates);
// actions are opaque values identifying legal moves. No Problem method may
// be called with a state outside its space.
type Problem[S comparable, A any] interface {
	// Initial returns the start state of the search.
	Initial() S

	// Actions returns the ordered legal moves from state s.
	// An empty slice marks a dead end. Ordering is significant: DFS result
	// selection is order-dependent (see DepthFirst).
	Actions(s S) []A

	// Result returns the deterministic successor of applying a in state s.
	Result(s S, a A) S

	// ActionCost returns the non-negative cost of moving from s to next via a.
	ActionCost(s S, a A, next S) float64

	// IsGoal reports whether s satisfies the goal condition.
	IsGoal(s S) bool
}

// Base provides default Problem behavior for embedding in concrete problems:
// uniform action cost of 1, goal test by equality with the designated Goal
// state, and not-implemented panics for Actions and Result.
//
// Implementations without a single goal state (flood fill, word search)
// override IsGoal to a fixed false or a domain predicate.
type Base[S comparable, A any] struct {
	// Start is the initial state returned by Initial.
	Start S

	// Goal is the designated goal state used by the default IsGoal.
	Goal S
}

// Initial returns the designated start state.
func (b Base[S, A]) Initial() S { return b.Start }

// Actions panics: a concrete Problem must override it.
func (Base[S, A]) Actions(S) []A {
	panic(ErrNotImplemented.Error() + ": Actions")
}

// Result panics: a concrete Problem must override it.
func (Base[S, A]) Result(S, A) S {
	panic(ErrNotImplemented.Error() + ": Result")
}

// ActionCost returns the default uniform step cost of 1.
func (Base[S, A]) ActionCost(S, A, S) float64 { return 1 }

// IsGoal reports whether s equals the designated Goal state.
func (b Base[S, A]) IsGoal(s S) bool { return s == b.Goal }

// Option configures optional behavior of DepthFirst.
// Use with DepthFirst(p, opts...).
type Option[S comparable] func(*Options[S])

// Options holds configurable parameters for DepthFirst traversal.
type Options[S comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the traversal early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a state is marked explored,
	// before the goal test. Returning an error aborts traversal.
	OnVisit func(state S) error

	// MaxDepth, if non-negative, stops expansion beyond the given depth.
	// A limit of 0 expands nothing beyond the initial state.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a Background context, no visit hook,
// and no depth limit.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-goal-test hook,
// called once per explored state.
func WithOnVisit[S comparable](fn func(state S) error) Option[S] {
	return func(o *Options[S]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits expansion depth to limit.
// Nodes at the limit are still goal-tested but never expanded; when the
// limit pruned anything and no goal was found, the result reports Cutoff.
func WithMaxDepth[S comparable](limit int) Option[S] {
	return func(o *Options[S]) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a DepthFirst traversal.
type Result[S comparable] struct {
	// Path is the state sequence from the initial state to a goal state,
	// or nil when no goal was reached.
	Path []S

	// Cost is the accumulated action cost along Path,
	// or +Inf when no goal was reached.
	Cost float64

	// Expanded counts how many nodes were expanded. Diagnostics only.
	Expanded int

	// Cutoff reports that the depth limit pruned at least one branch while
	// no goal was found: a solution may exist beyond MaxDepth.
	Cutoff bool
}

// Found reports whether the traversal reached a goal state.
func (r *Result[S]) Found() bool { return r != nil && r.Path != nil }
