// Package search implements single-result depth-first search over any
// Problem, plus the SearchNode tree and expansion operator the other
// statewalk strategies are built on.
//
// Key features:
//   - DepthFirst(p, opts...): find some path from the initial state to a goal
//   - Expand(p, n): lazy child generation in Actions order
//   - PathStates / PathActions: parent-chain path reconstruction
//   - Cancellation via context.Context, depth limiting, visit hooks
//
// DepthFirst is plain depth-first search: it returns *a* path, not the
// cheapest or shortest one. Which path depends on the enumeration order of
// Problem.Actions, because the frontier is LIFO.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable state space (each state explored once).
//   - Memory: O(V) for the frontier and explored set.
//
// Errors:
//
//   - ErrNilProblem          if p is nil.
//   - context.Canceled       if ctx is done.
//   - any error returned by OnVisit.
//
// The absence of a path is NOT an error: DepthFirst reports it as a Result
// with a nil Path and +Inf Cost, which callers must check via Found().
package search

import (
	"fmt"
	"math"
)

// frontierItem pairs a search node with its depth in the tree.
type frontierItem[S comparable, A any] struct {
	node  *Node[S, A]
	depth int
}

// DepthFirst finds some path from p's initial state to a goal state using an
// explicit LIFO frontier and a set of permanently-explored states.
//
// The loop pops the top of the frontier, discards already-explored states,
// marks the state explored, goal-tests it, and otherwise pushes all children
// in Actions order — so the most recently pushed child is explored next.
//
// If the frontier empties without reaching a goal, the Result carries a nil
// Path and +Inf Cost. Termination is guaranteed on finite state spaces
// because each state is explored at most once.
func DepthFirst[S comparable, A any](p Problem[S, A], opts ...Option[S]) (*Result[S], error) {
	// 1. Validate input
	if p == nil {
		return nil, ErrNilProblem
	}

	// 2. Apply options
	o := DefaultOptions[S]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Seed frontier with a root node for the initial state
	frontier := []frontierItem[S, A]{{node: NewNode[S, A](p.Initial())}}
	explored := make(map[S]struct{})
	res := &Result[S]{Cost: math.Inf(1)}

	// cut records depth-limit pruning; only meaningful when no goal is found
	var cut bool
	var it frontierItem[S, A]
	for len(frontier) > 0 {
		// 4. Cancellation check, once per pop
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		// 5. Pop the top of the LIFO frontier
		it = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		// 6. Discard states already explored
		if _, seen := explored[it.node.State]; seen {
			continue
		}
		explored[it.node.State] = struct{}{}

		// 7. Visit hook
		if o.OnVisit != nil {
			if err := o.OnVisit(it.node.State); err != nil {
				return res, fmt.Errorf("search: OnVisit hook for state %v: %w", it.node.State, err)
			}
		}

		// 8. Goal test on the explored state
		if p.IsGoal(it.node.State) {
			res.Path = PathStates(it.node)
			res.Cost = it.node.PathCost

			return res, nil
		}

		// 9. Depth limit: goal-tested but never expanded
		if o.MaxDepth >= 0 && it.depth >= o.MaxDepth {
			cut = true
			continue
		}

		// 10. Push children; last pushed is explored first
		res.Expanded++
		for child := range Expand(p, it.node) {
			frontier = append(frontier, frontierItem[S, A]{node: child, depth: it.depth + 1})
		}
	}

	res.Cutoff = cut

	return res, nil
}
