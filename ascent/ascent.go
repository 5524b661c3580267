// Package ascent finds the longest strictly-ascending simple path on a
// character grid: each step moves to an 8-directionally adjacent cell whose
// rune is exactly one greater than the current cell's rune.
//
// The walk is classic backtracking: one visited set bounds only the active
// recursion branch, added before the recursive call and removed after it, so
// sibling branches may reuse the same cells.
//
// Complexity: exponential in the worst case (simple-path enumeration), kept
// practical by the ascending-rune constraint, which also bounds recursion
// depth by the number of distinct rune values on the grid.
package ascent

import (
	"fmt"

	"github.com/mirelenko/statewalk/chargrid"
	"github.com/mirelenko/statewalk/search"
)

// stepProblem adapts an ascending-rune grid walk to the search contract.
// States are cell coordinates; actions are neighbor offsets.
type stepProblem struct {
	search.Base[chargrid.Coord, chargrid.Coord]
	grid *chargrid.Grid
}

// Actions returns the offsets of all in-bounds 8-neighbors whose rune is
// exactly one greater than the rune at c, in fixed offset order.
func (p *stepProblem) Actions(c chargrid.Coord) []chargrid.Coord {
	cur := p.grid.At(c)
	var moves []chargrid.Coord
	for _, d := range chargrid.Offsets(chargrid.Conn8) {
		n := c.Add(d)
		if p.grid.InBounds(n) && p.grid.At(n) == cur+1 {
			moves = append(moves, d)
		}
	}

	return moves
}

// Result applies offset d to c.
func (p *stepProblem) Result(c, d chargrid.Coord) chargrid.Coord { return c.Add(d) }

// IsGoal always reports false: there is no goal cell, only exhaustion.
func (p *stepProblem) IsGoal(chargrid.Coord) bool { return false }

// walker carries the shared per-branch visited set and options.
type walker struct {
	problem *stepProblem
	opts    Options
	visited map[chargrid.Coord]struct{}
}

// Longest returns the cell count of the longest strictly-ascending simple
// path starting from any cell equal to start. A start cell with no valid
// successor counts 1; a grid with no start cells counts 0.
//
// Returns ErrNilGrid for a nil grid, the context error on cancellation, or
// any error from the OnVisit hook.
func Longest(g *chargrid.Grid, start rune, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		problem: &stepProblem{grid: g},
		opts:    o,
		visited: make(map[chargrid.Coord]struct{}),
	}

	// Maximum over every start cell; each descend leaves visited empty again.
	best := 0
	for _, c := range g.Find(start) {
		length, err := w.descend(search.NewNode[chargrid.Coord, chargrid.Coord](c))
		if err != nil {
			return 0, err
		}
		if length > best {
			best = length
		}
	}

	return best, nil
}

// descend explores every ascending extension of the branch ending at n and
// returns 1 + the best child length. The visited set is restored before
// returning, so it always bounds exactly the active branch.
func (w *walker) descend(n *search.Node[chargrid.Coord, chargrid.Coord]) (int, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return 0, w.opts.Ctx.Err()
	default:
	}

	// 2. Add to the active branch
	w.visited[n.State] = struct{}{}

	// 3. Visit hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n.State); err != nil {
			return 0, fmt.Errorf("ascent: OnVisit hook at %v: %w", n.State, err)
		}
	}

	// 4. Recurse into each unvisited ascending neighbor
	longest := 0
	for child := range search.Expand[chargrid.Coord, chargrid.Coord](w.problem, n) {
		if _, onBranch := w.visited[child.State]; onBranch {
			continue
		}
		length, err := w.descend(child)
		if err != nil {
			return 0, err
		}
		if length > longest {
			longest = length
		}
	}

	// 5. Backtrack: remove from the active branch
	delete(w.visited, n.State)

	return 1 + longest, nil
}
