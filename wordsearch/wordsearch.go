// Package wordsearch enumerates every dictionary word discoverable as a
// contiguous 8-directional, non-revisiting path of letters on a grid.
//
// The search runs an explicit-stack depth-first walk from every start cell.
// Search nodes are search.Node values whose parent chain *is* the path: the
// candidate word is rebuilt on demand via search.PathStates, and "already on
// this path" is answered by walking the same chain — no eager path copies on
// the stack.
//
// Prefix pruning: the set of all prefixes of every dictionary word (full
// words included) is computed once; a popped path whose letters form no
// prefix is abandoned immediately.
//
// Termination is guaranteed: a path never revisits a coordinate, so its
// length is bounded by the grid size.
package wordsearch

import (
	"sort"
	"strings"

	"github.com/mirelenko/statewalk/chargrid"
	"github.com/mirelenko/statewalk/search"
)

// boardProblem adapts the letter grid to the search contract.
// States are cell coordinates; actions are neighbor offsets. Revisit
// filtering belongs to the walker, which alone sees the path.
type boardProblem struct {
	search.Base[chargrid.Coord, chargrid.Coord]
	grid *chargrid.Grid
}

// Actions returns the offsets of all in-bounds 8-neighbors of c,
// in fixed offset order.
func (p *boardProblem) Actions(c chargrid.Coord) []chargrid.Coord {
	var moves []chargrid.Coord
	for _, d := range chargrid.Offsets(chargrid.Conn8) {
		if p.grid.InBounds(c.Add(d)) {
			moves = append(moves, d)
		}
	}

	return moves
}

// Result applies offset d to c.
func (p *boardProblem) Result(c, d chargrid.Coord) chargrid.Coord { return c.Add(d) }

// IsGoal always reports false: goal testing happens against the dictionary.
func (p *boardProblem) IsGoal(chargrid.Coord) bool { return false }

// Search returns every dictionary word that can be traced as a
// non-self-intersecting 8-directional path on g, starting from any cell.
// The result deduplicates words found along multiple paths and is sorted.
//
// Degenerate inputs are well-defined: an empty dictionary, or a grid whose
// letters spell no dictionary word, yields an empty word list.
//
// Returns ErrNilGrid for a nil grid or the context error on cancellation.
func Search(g *chargrid.Grid, dict []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		problem:  &boardProblem{grid: g},
		opts:     o,
		words:    make(map[string]struct{}, len(dict)),
		prefixes: buildPrefixSet(dict),
		found:    make(map[string]struct{}),
	}
	for _, word := range dict {
		w.words[word] = struct{}{}
	}

	// Aggregate words found from every start coordinate
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if err := w.searchFrom(chargrid.Coord{Row: row, Col: col}); err != nil {
				return nil, err
			}
		}
	}

	res := &Result{
		Words:          make([]string, 0, len(w.found)),
		PrunedBranches: w.pruned,
	}
	for word := range w.found {
		res.Words = append(res.Words, word)
	}
	sort.Strings(res.Words)

	return res, nil
}

// buildPrefixSet collects every prefix of every word, full words included.
// Prefixes end on rune boundaries, so non-ASCII boards work.
func buildPrefixSet(words []string) map[string]struct{} {
	prefixes := make(map[string]struct{})
	for _, word := range words {
		for i := range word {
			if i > 0 {
				prefixes[word[:i]] = struct{}{}
			}
		}
		if word != "" {
			prefixes[word] = struct{}{}
		}
	}

	return prefixes
}

// walker carries the dictionary structures and the aggregate result.
type walker struct {
	problem  *boardProblem
	opts     Options
	words    map[string]struct{}
	prefixes map[string]struct{}
	found    map[string]struct{}
	pruned   int
}

// searchFrom runs the explicit-stack depth-first walk from one start cell.
func (w *walker) searchFrom(start chargrid.Coord) error {
	stack := []*search.Node[chargrid.Coord, chargrid.Coord]{
		search.NewNode[chargrid.Coord, chargrid.Coord](start),
	}

	var n *search.Node[chargrid.Coord, chargrid.Coord]
	for len(stack) > 0 {
		// 1. Cancellation check, once per pop
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop and rebuild the candidate from the parent chain
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		candidate := w.spell(n)

		// 3. Complete word: record it (the set deduplicates repeats)
		if _, ok := w.words[candidate]; ok {
			w.found[candidate] = struct{}{}
		}

		// 4. Prefix pruning: a dead prefix is not expanded further
		if _, ok := w.prefixes[candidate]; !ok {
			w.pruned++
			continue
		}

		// 5. Extend the path into every neighbor not already on it
		for child := range search.Expand[chargrid.Coord, chargrid.Coord](w.problem, n) {
			if onPath(n, child.State) {
				continue
			}
			stack = append(stack, child)
		}
	}

	return nil
}

// spell concatenates the letters along the path ending at n.
func (w *walker) spell(n *search.Node[chargrid.Coord, chargrid.Coord]) string {
	var b strings.Builder
	for _, c := range search.PathStates(n) {
		b.WriteRune(w.problem.grid.At(c))
	}

	return b.String()
}

// onPath reports whether c already occurs on the path ending at n.
func onPath(n *search.Node[chargrid.Coord, chargrid.Coord], c chargrid.Coord) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.State == c {
			return true
		}
	}

	return false
}
