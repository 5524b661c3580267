// Package floodfill recolors the maximal 4-connected region of target-colored
// cells reachable from a start coordinate, in place.
//
// The walk is depth-first over an explicit LIFO stack rather than recursion:
// a filled region can span the whole grid, so call-stack depth proportional
// to the region size is not acceptable for large grids. Neighbors are pushed
// in reverse offset order, so pop order matches the recursive N, S, W, E
// reference behavior exactly.
//
// Complexity: O(rows×cols) time and memory.
package floodfill

import (
	"errors"

	"github.com/mirelenko/statewalk/chargrid"
)

// Sentinel errors for flood fill.
var (
	// ErrNilGrid is returned when a nil *chargrid.Grid is passed to Fill.
	ErrNilGrid = errors.New("floodfill: grid is nil")

	// ErrOutOfBounds is returned when the start coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("floodfill: start coordinate out of bounds")
)

// Fill replaces every target-colored cell in the 4-connected region around
// start with repl, mutating g in place and returning the same grid.
//
// Guard: if the cell at start already equals repl, the grid is returned
// unmodified with no traversal — which makes a repeated Fill a no-op. The
// guard intentionally tests repl, not target: when the start cell matches
// neither, the walk still runs and changes nothing, since every step
// requires target equality. Do not "fix" the guard to test target; expected
// outputs depend on this exact condition.
//
// Cells outside the region, and cells not equal to target, are never written.
func Fill(g *chargrid.Grid, start chargrid.Coord, target, repl rune) (*chargrid.Grid, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, ErrOutOfBounds
	}

	// 2. Fast path: start cell already carries the replacement color
	if g.At(start) == repl {
		return g, nil
	}

	// 3. Depth-first walk over an explicit LIFO stack
	offsets := chargrid.Offsets(chargrid.Conn4)
	stack := []chargrid.Coord{start}

	var c chargrid.Coord
	for len(stack) > 0 {
		c = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Out-of-bounds or non-matching cells terminate the branch
		if !g.InBounds(c) || g.At(c) != target {
			continue
		}

		g.Set(c, repl)

		// Reverse push order keeps pops in offset order
		for i := len(offsets) - 1; i >= 0; i-- {
			stack = append(stack, c.Add(offsets[i]))
		}
	}

	return g, nil
}
