// Package chargrid defines the grid types, connectivity constants, and
// sentinel errors shared by the grid-based statewalk strategies.
package chargrid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("chargrid: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("chargrid: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("chargrid: coordinate out of bounds")
)

// Coord addresses a grid cell by 0-based (row, column).
type Coord struct {
	Row, Col int
}

// Add returns the coordinate shifted by offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, diagonals included.
	Conn8
)

// Neighbor offsets, ordered. The ordering is part of the contract: traversal
// strategies enumerate moves in exactly this order, and depth-first result
// selection is order-dependent.
var (
	conn4Offsets = []Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	conn8Offsets = []Coord{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Offsets returns the ordered neighbor offsets for conn.
// The returned slice is shared and must be treated as read-only.
func Offsets(conn Connectivity) []Coord {
	if conn == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}
