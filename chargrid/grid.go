// Package chargrid treats a rectangular 2D array of single-character cells
// as the board every grid strategy walks. It provides:
//
//   - Validated construction from rune rows or strings
//   - Bounds checking, cell access, cloning
//   - Ordered 4- and 8-directional neighbor offsets
//
// Grids are mutable: floodfill recolors cells in place via Set. All other
// strategies only read. Access outside [0,rows)×[0,cols) is the caller's
// defect; strategies guard every access with InBounds.
package chargrid

// Grid is a rectangular board of single-character (rune) cells,
// addressed by 0-based (row, column).
type Grid struct {
	rows, cols int
	cells      [][]rune
}

// New constructs a Grid from a non-empty, rectangular 2D rune slice.
// The input is deep-copied so later mutation of cells does not leak out.
// Returns ErrEmptyGrid or ErrNonRectangular on invalid input.
// Complexity: O(rows×cols) time and memory.
func New(cells [][]rune) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to own the storage
	cp := make([][]rune, len(cells))
	for i, row := range cells {
		cp[i] = make([]rune, cols)
		copy(cp[i], row)
	}

	return &Grid{rows: len(cells), cols: cols, cells: cp}, nil
}

// FromStrings constructs a Grid from one string per row.
// Rows must be non-empty and of equal rune length.
func FromStrings(rows []string) (*Grid, error) {
	cells := make([][]rune, len(rows))
	for i, r := range rows {
		cells[i] = []rune(r)
	}

	return New(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell value at c. The caller must ensure InBounds(c).
func (g *Grid) At(c Coord) rune { return g.cells[c.Row][c.Col] }

// Set writes the cell value at c. The caller must ensure InBounds(c).
func (g *Grid) Set(c Coord, r rune) { g.cells[c.Row][c.Col] = r }

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := make([][]rune, g.rows)
	for i, row := range g.cells {
		cp[i] = make([]rune, g.cols)
		copy(cp[i], row)
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cp}
}

// Strings renders the grid as one string per row.
func (g *Grid) Strings() []string {
	out := make([]string, g.rows)
	for i, row := range g.cells {
		out[i] = string(row)
	}

	return out
}

// Find returns all coordinates holding r, in row-major order.
// Complexity: O(rows×cols).
func (g *Grid) Find(r rune) []Coord {
	var found []Coord
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col] == r {
				found = append(found, Coord{Row: row, Col: col})
			}
		}
	}

	return found
}
