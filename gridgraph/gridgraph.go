package gridgraph

import "fmt"

// BoolGrid is a dense, row-major W×H grid of flags.
// Accessors are bounds-checked; the zero value is unusable, use NewBoolGrid.
type BoolGrid struct {
	size  Size
	cells []bool
	count int
}

// NewBoolGrid allocates an all-false grid of the given size.
// Returns ErrInvalidSize if either dimension is non-positive.
// Complexity: O(W×H) time and memory.
func NewBoolGrid(size Size) (*BoolGrid, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	return &BoolGrid{
		size:  size,
		cells: make([]bool, size.Cells()),
	}, nil
}

// Size returns the grid dimensions.
func (g *BoolGrid) Size() Size {
	return g.size
}

// Get reports the flag at c. Out-of-bounds coordinates read as false.
// Complexity: O(1).
func (g *BoolGrid) Get(c Coord) bool {
	if !g.size.Contains(c) {
		return false
	}
	return g.cells[g.size.Index(c)]
}

// Set stores v at c and returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(1).
func (g *BoolGrid) Set(c Coord, v bool) error {
	if !g.size.Contains(c) {
		return fmt.Errorf("%w: %s not in %s", ErrOutOfBounds, c, g.size)
	}
	idx := g.size.Index(c)
	if g.cells[idx] != v {
		if v {
			g.count++
		} else {
			g.count--
		}
	}
	g.cells[idx] = v
	return nil
}

// Count returns the number of true cells.
// Complexity: O(1).
func (g *BoolGrid) Count() int {
	return g.count
}

// Reset clears every cell without reallocating.
func (g *BoolGrid) Reset() {
	clear(g.cells)
	g.count = 0
}

// Neighbors appends to dst every in-bounds orthogonal neighbor of c, in
// canonical direction order, for which keep returns true. A nil keep accepts
// all neighbors. dst is returned so callers can reuse a scratch slice.
// Complexity: O(1).
func Neighbors(size Size, c Coord, dst []Coord, keep func(Coord) bool) []Coord {
	for _, d := range Directions {
		n := c.Add(d)
		if !size.Contains(n) {
			continue
		}
		if keep != nil && !keep(n) {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}
