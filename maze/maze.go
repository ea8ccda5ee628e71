// Package maze stores the result of maze generation: a W×H grid whose
// adjacent cells are joined by carved passages.
//
// Every passage is recorded on both endpoints as a bit in a per-cell mask,
// so adjacency queries are O(1). Passages are only ever added.
package maze

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/mazegrow/gridgraph"
)

// Maze records which pairs of adjacent cells are connected.
// It is not safe for concurrent mutation.
type Maze struct {
	size  gridgraph.Size
	open  []uint8 // row-major; bit d set ⇒ passage towards Direction d
	edges int
}

// New allocates a maze of the given size with every wall standing.
// Returns ErrInvalidSize if either dimension is non-positive.
// Complexity: O(W×H).
func New(size gridgraph.Size) (*Maze, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidSize, size)
	}
	return &Maze{
		size: size,
		open: make([]uint8, size.Cells()),
	}, nil
}

// Size returns the maze dimensions.
func (m *Maze) Size() gridgraph.Size {
	return m.size
}

// Carve opens the passage between adjacent cells a and b.
// Returns ErrOutOfBounds, ErrNotAdjacent or ErrAlreadyCarved; on error the maze is unchanged.
// Complexity: O(1).
func (m *Maze) Carve(a, b gridgraph.Coord) error {
	if !m.size.Contains(a) || !m.size.Contains(b) {
		return fmt.Errorf("%w: carve %s-%s in %s", ErrOutOfBounds, a, b, m.size)
	}
	d, ok := gridgraph.DirectionBetween(a, b)
	if !ok {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	ia, ib := m.size.Index(a), m.size.Index(b)
	if m.open[ia]&d.Bit() != 0 {
		return fmt.Errorf("%w: %s-%s", ErrAlreadyCarved, a, b)
	}
	m.open[ia] |= d.Bit()
	m.open[ib] |= d.Opposite().Bit()
	m.edges++

	return nil
}

// Open reports whether c has a passage towards d. Out-of-bounds cells are closed.
func (m *Maze) Open(c gridgraph.Coord, d gridgraph.Direction) bool {
	if !m.size.Contains(c) {
		return false
	}
	return m.open[m.size.Index(c)]&d.Bit() != 0
}

// Connected reports whether a passage joins a and b directly.
func (m *Maze) Connected(a, b gridgraph.Coord) bool {
	d, ok := gridgraph.DirectionBetween(a, b)
	if !ok {
		return false
	}
	return m.Open(a, d)
}

// Passages returns the cells reachable from c through one passage, in
// canonical direction order.
func (m *Maze) Passages(c gridgraph.Coord) []gridgraph.Coord {
	return m.appendPassages(c, nil)
}

func (m *Maze) appendPassages(c gridgraph.Coord, dst []gridgraph.Coord) []gridgraph.Coord {
	if !m.size.Contains(c) {
		return dst
	}
	mask := m.open[m.size.Index(c)]
	for _, d := range gridgraph.Directions {
		if mask&d.Bit() != 0 {
			dst = append(dst, c.Add(d))
		}
	}
	return dst
}

// Degree returns the number of passages leaving c.
func (m *Maze) Degree(c gridgraph.Coord) int {
	n := 0
	for _, d := range gridgraph.Directions {
		if m.Open(c, d) {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of carved passages.
// Complexity: O(1).
func (m *Maze) EdgeCount() int {
	return m.edges
}

// Edges lists every passage once, ordered by the row-major index of its
// lower endpoint and then by direction.
// Complexity: O(W×H).
func (m *Maze) Edges() []Edge {
	out := make([]Edge, 0, m.edges)
	for idx, mask := range m.open {
		c := m.size.Coordinate(idx)
		// Right and Up lead to higher indices, so each edge is seen once.
		if mask&gridgraph.Right.Bit() != 0 {
			out = append(out, Edge{From: c, To: c.Add(gridgraph.Right)})
		}
		if mask&gridgraph.Up.Bit() != 0 {
			out = append(out, Edge{From: c, To: c.Add(gridgraph.Up)})
		}
	}
	return out
}

// Export builds a wall-oriented snapshot suitable for rendering.
// Complexity: O(W×H).
func (m *Maze) Export() Export {
	rows := make([][]CellExport, m.size.Height)
	for y := 0; y < m.size.Height; y++ {
		row := make([]CellExport, m.size.Width)
		for x := 0; x < m.size.Width; x++ {
			c := gridgraph.Coord{X: x, Y: y}
			row[x] = CellExport{
				X: x,
				Y: y,
				Walls: Walls{
					Left:  !m.Open(c, gridgraph.Left),
					Right: !m.Open(c, gridgraph.Right),
					Up:    !m.Open(c, gridgraph.Up),
					Down:  !m.Open(c, gridgraph.Down),
				},
			}
		}
		rows[y] = row
	}
	return Export{
		Width:  m.size.Width,
		Height: m.size.Height,
		Edges:  m.edges,
		Cells:  rows,
	}
}

// MarshalJSON encodes the maze as its Export.
func (m *Maze) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Export())
}
