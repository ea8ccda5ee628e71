package gridgraph

import "fmt"

// Coord identifies a single cell of a rectangular grid.
type Coord struct {
	X, Y int
}

// Add returns c shifted by the delta of d.
func (c Coord) Add(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String formats c as "x,y", the same form used for vertex IDs elsewhere.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Size holds grid dimensions. A usable Size has Width > 0 and Height > 0.
type Size struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Cells returns Width×Height.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// Contains reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// Index maps c to its row-major index: Y*Width + X.
// The caller must ensure c is in bounds.
func (s Size) Index(c Coord) int {
	return c.Y*s.Width + c.X
}

// Coordinate converts a row-major index back to a Coord.
func (s Size) Coordinate(idx int) Coord {
	return Coord{X: idx % s.Width, Y: idx / s.Width}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Direction is one of the four orthogonal moves on the grid.
type Direction uint8

const (
	// Left moves along -X.
	Left Direction = iota
	// Right moves along +X.
	Right
	// Up moves along +Y.
	Up
	// Down moves along -Y.
	Down
)

// Directions lists the four orthogonal directions in canonical order:
// left, right, up, down. Neighbor scans always follow this order.
var Directions = [4]Direction{Left, Right, Up, Down}

var deltas = [4][2]int{
	Left:  {-1, 0},
	Right: {1, 0},
	Up:    {0, 1},
	Down:  {0, -1},
}

// Delta returns the (dx, dy) unit offset of d.
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Bit returns the single-bit mask of d, used by wall/passage bitsets.
func (d Direction) Bit() uint8 {
	return 1 << d
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionBetween returns the direction leading from a to b when the two
// cells are orthogonally adjacent. ok is false otherwise.
func DirectionBetween(a, b Coord) (d Direction, ok bool) {
	for _, d = range Directions {
		if a.Add(d) == b {
			return d, true
		}
	}
	return 0, false
}
