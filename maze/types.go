package maze

import (
	"errors"

	"github.com/katalvlaran/mazegrow/gridgraph"
)

// Sentinel errors for maze store operations.
var (
	// ErrInvalidSize indicates a maze with a non-positive width or height.
	ErrInvalidSize = errors.New("maze: size must be at least 1x1")

	// ErrOutOfBounds indicates a coordinate outside the maze.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")

	// ErrNotAdjacent indicates a carve between cells that are not orthogonal neighbors.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")

	// ErrAlreadyCarved indicates the passage between two cells already exists.
	ErrAlreadyCarved = errors.New("maze: passage already carved")
)

// Edge is an undirected passage between two adjacent cells.
// Edges returned by the store always have From preceding To in row-major order.
type Edge struct {
	From gridgraph.Coord
	To   gridgraph.Coord
}

// Walls reports which sides of a cell are closed.
type Walls struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Up    bool `json:"up"`
	Down  bool `json:"down"`
}

// CellExport is the exported view of one cell.
type CellExport struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Walls Walls `json:"walls"`
}

// Export is a render-ready snapshot of the maze. Rows are indexed by Y.
type Export struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Edges  int            `json:"edges"`
	Cells  [][]CellExport `json:"cells"`
}

// WalkOption configures Reachable.
type WalkOption func(*walkOptions)

type walkOptions struct {
	onVisit func(c gridgraph.Coord, depth int)
}

// WithOnVisit registers a hook called for each cell reached, in BFS order,
// together with its passage distance from the start.
func WithOnVisit(fn func(c gridgraph.Coord, depth int)) WalkOption {
	return func(o *walkOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}
