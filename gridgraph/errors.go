package gridgraph

import "errors"

var (
	// ErrInvalidSize indicates a grid with a non-positive width or height.
	ErrInvalidSize = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
