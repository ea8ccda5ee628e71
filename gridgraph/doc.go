// Package gridgraph provides the grid geometry shared by the maze store and
// the growth engine: coordinates, dimensions, orthogonal directions, and a
// dense bounds-checked flag grid.
//
// What:
//
//   - Coord and Size with row-major Index/Coordinate conversions.
//   - Direction with the canonical scan order left, right, up, down.
//   - BoolGrid: a W×H flag grid with O(1) Get/Set/Count.
//   - Neighbors: filtered orthogonal neighbor scan into a reusable slice.
//
// Complexity:
//
//   - Every accessor is O(1); NewBoolGrid is O(W×H) time and memory.
//
// Errors:
//
//   - ErrInvalidSize: width or height is not positive.
//   - ErrOutOfBounds: a write targeted a coordinate outside the grid.
package gridgraph
