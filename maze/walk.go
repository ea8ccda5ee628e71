package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrow/gridgraph"
)

// walker encapsulates mutable BFS state over carved passages.
type walker struct {
	m       *Maze
	opts    walkOptions
	queue   []gridgraph.Coord
	depth   []int // row-major; -1 ⇒ unseen
	scratch []gridgraph.Coord
}

// Reachable counts the cells reachable from start through carved passages.
// Returns ErrOutOfBounds if start is outside the maze.
// Complexity: O(W×H) time and memory.
func (m *Maze) Reachable(start gridgraph.Coord, opts ...WalkOption) (int, error) {
	if !m.size.Contains(start) {
		return 0, fmt.Errorf("%w: walk start %s", ErrOutOfBounds, start)
	}
	o := walkOptions{onVisit: func(gridgraph.Coord, int) {}}
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		m:       m,
		opts:    o,
		queue:   make([]gridgraph.Coord, 0, m.size.Cells()),
		depth:   make([]int, m.size.Cells()),
		scratch: make([]gridgraph.Coord, 0, len(gridgraph.Directions)),
	}
	for i := range w.depth {
		w.depth[i] = -1
	}
	w.enqueue(start, 0)

	return w.loop(), nil
}

func (w *walker) enqueue(c gridgraph.Coord, d int) {
	w.depth[w.m.size.Index(c)] = d
	w.queue = append(w.queue, c)
}

// loop drains the queue and returns the number of cells visited.
func (w *walker) loop() int {
	visited := 0
	for len(w.queue) > 0 {
		c := w.queue[0]
		w.queue = w.queue[1:]
		d := w.depth[w.m.size.Index(c)]
		visited++
		w.opts.onVisit(c, d)

		w.scratch = w.m.appendPassages(c, w.scratch[:0])
		for _, n := range w.scratch {
			if w.depth[w.m.size.Index(n)] < 0 {
				w.enqueue(n, d+1)
			}
		}
	}
	return visited
}

// IsPerfect reports whether the passages form a spanning tree: exactly
// W×H−1 passages and every cell reachable from the origin. A connected graph
// with V−1 edges cannot contain a cycle.
func (m *Maze) IsPerfect() bool {
	if m.edges != m.size.Cells()-1 {
		return false
	}
	n, err := m.Reachable(gridgraph.Coord{})
	return err == nil && n == m.size.Cells()
}
