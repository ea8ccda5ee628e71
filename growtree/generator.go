package growtree

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazegrow/gridgraph"
	"github.com/katalvlaran/mazegrow/maze"
	"github.com/katalvlaran/mazegrow/observability"
)

const eventSource = "growtree.Generator"

// Generator grows a perfect maze one step at a time.
//
// Size, start and strategy are fixed at construction. Initialize allocates the
// working state; Step then performs one unit of work per call until Finished
// reports true. A Generator assumes exclusive, sequential access.
type Generator struct {
	size     gridgraph.Size
	start    gridgraph.Coord
	strategy Strategy
	opts     Options
	rng      *rand.Rand

	state     State
	runID     string
	steps     int
	visited   *gridgraph.BoolGrid // set when a cell is first processed
	inTree    *gridgraph.BoolGrid // set when a cell enters the frontier
	frontier  *arraylist.List     // of gridgraph.Coord
	neighbors []gridgraph.Coord   // per-step scratch
	maze      *maze.Maze
}

// New validates the parameters and returns an Idle generator.
// Returns ErrInvalidSize, ErrStartOutOfBounds, ErrUnknownStrategy or
// ErrOptionViolation.
func New(size gridgraph.Size, start gridgraph.Coord, strategy Strategy, opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !size.Valid() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidSize, size)
	}
	if !size.Contains(start) {
		return nil, fmt.Errorf("%w: %s not in %s", ErrStartOutOfBounds, start, size)
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}

	return &Generator{
		size:     size,
		start:    start,
		strategy: strategy,
		opts:     o,
		rng:      o.Rand,
		state:    Idle,
	}, nil
}

// Initialize allocates an all-unvisited grid, seeds the frontier with the
// start cell and creates a fresh maze. Calling it again discards the previous
// maze and restarts generation; the random stream is not rewound.
func (g *Generator) Initialize() {
	// size was validated by New, so these allocations cannot fail.
	g.visited, _ = gridgraph.NewBoolGrid(g.size)
	g.inTree, _ = gridgraph.NewBoolGrid(g.size)
	g.maze, _ = maze.New(g.size)
	g.neighbors = make([]gridgraph.Coord, 0, len(gridgraph.Directions))
	g.frontier = arraylist.New()

	_ = g.inTree.Set(g.start, true)
	g.frontier.Add(g.start)
	g.steps = 0
	g.runID = uuid.New().String()
	g.state = Running

	g.emit(observability.EventGenerationStart, map[string]any{
		"width":    g.size.Width,
		"height":   g.size.Height,
		"start":    g.start.String(),
		"strategy": g.strategy.String(),
	})
}

// Step performs one unit of generation work:
//
//  1. If the frontier is empty, the generator becomes Finished.
//  2. Otherwise a candidate is chosen by the strategy and, if this is its
//     first selection, marked visited and announced to OnVisit listeners.
//  3. If it has no neighbor outside the tree it is removed from the frontier
//     (dead end); otherwise one such neighbor is chosen uniformly, appended to
//     the frontier and the passage between them is carved.
//
// Step returns ErrNotInitialized before Initialize and is a no-op once Finished.
// Complexity: O(1) amortized, except dead-end removal which is O(frontier).
func (g *Generator) Step() error {
	switch g.state {
	case Idle:
		return ErrNotInitialized
	case Finished:
		return nil
	}

	n := g.frontier.Size()
	if n == 0 {
		g.state = Finished
		g.emit(observability.EventGenerationComplete, map[string]any{
			"steps": g.steps,
			"edges": g.maze.EdgeCount(),
		})
		return nil
	}
	g.steps++

	i := g.strategy.Select(g.rng, n)
	candidate := g.candidateAt(i)

	if !g.visited.Get(candidate) {
		_ = g.visited.Set(candidate, true)
		for _, fn := range g.opts.OnVisit {
			fn(candidate)
		}
		g.emit(observability.EventCellVisit, map[string]any{"pos": candidate.String()})
	}

	g.neighbors = gridgraph.Neighbors(g.size, candidate, g.neighbors, func(c gridgraph.Coord) bool {
		return !g.inTree.Get(c)
	})
	defer func() { g.neighbors = g.neighbors[:0] }()

	if len(g.neighbors) == 0 {
		g.frontier.Remove(i)
		for _, fn := range g.opts.OnDeadEnd {
			fn(candidate)
		}
		g.emit(observability.EventCellDeadEnd, map[string]any{"pos": candidate.String()})
		return nil
	}

	next := g.neighbors[g.rng.Intn(len(g.neighbors))]
	if err := g.maze.Carve(candidate, next); err != nil {
		return fmt.Errorf("growtree: step %d: %w", g.steps, err)
	}
	_ = g.inTree.Set(next, true)
	g.frontier.Add(next)
	for _, fn := range g.opts.OnCarve {
		fn(candidate, next)
	}
	g.emit(observability.EventPassageCarve, map[string]any{
		"src": candidate.String(),
		"dst": next.String(),
	})

	return nil
}

// Run steps until the generator is Finished, initializing it first if needed.
// ctx is checked before every step; cancellation leaves a partial maze and
// returns ctx.Err().
func (g *Generator) Run(ctx context.Context) error {
	if g.state == Idle {
		g.Initialize()
	}
	for g.state != Finished {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Generate builds a complete maze in one call.
func Generate(ctx context.Context, size gridgraph.Size, start gridgraph.Coord, strategy Strategy, opts ...Option) (*maze.Maze, error) {
	g, err := New(size, start, strategy, opts...)
	if err != nil {
		return nil, err
	}
	if err = g.Run(ctx); err != nil {
		return nil, err
	}
	return g.Maze(), nil
}

func (g *Generator) candidateAt(i int) gridgraph.Coord {
	v, _ := g.frontier.Get(i)
	return v.(gridgraph.Coord)
}

// emit builds an event only when an observer is configured.
func (g *Generator) emit(t observability.EventType, data map[string]any) {
	if g.opts.Observer == nil {
		return
	}
	data["run_id"] = g.runID
	data["step"] = g.steps
	if g.frontier != nil {
		data["frontier"] = g.frontier.Size()
	}
	g.opts.Observer.OnEvent(g.opts.Ctx, observability.Event{
		Type:      t,
		Timestamp: time.Now(),
		Source:    eventSource,
		Data:      data,
	})
}

// Finished reports whether the frontier has been exhausted.
func (g *Generator) Finished() bool { return g.state == Finished }

// State returns the lifecycle state.
func (g *Generator) State() State { return g.state }

// Maze returns the maze being built, or nil before Initialize.
// Ownership passes to the caller; the generator keeps writing to it until Finished.
func (g *Generator) Maze() *maze.Maze { return g.maze }

// Size returns the grid dimensions.
func (g *Generator) Size() gridgraph.Size { return g.size }

// Start returns the start cell.
func (g *Generator) Start() gridgraph.Coord { return g.start }

// Strategy returns the candidate selection strategy.
func (g *Generator) Strategy() Strategy { return g.strategy }

// RunID identifies the current run in emitted events. Empty before Initialize.
func (g *Generator) RunID() string { return g.runID }

// Steps returns the number of steps that did work since Initialize.
// The final step that observes an empty frontier is not counted.
func (g *Generator) Steps() int { return g.steps }

// FrontierLen returns the number of candidates still eligible for growth.
func (g *Generator) FrontierLen() int {
	if g.frontier == nil {
		return 0
	}
	return g.frontier.Size()
}

// Frontier returns a copy of the candidates in insertion order.
func (g *Generator) Frontier() []gridgraph.Coord {
	if g.frontier == nil {
		return nil
	}
	out := make([]gridgraph.Coord, 0, g.frontier.Size())
	it := g.frontier.Iterator()
	for it.Next() {
		out = append(out, it.Value().(gridgraph.Coord))
	}
	return out
}

// Visited reports whether c has been processed at least once.
func (g *Generator) Visited(c gridgraph.Coord) bool {
	return g.visited != nil && g.visited.Get(c)
}

// VisitedCount returns the number of visited cells.
func (g *Generator) VisitedCount() int {
	if g.visited == nil {
		return 0
	}
	return g.visited.Count()
}
