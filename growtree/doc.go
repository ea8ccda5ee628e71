// Package growtree generates perfect mazes with the growing-tree family of
// algorithms, one step at a time, so a caller can animate construction.
//
// What
//
//   - A Generator keeps a frontier of candidate cells that may still grow.
//   - Each Step picks a candidate with a Strategy, then either carves a
//     passage to a random unvisited neighbor (which joins the frontier) or,
//     when none is left, retires the candidate as a dead end.
//   - Strategies: Newest (recursive-backtracker texture), Random (Prim-like
//     texture) and NewestRandom (a fair coin between the two per step).
//   - Listeners (WithOnVisit, WithOnDeadEnd, WithOnCarve) and observers
//     (WithObserver, WithLogger) are called synchronously inside Step.
//
// Guarantees
//
//   - Every cell is visited exactly once; OnVisit fires once per cell.
//   - A cell enters the frontier at most once, so every carve joins the tree
//     to a new cell and the result has exactly W×H−1 passages with no cycle.
//   - The generator is Finished iff a Step observed an empty frontier. A full
//     run takes (W×H−1) carving steps, W×H dead-end steps and one final step.
//
// Determinism
//
//	All randomness comes from the injected *rand.Rand (WithRand / WithSeed).
//	Neighbors are scanned in the fixed order left, right, up, down, so equal
//	seeds reproduce the same event sequence.
//
// Usage
//
//	g, err := growtree.New(gridgraph.Size{Width: 20, Height: 10}, gridgraph.Coord{}, growtree.Random,
//		growtree.WithSeed(42),
//		growtree.WithOnCarve(func(src, dst gridgraph.Coord) { /* draw */ }),
//	)
//	if err != nil {
//		// ErrInvalidSize, ErrStartOutOfBounds, ErrUnknownStrategy or ErrOptionViolation
//	}
//	g.Initialize()
//	for !g.Finished() {
//		if err := g.Step(); err != nil {
//			// only on broken invariants
//		}
//	}
//	m := g.Maze()
//
// Concurrency
//
//	A Generator is single-threaded. Hosts that share one across goroutines
//	must serialize access themselves.
package growtree
