// Package mazegrow builds perfect mazes step by step with the growing-tree
// family of algorithms, so each carved passage can be animated as it happens.
//
// What is in the module?
//
//	gridgraph/     coordinates, sizes, orthogonal directions, dense flag grids
//	maze/          the maze store: carved passages, queries, JSON export, perfect-maze check
//	growtree/      candidate strategies (Newest, Random, NewestRandom) and the stepwise Generator
//	observability/ Observer, Event, slog-backed and multicast observers
//	cmd/mazegrow/  command line driver that writes a generated maze as JSON
//
// Quick ASCII example (3×2, Newest, one possible result):
//
//	(0,1)───(1,1)───(2,1)
//	                  │
//	(0,0)───(1,0)───(2,0)
//
// Every maze has exactly one path between any two cells: W×H cells joined by
// W×H−1 passages.
//
//	go get github.com/katalvlaran/mazegrow/growtree
package mazegrow
