// Package search runs one of four traversal strategies over a grid.Grid
// and reconstructs the route they find.
//
// What
//
//   - BFS:      FIFO frontier, marks on discovery; shortest in edge count.
//   - DFS:      LIFO frontier, visited-check on pop; any path, not shortest.
//   - Dijkstra: min-distance frontier with lazy duplicates; shortest.
//   - AStar:    min f=g+h open set with Manhattan h; shortest.
//   - Reconstruct walks a PredecessorMap from end back to start.
//   - TracePath marks a reconstructed route as grid.Path.
//
// Every cell an algorithm marks grid.Visited is reported through an Emitter
// immediately after the write, in the algorithm's exact discovery/expansion
// order. The Emitter is where animation happens: package animate implements
// one that renders each event and then sleeps for the configured delay.
// Without WithEmitter the algorithms run at full speed with no events.
//
// Tie-breaking
//
//	All four iterate grid.Neighbors order (up, down, left, right).
//	Dijkstra extracts the smallest distance; equal distances leave in
//	insertion order (a heap keyed on (dist, seq)).
//	AStar scans its open set in insertion order and keeps the first
//	minimum f it meets; removing and re-adding a coordinate moves it to
//	the back.
//
// DFS predecessors
//
//	DFS records a predecessor on every push. A coordinate pushed several
//	times before it is first popped keeps the predecessor of its LAST push,
//	so the reported route follows stack order rather than first discovery.
//
// Outcomes
//
//	A search either finds the end (Outcome PathFound, with a predecessor
//	map) or empties its frontier (Outcome NoPathFound). NoPathFound is a
//	normal result, not an error. Errors are reserved for bad input
//	(ErrMissingEndpoint, grid.ErrOutOfBounds), cancellation, and emitter
//	failures.
//
// Complexity (N = Rows×Cols)
//
//   - BFS, DFS:  O(N) time, O(N) memory
//   - Dijkstra:  O(N log N) time, O(N) memory
//   - AStar:     O(N²) time (linear open-set scan), O(N) memory
//
// Usage
//
//	res, err := search.BFS(g, start, end,
//	    search.WithContext(ctx),
//	    search.WithEmitter(em),
//	)
//	if err != nil {
//	    // ErrMissingEndpoint, grid.ErrOutOfBounds, ctx.Err(), emitter errors
//	}
//	if res.Outcome == search.PathFound {
//	    route, _ := res.Path()
//	    _ = search.TracePath(g, route, search.WithEmitter(em))
//	}
package search
