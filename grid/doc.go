// Package grid provides the mutable cell model a path search runs over:
// a fixed-size, row-major 2-D array of CellState plus the Start and End
// coordinates.
//
// What
//
//   - Rows×Cols cells, each one of Empty, Start, End, Wall, Visited, Path.
//   - At most one Start and at most one End at any time, never the same cell.
//   - Start and End are never walls; Visited and Path only ever cover cells
//     that would otherwise be Empty.
//   - Orthogonal neighbors in the fixed order up, down, left, right.
//
// Why
//
//	Search algorithms need a single owner for the cell array so that visual
//	overlays (Visited/Path) and user edits (Start/End/Wall) never fight each
//	other. Every mutation funnels through the Grid and re-checks the
//	invariants above.
//
// Determinism
//
//	Neighbors always returns up, down, left, right (filtered to in-bounds).
//	Every algorithm in package search iterates in that order, so tie-breaking
//	and therefore the animation is fully reproducible.
//
// Concurrency
//
//	Grid is safe for concurrent use: reads take a shared lock, mutations an
//	exclusive one. Higher-level exclusion (no edits while a search is running)
//	is enforced by package session.
//
// Complexity
//
//   - Get/Set/PlaceStart/PlaceEnd/ToggleWall: O(1)
//   - ClearTransient/ClearWalls/Reinit/Snapshot/Walls: O(Rows×Cols)
//
// Usage
//
//	g, err := grid.New(grid.WithDimensions(20, 40))
//	if err != nil {
//	    // ErrBadDimensions
//	}
//	g.PlaceStart(grid.Coord{Row: 0, Col: 0})
//	g.PlaceEnd(grid.Coord{Row: 19, Col: 39})
//	g.ToggleWall(grid.Coord{Row: 5, Col: 5})
package grid
