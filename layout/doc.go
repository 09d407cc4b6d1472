// Package layout converts a grid's Start, End and Wall cells to and from a
// compact exchange document:
//
//	{"startNode":{"row":0,"col":0},"endNode":{"row":4,"col":4},"walls":[[1,1],[2,1]]}
//
// Visited and Path overlays are never part of a layout. Export requires both
// endpoints (ErrIncompleteLayout). Import validates everything before it
// touches the grid (ErrInvalidLayout) and then replaces the grid contents in
// a single step, so a rejected document leaves the grid unchanged.
//
// The same document can be written as JSON (the browser clipboard format)
// or YAML (handy for hand-edited fixtures).
package layout
