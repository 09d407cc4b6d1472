package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Reconstruct follows prev from end back to start and returns the route in
// start→end order, both endpoints included. start==end yields [start].
// Returns ErrBrokenChain if the walk stops or loops before reaching start.
// Complexity: O(len(route)).
func Reconstruct(prev PredecessorMap, start, end grid.Coord) ([]grid.Coord, error) {
	route := []grid.Coord{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %s", ErrBrokenChain, cur)
		}
		// A tree over len(prev) nodes cannot be deeper than len(prev).
		if len(route) > len(prev) {
			return nil, fmt.Errorf("%w: cycle through %s", ErrBrokenChain, cur)
		}
		route = append(route, p)
		cur = p
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, nil
}

// TracePath marks every route cell other than the first and last as
// grid.Path, emitting one event per marked cell in route order.
func TracePath(g *grid.Grid, route []grid.Coord, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(route) < 3 {
		return nil
	}
	for _, c := range route[1 : len(route)-1] {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		if _, err := g.Set(c, grid.Path); err != nil {
			return err
		}
		if err := o.Emitter.Emit(o.Ctx, c, grid.Path); err != nil {
			return fmt.Errorf("search: emit path %s: %w", c, err)
		}
	}
	return nil
}
