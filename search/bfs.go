package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search from start to end.
//
// The start is seeded as seen. Each dequeued cell is checked against end;
// otherwise every unseen, non-wall neighbor is marked seen, given its
// predecessor, reported as Visited and enqueued, in neighbor order.
//
// The first path found has the minimum number of steps.
func BFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgoBFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	queue := []grid.Coord{start}
	seen := map[grid.Coord]bool{start: true}
	for len(queue) > 0 {
		if err := w.cancelled(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return w.found(), nil
		}

		for _, nb := range g.Neighbors(cur) {
			if seen[nb] || !w.passable(nb) {
				continue
			}
			seen[nb] = true
			w.res.Prev[nb] = cur
			if err := w.visit(nb); err != nil {
				return nil, err
			}
			queue = append(queue, nb)
		}
	}

	return w.res, nil
}
