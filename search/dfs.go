package search

import "github.com/katalvlaran/gridpath/grid"

// DFS runs an iterative depth-first search from start to end.
//
// The visited check happens on pop, so a coordinate may sit on the stack
// several times. Each push overwrites the predecessor, so a cell's recorded
// predecessor is the one from its last push before it was first popped.
// The returned route is contiguous but usually not the shortest.
func DFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgoDFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	stack := []grid.Coord{start}
	visited := make(map[grid.Coord]bool)
	for len(stack) > 0 {
		if err := w.cancelled(); err != nil {
			return nil, err
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == end {
			return w.found(), nil
		}
		if err := w.visit(cur); err != nil {
			return nil, err
		}

		for _, nb := range g.Neighbors(cur) {
			if visited[nb] || !w.passable(nb) {
				continue
			}
			w.res.Prev[nb] = cur
			stack = append(stack, nb)
		}
	}

	return w.res, nil
}
