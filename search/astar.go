package search

import "github.com/katalvlaran/gridpath/grid"

// AStar runs A* from start to end with the Manhattan heuristic, which is
// admissible and consistent on a 4-connected unit-cost grid, so the route
// is shortest.
//
// Each step scans the open set in insertion order and takes the first
// coordinate with the lowest f. Re-adding a coordinate that is already
// open only updates its scores.
func AStar(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgoAStar, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	gScore := map[grid.Coord]int{start: 0}
	fScore := map[grid.Coord]int{start: start.Manhattan(end)}
	open := newOpenSet()
	open.add(start)

	for open.len() > 0 {
		if err := w.cancelled(); err != nil {
			return nil, err
		}
		idx := 0
		for i, c := range open.order {
			if fScore[c] < fScore[open.order[idx]] {
				idx = i
			}
		}
		cur := open.order[idx]
		if cur == end {
			return w.found(), nil
		}
		open.removeAt(idx)
		if err := w.visit(cur); err != nil {
			return nil, err
		}

		for _, nb := range g.Neighbors(cur) {
			if !w.passable(nb) {
				continue
			}
			tentative := gScore[cur] + 1
			if old, ok := gScore[nb]; ok && tentative >= old {
				continue
			}
			w.res.Prev[nb] = cur
			gScore[nb] = tentative
			fScore[nb] = tentative + nb.Manhattan(end)
			open.add(nb)
		}
	}

	return w.res, nil
}

// openSet is an insertion-ordered set of coordinates.
type openSet struct {
	order  []grid.Coord
	member map[grid.Coord]bool
}

func newOpenSet() *openSet {
	return &openSet{member: make(map[grid.Coord]bool)}
}

func (s *openSet) len() int { return len(s.order) }

// add appends c unless it is already present.
func (s *openSet) add(c grid.Coord) {
	if s.member[c] {
		return
	}
	s.member[c] = true
	s.order = append(s.order, c)
}

func (s *openSet) removeAt(i int) {
	delete(s.member, s.order[i])
	s.order = append(s.order[:i], s.order[i+1:]...)
}
