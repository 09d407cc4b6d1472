package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// Dijkstra runs uniform-cost search (every step costs 1) from start to end.
//
// The frontier is a min-heap keyed on (distance, insertion sequence), so
// equal distances leave in the order they were pushed. Improved distances
// push a fresh entry; stale entries are dropped when popped because their
// coordinate is already visited.
func Dijkstra(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgoDijkstra, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	dist := map[grid.Coord]int{start: 0}
	visited := make(map[grid.Coord]bool)
	pq := &distQueue{}
	heap.Init(pq)
	pq.push(start, 0)

	for pq.Len() > 0 {
		if err := w.cancelled(); err != nil {
			return nil, err
		}
		item := heap.Pop(pq).(*distItem)
		cur := item.coord
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
			nd := item.dist + 1
			if d, ok := dist[nb]; ok && nd >= d {
				continue
			}
			dist[nb] = nd
			w.res.Prev[nb] = cur
			pq.push(nb, nd)
		}
	}

	return w.res, nil
}

// distItem is one frontier entry. seq is the global push counter used to
// keep equal distances in insertion order.
type distItem struct {
	coord grid.Coord
	dist  int
	seq   int
}

// distQueue is a min-heap of *distItem ordered by (dist, seq).
type distQueue struct {
	items []*distItem
	next  int
}

func (pq *distQueue) push(c grid.Coord, d int) {
	heap.Push(pq, &distItem{coord: c, dist: d, seq: pq.next})
	pq.next++
}

// Len returns the number of entries, stale ones included.
func (pq *distQueue) Len() int { return len(pq.items) }

// Less orders by distance, then by push order.
func (pq *distQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

// Swap swaps two entries.
func (pq *distQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x; called by heap.Push.
func (pq *distQueue) Push(x interface{}) { pq.items = append(pq.items, x.(*distItem)) }

// Pop removes the last entry; called by heap.Pop.
func (pq *distQueue) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]
	return it
}
