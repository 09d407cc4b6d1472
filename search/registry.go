package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Algorithm names a registered search strategy.
type Algorithm string

// Registered algorithm names.
const (
	AlgoBFS      Algorithm = "bfs"
	AlgoDFS      Algorithm = "dfs"
	AlgoDijkstra Algorithm = "dijkstra"
	AlgoAStar    Algorithm = "astar"
)

// Func is the common signature of every strategy in this package.
type Func func(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error)

var registry = map[Algorithm]Func{
	AlgoBFS:      BFS,
	AlgoDFS:      DFS,
	AlgoDijkstra: Dijkstra,
	AlgoAStar:    AStar,
}

// Algorithms lists the registered names in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoAStar}
}

// Lookup returns the strategy registered under name.
func Lookup(name Algorithm) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(name))
	}
	return fn, nil
}

// Endpoints returns the grid's Start and End, or ErrMissingEndpoint.
func Endpoints(g *grid.Grid) (start, end grid.Coord, err error) {
	if g == nil {
		return start, end, ErrGridNil
	}
	s, okS := g.Start()
	e, okE := g.End()
	if !okS || !okE {
		return start, end, ErrMissingEndpoint
	}
	return s, e, nil
}

// Run looks up algo and runs it between the grid's own Start and End.
func Run(g *grid.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	fn, err := Lookup(algo)
	if err != nil {
		return nil, err
	}
	start, end, err := Endpoints(g)
	if err != nil {
		return nil, err
	}
	return fn(g, start, end, opts...)
}
