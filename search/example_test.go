package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleBFS finds the shortest route around a short wall on a 4×5 grid.
func ExampleBFS() {
	g, _ := grid.New(grid.WithDimensions(4, 5))
	_ = g.Load(
		grid.Coord{Row: 0, Col: 0},
		grid.Coord{Row: 0, Col: 4},
		[]grid.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 2}},
	)

	res, err := search.BFS(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := res.Path()
	fmt.Println(res.Outcome, len(route)-1)
	fmt.Println(route)
	// Output:
	// path_found 8
	// [(0,0) (1,0) (2,0) (2,1) (2,2) (2,3) (1,3) (0,3) (0,4)]
}

// ExampleRun compares the four strategies on the same open grid.
func ExampleRun() {
	g, _ := grid.New(grid.WithDimensions(5, 5))
	_ = g.Load(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4}, nil)

	for _, algo := range search.Algorithms() {
		g.ClearTransient()
		res, _ := search.Run(g, algo)
		route, _ := res.Path()
		fmt.Printf("%-8s visited=%2d steps=%d\n", algo, len(res.Order), len(route)-1)
	}
	// Output:
	// bfs      visited=23 steps=8
	// dfs      visited=23 steps=24
	// dijkstra visited=23 steps=8
	// astar    visited=23 steps=8
}
