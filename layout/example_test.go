package layout_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/layout"
)

// ExampleExport shows the exchange document for a small grid.
func ExampleExport() {
	g, _ := grid.New(grid.WithDimensions(3, 3))
	_, _ = g.PlaceStart(grid.Coord{Row: 0, Col: 0})
	_, _ = g.PlaceEnd(grid.Coord{Row: 2, Col: 2})
	_, _ = g.ToggleWall(grid.Coord{Row: 1, Col: 1})

	l, _ := layout.Export(g)
	data, _ := layout.Encode(l, layout.JSON)
	fmt.Println(string(data))

	data, _ = layout.Encode(l, layout.YAML)
	fmt.Print(string(data))
	// Output:
	// {"startNode":{"row":0,"col":0},"endNode":{"row":2,"col":2},"walls":[[1,1]]}
	// startNode:
	//   row: 0
	//   col: 0
	// endNode:
	//   row: 2
	//   col: 2
	// walls: [[1, 1]]
}
