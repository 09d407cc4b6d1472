package layout

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Export captures g's Start, End and Walls.
// Returns ErrIncompleteLayout if either endpoint is unset.
func Export(g *grid.Grid) (*Layout, error) {
	start, okS := g.Start()
	end, okE := g.End()
	if !okS || !okE {
		return nil, ErrIncompleteLayout
	}
	walls := g.Walls()
	l := &Layout{
		StartNode: &start,
		EndNode:   &end,
		Walls:     make([][]int, 0, len(walls)),
	}
	for _, w := range walls {
		l.Walls = append(l.Walls, []int{w.Row, w.Col})
	}
	return l, nil
}

// Validate checks l against a rows×cols grid and returns the decoded walls.
func (l *Layout) Validate(rows, cols int) ([]grid.Coord, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidLayout)
	}
	if l.StartNode == nil {
		return nil, fmt.Errorf("%w: missing startNode", ErrInvalidLayout)
	}
	if l.EndNode == nil {
		return nil, fmt.Errorf("%w: missing endNode", ErrInvalidLayout)
	}
	in := func(c grid.Coord) bool {
		return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
	}
	start, end := *l.StartNode, *l.EndNode
	if !in(start) {
		return nil, fmt.Errorf("%w: startNode %s outside %d×%d", ErrInvalidLayout, start, rows, cols)
	}
	if !in(end) {
		return nil, fmt.Errorf("%w: endNode %s outside %d×%d", ErrInvalidLayout, end, rows, cols)
	}
	if start == end {
		return nil, fmt.Errorf("%w: startNode and endNode both at %s", ErrInvalidLayout, start)
	}

	walls := make([]grid.Coord, 0, len(l.Walls))
	for i, pair := range l.Walls {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: walls[%d] has %d values, want [row,col]", ErrInvalidLayout, i, len(pair))
		}
		w := grid.Coord{Row: pair[0], Col: pair[1]}
		switch {
		case !in(w):
			return nil, fmt.Errorf("%w: walls[%d] %s outside %d×%d", ErrInvalidLayout, i, w, rows, cols)
		case w == start:
			return nil, fmt.Errorf("%w: walls[%d] %s overlaps startNode", ErrInvalidLayout, i, w)
		case w == end:
			return nil, fmt.Errorf("%w: walls[%d] %s overlaps endNode", ErrInvalidLayout, i, w)
		}
		walls = append(walls, w)
	}
	return walls, nil
}

// Import validates l and, on success, reinitializes g with its endpoints and
// walls. On failure g is left unchanged.
func Import(l *Layout, g *grid.Grid) error {
	walls, err := l.Validate(g.Rows(), g.Cols())
	if err != nil {
		return err
	}
	if err := g.Load(*l.StartNode, *l.EndNode, walls); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return nil
}
