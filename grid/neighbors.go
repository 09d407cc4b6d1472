package grid

// offsets lists the orthogonal steps in discovery order: up, down, left, right.
// Search tie-breaking depends on this order.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the in-bounds orthogonal neighbors of c on a rows×cols
// grid, in the order up, down, left, right.
// Complexity: O(1).
func Neighbors(c Coord, rows, cols int) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if n.Row < 0 || n.Row >= rows || n.Col < 0 || n.Col >= cols {
			continue
		}
		out = append(out, n)
	}
	return out
}
