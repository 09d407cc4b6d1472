package grid

import "fmt"

// New constructs an all-Empty grid with no Start or End.
// Returns ErrBadDimensions if rows or cols are not positive.
// Complexity: O(Rows×Cols) time and memory.
func New(opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rows <= 0 || o.Cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, o.Rows, o.Cols)
	}

	return &Grid{
		rows:  o.Rows,
		cols:  o.Cols,
		cells: make([]CellState, o.Rows*o.Cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// index maps c to its row-major slot. Caller guarantees InBounds.
func (g *Grid) index(c Coord) int { return c.Row*g.cols + c.Col }

func (g *Grid) check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s on %d×%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return nil
}

// Get returns the state of c.
func (g *Grid) Get(c Coord) (CellState, error) {
	if err := g.check(c); err != nil {
		return Empty, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[g.index(c)], nil
}

// Neighbors returns the in-bounds orthogonal neighbors of c (up, down, left, right).
func (g *Grid) Neighbors(c Coord) []Coord {
	return Neighbors(c, g.rows, g.cols)
}

// Start returns the Start coordinate, if one is placed.
func (g *Grid) Start() (Coord, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.start == nil {
		return Coord{}, false
	}
	return *g.start, true
}

// End returns the End coordinate, if one is placed.
func (g *Grid) End() (Coord, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.end == nil {
		return Coord{}, false
	}
	return *g.end, true
}

// Set writes state s to c, subject to the grid invariants. It reports
// whether the cell changed.
//
//   - Visited/Path only land on Empty, Visited or Path cells.
//   - Wall is refused on Start and End.
//   - Start/End move the existing endpoint and are refused on the other one.
//   - Empty clears any role, including an endpoint.
func (g *Grid) Set(c Coord, s CellState) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.setLocked(c, s), nil
}

func (g *Grid) setLocked(c Coord, s CellState) bool {
	i := g.index(c)
	cur := g.cells[i]
	switch s {
	case Visited, Path:
		if cur != Empty && !cur.Transient() {
			return false
		}
	case Wall:
		if cur == Start || cur == End {
			return false
		}
	case Start:
		if cur == End {
			return false
		}
		if g.start != nil && *g.start != c {
			g.cells[g.index(*g.start)] = Empty
		}
		pos := c
		g.start = &pos
	case End:
		if cur == Start {
			return false
		}
		if g.end != nil && *g.end != c {
			g.cells[g.index(*g.end)] = Empty
		}
		pos := c
		g.end = &pos
	case Empty:
		if cur == Start {
			g.start = nil
		}
		if cur == End {
			g.end = nil
		}
	default:
		return false
	}
	if cur == s {
		return false
	}
	g.cells[i] = s
	return true
}

// PlaceStart moves Start to c. It is a no-op when c is the End cell.
func (g *Grid) PlaceStart(c Coord) (bool, error) { return g.Set(c, Start) }

// PlaceEnd moves End to c. It is a no-op when c is the Start cell.
func (g *Grid) PlaceEnd(c Coord) (bool, error) { return g.Set(c, End) }

// ToggleWall flips c between Wall and Empty. Start and End are left alone.
// Toggling a transient cell turns it into a wall.
func (g *Grid) ToggleWall(c Coord) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cells[g.index(c)] == Wall {
		return g.setLocked(c, Empty), nil
	}
	return g.setLocked(c, Wall), nil
}

// SetWall forces c to Wall (on) or Empty (off). Start and End are left alone.
func (g *Grid) SetWall(c Coord, on bool) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	cur := g.cells[g.index(c)]
	if cur == Start || cur == End {
		return false, nil
	}
	if on {
		return g.setLocked(c, Wall), nil
	}
	if cur != Wall {
		return false, nil
	}
	return g.setLocked(c, Empty), nil
}

// ClearTransient resets every Visited and Path cell to Empty and returns
// the cleared coordinates in row-major order.
func (g *Grid) ClearTransient() []Coord {
	return g.replace(func(s CellState) bool { return s.Transient() })
}

// ClearWalls resets every Wall cell to Empty and returns the cleared
// coordinates in row-major order.
func (g *Grid) ClearWalls() []Coord {
	return g.replace(func(s CellState) bool { return s == Wall })
}

func (g *Grid) replace(match func(CellState) bool) []Coord {
	g.mu.Lock()
	defer g.mu.Unlock()
	var cleared []Coord
	for i, s := range g.cells {
		if match(s) {
			g.cells[i] = Empty
			cleared = append(cleared, g.coordinate(i))
		}
	}
	return cleared
}

// Reinit makes every cell Empty and clears Start and End.
func (g *Grid) Reinit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reinitLocked()
}

func (g *Grid) reinitLocked() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.start, g.end = nil, nil
}

// Load replaces the whole grid with the given endpoints and walls in one
// step. The caller validates the inputs first; Load still refuses
// out-of-bounds coordinates, start==end and walls on an endpoint, leaving
// the grid untouched in that case.
func (g *Grid) Load(start, end Coord, walls []Coord) error {
	for _, c := range append([]Coord{start, end}, walls...) {
		if err := g.check(c); err != nil {
			return err
		}
	}
	if start == end {
		return fmt.Errorf("grid: start and end coincide at %s", start)
	}
	for _, w := range walls {
		if w == start || w == end {
			return fmt.Errorf("grid: wall on endpoint %s", w)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.reinitLocked()
	for _, w := range walls {
		g.cells[g.index(w)] = Wall
	}
	g.setLocked(start, Start)
	g.setLocked(end, End)
	return nil
}

// Walls returns every Wall coordinate in row-major scan order.
func (g *Grid) Walls() []Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Coord
	for i, s := range g.cells {
		if s == Wall {
			out = append(out, g.coordinate(i))
		}
	}
	return out
}

// Snapshot returns a deep copy of the cells as [row][col].
func (g *Grid) Snapshot() [][]CellState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][]CellState, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]CellState, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}
