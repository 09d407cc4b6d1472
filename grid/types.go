package grid

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrBadDimensions indicates non-positive rows or columns.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")
)

// Default dimensions used when no WithDimensions option is given.
const (
	DefaultRows = 20
	DefaultCols = 40
)

// CellState is the role a cell currently plays.
type CellState int

const (
	// Empty is a free, passable cell.
	Empty CellState = iota
	// Start is the single search origin.
	Start
	// End is the single search target.
	End
	// Wall is impassable.
	Wall
	// Visited marks a cell expanded by a search run (transient).
	Visited
	// Path marks a cell on the reconstructed route (transient).
	Path
)

var stateNames = [...]string{"empty", "start", "end", "wall", "visited", "path"}

// String returns the lower-case state name used on the wire.
func (s CellState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("CellState(%d)", int(s))
	}
	return stateNames[s]
}

// ParseState is the inverse of CellState.String.
func ParseState(name string) (CellState, bool) {
	for i, n := range stateNames {
		if n == name {
			return CellState(i), true
		}
	}
	return Empty, false
}

// Transient reports whether s is a run overlay (Visited or Path).
func (s CellState) Transient() bool { return s == Visited || s == Path }

// Coord is a (row, col) cell address.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Manhattan returns |Δrow|+|Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Options holds construction parameters for a Grid.
type Options struct {
	Rows int
	Cols int
}

// Option configures a Grid via functional arguments.
type Option func(*Options)

// DefaultOptions returns a 20×40 grid configuration.
func DefaultOptions() Options {
	return Options{Rows: DefaultRows, Cols: DefaultCols}
}

// WithDimensions sets the number of rows and columns.
// Non-positive values surface as ErrBadDimensions from New.
func WithDimensions(rows, cols int) Option {
	return func(o *Options) {
		o.Rows = rows
		o.Cols = cols
	}
}

// Grid owns the cell array and the Start/End coordinates.
//
// cells is row-major: cells[r*cols+c]. start and end are nil when unset.
type Grid struct {
	mu    sync.RWMutex
	rows  int
	cols  int
	cells []CellState
	start *Coord
	end   *Coord
}
