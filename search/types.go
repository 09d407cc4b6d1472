package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrMissingEndpoint is returned when Start or End is not placed.
	ErrMissingEndpoint = errors.New("search: start and end must both be set")

	// ErrNoPathFound is the error form of Outcome NoPathFound, see Result.Err.
	ErrNoPathFound = errors.New("search: no path found")

	// ErrBrokenChain indicates a predecessor walk that never reached start.
	// It means an algorithm produced a malformed predecessor map.
	ErrBrokenChain = errors.New("search: predecessor chain does not reach start")

	// ErrUnknownAlgorithm is returned by Lookup for unregistered names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrGridNil is returned when a nil *grid.Grid is passed.
	ErrGridNil = errors.New("search: grid is nil")
)

// Outcome is the terminal state of a search.
type Outcome int

const (
	// NoPathFound means the frontier emptied before reaching the end.
	NoPathFound Outcome = iota
	// PathFound means the end was selected from the frontier.
	PathFound
)

// String returns "path_found" or "no_path_found".
func (o Outcome) String() string {
	if o == PathFound {
		return "path_found"
	}
	return "no_path_found"
}

// PredecessorMap maps each discovered coordinate to the one that discovered it.
// The start coordinate has no entry.
type PredecessorMap map[grid.Coord]grid.Coord

// Emitter receives one call per cell state change made by a search.
// Returning an error aborts the search with that error.
type Emitter interface {
	Emit(ctx context.Context, c grid.Coord, s grid.CellState) error
}

// EmitFunc adapts a plain function to Emitter.
type EmitFunc func(ctx context.Context, c grid.Coord, s grid.CellState) error

// Emit calls f.
func (f EmitFunc) Emit(ctx context.Context, c grid.Coord, s grid.CellState) error {
	return f(ctx, c, s)
}

type nopEmitter struct{}

func (nopEmitter) Emit(context.Context, grid.Coord, grid.CellState) error { return nil }

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the execution context and the event sink of a search.
type Options struct {
	// Ctx allows cancellation; checked once per frontier step and passed
	// to every Emit call.
	Ctx context.Context

	// Emitter receives Visited and Path events. Defaults to a no-op.
	Emitter Emitter
}

// DefaultOptions returns Background context and a no-op emitter.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Emitter: nopEmitter{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEmitter routes cell events to em.
func WithEmitter(em Emitter) Option {
	return func(o *Options) {
		if em != nil {
			o.Emitter = em
		}
	}
}

// Result holds the outcome of one search run:
//   - Outcome: PathFound or NoPathFound.
//   - Prev:    predecessor links built during the run.
//   - Order:   cells reported as Visited, in emission order.
type Result struct {
	Algorithm Algorithm
	Start     grid.Coord
	End       grid.Coord
	Outcome   Outcome
	Prev      PredecessorMap
	Order     []grid.Coord
}

// Path reconstructs the start→end route. Returns ErrNoPathFound when the
// search did not reach the end.
func (r *Result) Path() ([]grid.Coord, error) {
	if r.Outcome != PathFound {
		return nil, ErrNoPathFound
	}
	return Reconstruct(r.Prev, r.Start, r.End)
}

// Err returns ErrNoPathFound for Outcome NoPathFound and nil otherwise.
func (r *Result) Err() error {
	if r.Outcome != PathFound {
		return ErrNoPathFound
	}
	return nil
}
