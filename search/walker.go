package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// walker holds the state shared by all four strategies.
type walker struct {
	g     *grid.Grid
	opts  Options
	ctx   context.Context
	start grid.Coord
	end   grid.Coord
	res   *Result
}

func newWalker(algo Algorithm, g *grid.Grid, start, end grid.Coord, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, c := range []grid.Coord{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %s", grid.ErrOutOfBounds, c)
		}
	}

	return &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		start: start,
		end:   end,
		res: &Result{
			Algorithm: algo,
			Start:     start,
			End:       end,
			Outcome:   NoPathFound,
			Prev:      make(PredecessorMap),
		},
	}, nil
}

// cancelled returns ctx.Err() once the context is done.
func (w *walker) cancelled() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}

// passable reports whether c may enter the frontier.
func (w *walker) passable(c grid.Coord) bool {
	s, err := w.g.Get(c)
	return err == nil && s != grid.Wall
}

// visit marks c Visited and emits the event. Start and End are never marked.
func (w *walker) visit(c grid.Coord) error {
	if c == w.start || c == w.end {
		return nil
	}
	if _, err := w.g.Set(c, grid.Visited); err != nil {
		return err
	}
	w.res.Order = append(w.res.Order, c)
	if err := w.opts.Emitter.Emit(w.ctx, c, grid.Visited); err != nil {
		return fmt.Errorf("search: emit visit %s: %w", c, err)
	}
	return nil
}

// found finalizes a successful run.
func (w *walker) found() *Result {
	w.res.Outcome = PathFound
	return w.res
}
