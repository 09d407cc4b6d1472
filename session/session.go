// Package session bundles one grid, one scheduler and one render sink into
// the object a front end talks to. It implements the interaction protocol
// (click placement, drag painting, resets, import/export) and refuses every
// edit while a run is animating so the grid never changes shape
// mid-traversal.
package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/animate"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/search"
)

// ErrBusy is returned by edits attempted while a run is in progress.
// The edit is not applied.
var ErrBusy = errors.New("session: grid is locked while a run is in progress")

// dragMode is fixed by the first cell of a drag.
type dragMode int

const (
	dragNone dragMode = iota
	dragAdd
	dragRemove
)

// Session is the single owner of a grid and its scheduler.
type Session struct {
	grid  *grid.Grid
	sched *animate.Scheduler
	sink  animate.RenderSink
	log   logrus.FieldLogger

	mu      sync.Mutex
	running bool
	drag    dragMode
}

// Option configures a Session.
type Option func(*Session)

// WithSink sets the render sink that sees every cell change.
func WithSink(sink animate.RenderSink) Option {
	return func(s *Session) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithLogger routes session logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New wraps g and sched.
func New(g *grid.Grid, sched *animate.Scheduler, opts ...Option) *Session {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	s := &Session{
		grid:  g,
		sched: sched,
		sink:  animate.SinkFunc(func(grid.Coord, grid.CellState) {}),
		log:   quiet,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid exposes the underlying grid for read access.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Busy reports whether a run is in progress.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running || s.sched.Busy()
}

// edit runs fn under the session lock unless a run is active, then
// notifies the sink of every cell whose state changed.
func (s *Session) edit(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.sched.Busy() {
		return ErrBusy
	}
	before := s.grid.Snapshot()
	err := fn()
	s.publishDiff(before)
	return err
}

func (s *Session) publishDiff(before [][]grid.CellState) {
	after := s.grid.Snapshot()
	for r := range after {
		for col := range after[r] {
			if before[r][col] != after[r][col] {
				s.sink.OnCellStateChanged(grid.Coord{Row: r, Col: col}, after[r][col])
			}
		}
	}
}

// Click applies the placement protocol to c: the first click places Start,
// the next click elsewhere places End, and later clicks on any other cell
// toggle a wall. Returns the state of c afterwards.
func (s *Session) Click(c grid.Coord) (grid.CellState, error) {
	err := s.edit(func() error {
		start, hasStart := s.grid.Start()
		end, hasEnd := s.grid.End()
		var err error
		switch {
		case !hasStart:
			_, err = s.grid.PlaceStart(c)
		case !hasEnd && c != start:
			_, err = s.grid.PlaceEnd(c)
		case c != start && c != end:
			_, err = s.grid.ToggleWall(c)
		}
		return err
	})
	if err != nil {
		return grid.Empty, err
	}
	return s.grid.Get(c)
}

// BeginDrag starts wall painting at c. The mode is "remove" if c is a wall
// and "add" otherwise; c itself is painted immediately.
func (s *Session) BeginDrag(c grid.Coord) error {
	return s.edit(func() error {
		cur, err := s.grid.Get(c)
		if err != nil {
			return err
		}
		s.drag = dragAdd
		if cur == grid.Wall {
			s.drag = dragRemove
		}
		_, err = s.grid.SetWall(c, s.drag == dragAdd)
		return err
	})
}

// DragOver paints c with the current drag mode. No-op without BeginDrag.
func (s *Session) DragOver(c grid.Coord) error {
	return s.edit(func() error {
		if s.drag == dragNone {
			return nil
		}
		_, err := s.grid.SetWall(c, s.drag == dragAdd)
		return err
	})
}

// SetWall adds or removes a single wall outside of a drag.
func (s *Session) SetWall(c grid.Coord, on bool) error {
	return s.edit(func() error {
		_, err := s.grid.SetWall(c, on)
		return err
	})
}

// EndDrag stops wall painting.
func (s *Session) EndDrag() {
	s.mu.Lock()
	s.drag = dragNone
	s.mu.Unlock()
}

// ClearWalls removes every wall, keeping endpoints and overlays.
func (s *Session) ClearWalls() error {
	return s.edit(func() error {
		s.grid.ClearWalls()
		return nil
	})
}

// ResetKeepEndpoints clears overlays and walls but keeps Start and End.
func (s *Session) ResetKeepEndpoints() error {
	return s.edit(func() error {
		s.grid.ClearTransient()
		s.grid.ClearWalls()
		return nil
	})
}

// Reset reinitializes the whole grid, clearing Start and End too.
func (s *Session) Reset() error {
	return s.edit(func() error {
		s.grid.Reinit()
		return nil
	})
}

// SetDelay changes the per-event pause; allowed while a run is active.
func (s *Session) SetDelay(d time.Duration) error { return s.sched.SetDelay(d) }

// Delay returns the per-event pause.
func (s *Session) Delay() time.Duration { return s.sched.Delay() }

// Run animates algo between the current endpoints. Edits are refused until
// it returns.
func (s *Session) Run(ctx context.Context, algo search.Algorithm) (*animate.Report, error) {
	s.mu.Lock()
	if s.running || s.sched.Busy() {
		s.mu.Unlock()
		return nil, animate.ErrAlreadyRunning
	}
	s.running = true
	s.drag = dragNone
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	rep, err := s.sched.Run(ctx, s.grid, algo, s.sink)
	if errors.Is(err, search.ErrBrokenChain) {
		s.log.WithError(err).WithField("algorithm", algo).Error("search produced a broken predecessor chain")
	}
	return rep, err
}

// Export snapshots the current layout.
func (s *Session) Export() (*layout.Layout, error) {
	return layout.Export(s.grid)
}

// Import replaces the grid with l. Refused while busy.
func (s *Session) Import(l *layout.Layout) error {
	return s.edit(func() error {
		return layout.Import(l, s.grid)
	})
}
