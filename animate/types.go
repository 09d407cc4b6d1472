package animate

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for scheduler operations.
var (
	// ErrAlreadyRunning is returned by Run while another run is in progress.
	ErrAlreadyRunning = errors.New("animate: a run is already in progress")

	// ErrBadDelay indicates a negative step delay.
	ErrBadDelay = errors.New("animate: step delay must be non-negative")

	// ErrCancelled wraps the context error of an aborted run.
	ErrCancelled = errors.New("animate: run cancelled")
)

// DefaultDelay is the pause after each event when no WithDelay is given.
const DefaultDelay = 150 * time.Millisecond

// RenderSink observes every cell state change. Implementations must
// tolerate repeated calls with the same arguments.
type RenderSink interface {
	OnCellStateChanged(c grid.Coord, s grid.CellState)
}

// SinkFunc adapts a plain function to RenderSink.
type SinkFunc func(c grid.Coord, s grid.CellState)

// OnCellStateChanged calls f.
func (f SinkFunc) OnCellStateChanged(c grid.Coord, s grid.CellState) { f(c, s) }

type nopSink struct{}

func (nopSink) OnCellStateChanged(grid.Coord, grid.CellState) {}

// Report summarizes a finished run.
type Report struct {
	Algorithm search.Algorithm `json:"algorithm"`
	Outcome   search.Outcome   `json:"-"`
	Result    string           `json:"outcome"`
	Path      []grid.Coord     `json:"path"`
	Visited   int              `json:"visited"`
	Elapsed   time.Duration    `json:"elapsed_ns"`
}

// PathLen returns the number of steps on the route, or -1 without a route.
func (r *Report) PathLen() int {
	if r.Outcome != search.PathFound {
		return -1
	}
	return len(r.Path) - 1
}

// Options holds scheduler configuration.
type Options struct {
	Delay   time.Duration
	Clock   Clock
	Logger  logrus.FieldLogger
	Metrics *Metrics
	err     error
}

// Option configures a Scheduler via functional arguments.
type Option func(*Options)

// DefaultOptions returns DefaultDelay, the wall clock, a silent logger and
// no metrics.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Delay:  DefaultDelay,
		Clock:  RealClock{},
		Logger: l,
	}
}

// WithDelay sets the pause after each event. Negative values surface as
// ErrBadDelay from New.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrBadDelay
			return
		}
		o.Delay = d
	}
}

// WithClock replaces the wall clock, e.g. with Instant in tests.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger routes run logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records run counters and histograms into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
