package animate

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Scheduler drives one animated search at a time.
type Scheduler struct {
	delay   atomic.Int64 // nanoseconds
	busy    atomic.Bool
	clock   Clock
	log     logrus.FieldLogger
	metrics *Metrics
}

// New builds a Scheduler. Returns ErrBadDelay for a negative WithDelay.
func New(opts ...Option) (*Scheduler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	s := &Scheduler{clock: o.Clock, log: o.Logger, metrics: o.Metrics}
	s.delay.Store(int64(o.Delay))
	return s, nil
}

// Delay returns the current pause after each event.
func (s *Scheduler) Delay() time.Duration { return time.Duration(s.delay.Load()) }

// SetDelay changes the pause; a running search picks it up at its next event.
func (s *Scheduler) SetDelay(d time.Duration) error {
	if d < 0 {
		return ErrBadDelay
	}
	s.delay.Store(int64(d))
	return nil
}

// Busy reports whether a run is in progress.
func (s *Scheduler) Busy() bool { return s.busy.Load() }

// Run animates algo on g, delivering each event to sink before pausing.
//
// Errors: ErrAlreadyRunning, search.ErrMissingEndpoint,
// search.ErrUnknownAlgorithm, search.ErrBrokenChain, or ErrCancelled
// wrapping the context error. NoPathFound is reported through the Report.
func (s *Scheduler) Run(ctx context.Context, g *grid.Grid, algo search.Algorithm, sink RenderSink) (*Report, error) {
	if !s.busy.CompareAndSwap(false, true) {
		s.metrics.reject("busy")
		return nil, ErrAlreadyRunning
	}
	defer s.busy.Store(false)

	if sink == nil {
		sink = nopSink{}
	}
	fn, err := search.Lookup(algo)
	if err != nil {
		s.metrics.reject("unknown_algorithm")
		return nil, err
	}
	start, end, err := search.Endpoints(g)
	if err != nil {
		s.metrics.reject("missing_endpoint")
		return nil, err
	}

	for _, c := range g.ClearTransient() {
		sink.OnCellStateChanged(c, grid.Empty)
	}

	log := s.log.WithFields(logrus.Fields{
		"algorithm": algo,
		"start":     start.String(),
		"end":       end.String(),
	})
	log.WithField("delay", s.Delay()).Debug("run started")

	began := time.Now()
	em := &stepper{s: s, sink: sink}
	res, err := fn(g, start, end, search.WithContext(ctx), search.WithEmitter(em))
	if err != nil {
		return nil, s.fail(log, ctx, err)
	}

	rep := &Report{
		Algorithm: algo,
		Outcome:   res.Outcome,
		Visited:   len(res.Order),
	}
	if res.Outcome == search.PathFound {
		route, err := res.Path()
		if err != nil {
			log.WithError(err).Error("predecessor chain broken")
			return nil, err
		}
		if err := search.TracePath(g, route, search.WithContext(ctx), search.WithEmitter(em)); err != nil {
			return nil, s.fail(log, ctx, err)
		}
		rep.Path = route
	}
	rep.Result = rep.Outcome.String()
	rep.Elapsed = time.Since(began)

	s.metrics.observe(rep)
	log.WithFields(logrus.Fields{
		"outcome":  rep.Result,
		"visited":  rep.Visited,
		"path_len": rep.PathLen(),
		"elapsed":  rep.Elapsed,
	}).Info("run finished")

	return rep, nil
}

// fail classifies a run error, wrapping context errors as ErrCancelled.
func (s *Scheduler) fail(log logrus.FieldLogger, ctx context.Context, err error) error {
	if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		log.WithError(err).Warn("run cancelled")
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	log.WithError(err).Error("run failed")
	return err
}

// stepper renders one event and then sleeps for the current delay.
type stepper struct {
	s    *Scheduler
	sink RenderSink
}

// Emit implements search.Emitter.
func (st *stepper) Emit(ctx context.Context, c grid.Coord, state grid.CellState) error {
	st.sink.OnCellStateChanged(c, state)
	return st.s.clock.Sleep(ctx, st.s.Delay())
}
