// Package animate replays a search as a strictly ordered stream of cell
// state changes with a configurable pause after each one.
//
// A Scheduler owns only its step delay and a busy flag. Run clears the
// previous run's overlays, drives the chosen search.Algorithm, and on
// success reconstructs and traces the route. Every Visited and Path event
// is handed synchronously to a RenderSink, then the Scheduler sleeps on its
// Clock for the current delay before the search continues. No two events
// of one run ever overlap and no two runs ever overlap: Run returns
// ErrAlreadyRunning while busy.
//
// Cancellation is cooperative: the context passed to Run is checked at each
// suspension point. A cancelled run returns an error wrapping ErrCancelled
// and is never reported as PathFound or NoPathFound.
package animate
