// Package server exposes a session over HTTP and streams its animation to
// browsers over a websocket.
//
//	GET  /api/grid                         full snapshot
//	POST /api/cells/:row/:col/click        placement protocol
//	POST /api/cells/:row/:col/wall?mode=   add|remove wall
//	POST /api/run/:algorithm[?wait=true]   start a run (202, or 200 + report)
//	POST /api/reset[?keep=endpoints]       full or endpoint-preserving reset
//	POST /api/walls/clear                  remove all walls
//	PUT  /api/delay/:ms                    change animation speed
//	GET  /api/layout[?format=yaml]         export
//	PUT  /api/layout[?format=yaml]         import
//	GET  /ws                               cell events
//	GET  /metrics                          prometheus
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/animate"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
)

// maxLayoutBytes caps PUT /api/layout bodies.
const maxLayoutBytes = 1 << 20

// Server routes HTTP requests to a session.
type Server struct {
	sess   *session.Session
	hub    *Hub
	router *way.Router
	log    logrus.FieldLogger
	ctx    context.Context
}

// New wires the routes. ctx bounds background runs; gatherer backs /metrics
// and may be nil to disable it.
func New(ctx context.Context, sess *session.Session, hub *Hub, gatherer prometheus.Gatherer, log logrus.FieldLogger) *Server {
	s := &Server{sess: sess, hub: hub, router: way.NewRouter(), log: log, ctx: ctx}
	s.routes(gatherer)
	return s
}

func (s *Server) routes(gatherer prometheus.Gatherer) {
	s.router.HandleFunc("GET", "/api/grid", s.handleGrid)
	s.router.HandleFunc("POST", "/api/cells/:row/:col/click", s.handleClick)
	s.router.HandleFunc("POST", "/api/cells/:row/:col/wall", s.handleWall)
	s.router.HandleFunc("POST", "/api/run/:algorithm", s.handleRun)
	s.router.HandleFunc("POST", "/api/reset", s.handleReset)
	s.router.HandleFunc("POST", "/api/walls/clear", s.handleClearWalls)
	s.router.HandleFunc("PUT", "/api/delay/:ms", s.handleDelay)
	s.router.HandleFunc("GET", "/api/layout", s.handleExport)
	s.router.HandleFunc("PUT", "/api/layout", s.handleImport)
	s.router.HandleFunc("GET", "/ws", s.hub.ServeWS)
	if gatherer != nil {
		s.router.Handle("GET", "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
}

// ServeHTTP implements http.Handler with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	s.router.ServeHTTP(w, r)
	s.log.WithFields(logrus.Fields{
		"method":  r.Method,
		"path":    r.URL.Path,
		"elapsed": time.Since(began),
	}).Debug("request")
}

// Snapshot is the body of GET /api/grid.
type Snapshot struct {
	Rows    int        `json:"rows"`
	Cols    int        `json:"cols"`
	Cells   [][]string `json:"cells"`
	Busy    bool       `json:"busy"`
	DelayMs int64      `json:"delay_ms"`
}

func (s *Server) handleGrid(w http.ResponseWriter, _ *http.Request) {
	g := s.sess.Grid()
	snap := g.Snapshot()
	cells := make([][]string, len(snap))
	for r, row := range snap {
		cells[r] = make([]string, len(row))
		for c, st := range row {
			cells[r][c] = st.String()
		}
	}
	writeJSON(w, http.StatusOK, Snapshot{
		Rows:    g.Rows(),
		Cols:    g.Cols(),
		Cells:   cells,
		Busy:    s.sess.Busy(),
		DelayMs: s.sess.Delay().Milliseconds(),
	})
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	c, err := coordParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	st, err := s.sess.Click(c)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"row": c.Row, "col": c.Col, "state": st.String()})
}

func (s *Server) handleWall(w http.ResponseWriter, r *http.Request) {
	c, err := coordParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	mode := r.URL.Query().Get("mode")
	switch mode {
	case "add", "remove":
	default:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "mode must be add or remove"})
		return
	}
	if err := s.sess.SetWall(c, mode == "add"); err != nil {
		s.writeError(w, err)
		return
	}
	st, _ := s.sess.Grid().Get(c)
	writeJSON(w, http.StatusOK, map[string]interface{}{"row": c.Row, "col": c.Col, "state": st.String()})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	algo := search.Algorithm(way.Param(r.Context(), "algorithm"))
	if _, err := search.Lookup(algo); err != nil {
		s.writeError(w, err)
		return
	}
	if _, _, err := search.Endpoints(s.sess.Grid()); err != nil {
		s.writeError(w, err)
		return
	}
	if s.sess.Busy() {
		s.writeError(w, animate.ErrAlreadyRunning)
		return
	}

	if r.URL.Query().Get("wait") == "true" {
		rep, err := s.sess.Run(r.Context(), algo)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.hub.Broadcast(Message{Type: "report", Report: rep})
		writeJSON(w, http.StatusOK, rep)
		return
	}

	go func() {
		rep, err := s.sess.Run(s.ctx, algo)
		if err != nil {
			s.log.WithError(err).WithField("algorithm", algo).Warn("background run ended with error")
			return
		}
		s.hub.Broadcast(Message{Type: "report", Report: rep})
	}()
	writeJSON(w, http.StatusAccepted, map[string]string{"algorithm": string(algo), "status": "started"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var err error
	if r.URL.Query().Get("keep") == "endpoints" {
		err = s.sess.ResetKeepEndpoints()
	} else {
		err = s.sess.Reset()
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearWalls(w http.ResponseWriter, _ *http.Request) {
	if err := s.sess.ClearWalls(); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelay(w http.ResponseWriter, r *http.Request) {
	ms, err := strconv.Atoi(way.Param(r.Context(), "ms"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "delay must be an integer number of milliseconds"})
		return
	}
	if err := s.sess.SetDelay(time.Duration(ms) * time.Millisecond); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	f, err := formatParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	l, err := s.sess.Export()
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, err := layout.Encode(l, f)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if f == layout.YAML {
		w.Header().Set("Content-Type", "application/yaml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	_, _ = w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	f, err := formatParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxLayoutBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	l, err := layout.Decode(data, f)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.sess.Import(l); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func coordParam(r *http.Request) (grid.Coord, error) {
	row, err1 := strconv.Atoi(way.Param(r.Context(), "row"))
	col, err2 := strconv.Atoi(way.Param(r.Context(), "col"))
	if err1 != nil || err2 != nil {
		return grid.Coord{}, grid.ErrOutOfBounds
	}
	return grid.Coord{Row: row, Col: col}, nil
}

func formatParam(r *http.Request) (layout.Format, error) {
	f := r.URL.Query().Get("format")
	if f == "" {
		return layout.JSON, nil
	}
	return layout.ParseFormat(f)
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, grid.ErrOutOfBounds):
		status = http.StatusBadRequest
	case errors.Is(err, search.ErrUnknownAlgorithm):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrBusy), errors.Is(err, animate.ErrAlreadyRunning):
		status = http.StatusConflict
	case errors.Is(err, search.ErrMissingEndpoint),
		errors.Is(err, layout.ErrIncompleteLayout),
		errors.Is(err, layout.ErrInvalidLayout):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, layout.ErrUnknownFormat), errors.Is(err, animate.ErrBadDelay):
		status = http.StatusBadRequest
	case errors.Is(err, animate.ErrCancelled):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
