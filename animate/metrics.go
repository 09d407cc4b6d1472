package animate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors a Scheduler updates.
type Metrics struct {
	runs     *prometheus.CounterVec
	rejected *prometheus.CounterVec
	visited  *prometheus.HistogramVec
	pathLen  *prometheus.HistogramVec
}

// NewMetrics registers the scheduler collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_runs_total",
			Help: "Finished search runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_runs_rejected_total",
			Help: "Run requests refused before starting",
		}, []string{"reason"}), // "busy", "missing_endpoint", "unknown_algorithm"
		visited: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_visited_cells",
			Help:    "Cells marked visited per run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		pathLen: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_path_length",
			Help:    "Steps on the reconstructed route",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observe(r *Report) {
	if m == nil {
		return
	}
	algo := string(r.Algorithm)
	m.runs.WithLabelValues(algo, r.Outcome.String()).Inc()
	m.visited.WithLabelValues(algo).Observe(float64(r.Visited))
	if n := r.PathLen(); n >= 0 {
		m.pathLen.WithLabelValues(algo).Observe(float64(n))
	}
}

func (m *Metrics) reject(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}
