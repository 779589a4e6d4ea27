// Package metrics exports A* search activity as Prometheus metrics.
//
// A SearchMetrics is fed two ways: Options returns astar hooks that count
// expansions, relaxations and reopenings while a search runs, and Observe
// records the outcome once it returns. FindPath does both around a Search and
// also times it.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
)

// StatusError labels searches that returned an error.
const StatusError = "error"

// SearchMetrics holds the collectors for one kind of search.
type SearchMetrics[N comparable, C core.Cost] struct {
	searches    *prometheus.CounterVec
	expansions  prometheus.Counter
	relaxations prometheus.Counter
	reopenings  prometheus.Counter
	pathCost    prometheus.Histogram
	pathLength  prometheus.Histogram
	duration    prometheus.Histogram
}

// NewSearchMetrics creates the collectors under namespace and registers them
// with reg. It panics if registration fails, like prometheus.MustRegister.
func NewSearchMetrics[N comparable, C core.Cost](reg prometheus.Registerer, namespace string) *SearchMetrics[N, C] {
	m := &SearchMetrics[N, C]{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "astar_searches_total",
			Help:      "The total number of A* searches by terminal status",
		}, []string{"status"}),
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "astar_expansions_total",
			Help:      "The total number of node expansions",
		}),
		relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "astar_relaxations_total",
			Help:      "The total number of improving edge relaxations",
		}),
		reopenings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "astar_reopenings_total",
			Help:      "The total number of closed nodes reopened",
		}),
		pathCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "astar_path_cost",
			Help:      "The total cost of found paths",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "astar_path_nodes",
			Help:      "The number of nodes on found paths",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "astar_search_duration_seconds",
			Help:      "The duration of searches run through FindPath",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.searches, m.expansions, m.relaxations, m.reopenings, m.pathCost, m.pathLength, m.duration)

	return m
}

// Options returns hooks that feed the live counters. Pass them to
// astar.NewSearch or astar.FindPath; they replace any earlier hook of the
// same kind in the option list.
func (m *SearchMetrics[N, C]) Options() []astar.Option[N, C] {
	return []astar.Option[N, C]{
		astar.WithOnExpand(func(N, C) { m.expansions.Inc() }),
		astar.WithOnRelax(func(N, N, C) { m.relaxations.Inc() }),
		astar.WithOnReopen(func(N, C) { m.reopenings.Inc() }),
	}
}

// Observe records the outcome of one search. A non-nil err is counted under
// StatusError and res is ignored.
func (m *SearchMetrics[N, C]) Observe(res astar.Result[N, C], err error) {
	if err != nil {
		m.searches.WithLabelValues(StatusError).Inc()
		return
	}
	m.searches.WithLabelValues(res.Status.String()).Inc()
	if res.Found() {
		m.pathCost.Observe(float64(res.TotalCost))
		m.pathLength.Observe(float64(len(res.Path)))
	}
}

// FindPath runs s.FindPath, times it and observes the outcome.
func (m *SearchMetrics[N, C]) FindPath(ctx context.Context, s *astar.Search[N, C], source, destination N) (astar.Result[N, C], error) {
	timer := prometheus.NewTimer(m.duration)
	res, err := s.FindPath(ctx, source, destination)
	timer.ObserveDuration()
	m.Observe(res, err)

	return res, err
}
