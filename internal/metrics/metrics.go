// Package metrics holds the prometheus collectors recorded during an
// analysis run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pathsearch"

// Pipeline stages observed by StageDuration.
const (
	StageLoad      = "load"
	StageBuild     = "build"
	StageAggregate = "aggregate"
	StageQuery     = "query"
)

// DefaultStageBuckets suits parses of small files up to genome-scale models.
var DefaultStageBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 30}

// Metrics is the set of collectors for one process.
type Metrics struct {
	registry *prometheus.Registry

	ElementsLoaded   prometheus.Counter
	LoadIssues       prometheus.Counter
	NodesBuilt       prometheus.Counter
	ReactionsVisited prometheus.Counter
	ProductsTallied  prometheus.Counter
	PathwaysTallied  prometheus.Gauge
	Runs             *prometheus.CounterVec
	StageDuration    *prometheus.HistogramVec
}

// New creates the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ElementsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "elements_loaded_total",
			Help: "BioPAX elements read from pathway files.",
		}),
		LoadIssues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "load_issues_total",
			Help: "Dangling references and unusable values met while loading.",
		}),
		NodesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "tree_nodes_built_total",
			Help: "Nodes created by the tree builder.",
		}),
		ReactionsVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reactions_visited_total",
			Help: "Reaction nodes visited during aggregation.",
		}),
		ProductsTallied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "products_tallied_total",
			Help: "Product occurrences counted during aggregation.",
		}),
		PathwaysTallied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "pathways_tallied",
			Help: "Pathways present in the last aggregation table.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "runs_total",
			Help: "Analysis runs by outcome.",
		}, []string{"outcome"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "stage_duration_seconds",
			Help:    "Time spent in each pipeline stage.",
			Buckets: DefaultStageBuckets,
		}, []string{"stage"}),
	}
	reg.MustRegister(
		m.ElementsLoaded, m.LoadIssues, m.NodesBuilt, m.ReactionsVisited,
		m.ProductsTallied, m.PathwaysTallied, m.Runs, m.StageDuration,
	)
	return m
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveStage records how long a stage took.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RunFinished counts a run; err decides the outcome label.
func (m *Metrics) RunFinished(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.Runs.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
