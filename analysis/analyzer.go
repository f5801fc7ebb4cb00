// Package analysis runs the pathway pipeline: load a model, pick the root
// pathway, build the tree, tally products and answer molecule queries.
package analysis

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nodeadmin/pathway-search/biopax"
	"github.com/nodeadmin/pathway-search/internal/apperr"
	"github.com/nodeadmin/pathway-search/internal/logging"
	"github.com/nodeadmin/pathway-search/internal/metrics"
	"github.com/nodeadmin/pathway-search/pathway"
	"github.com/nodeadmin/pathway-search/stock"
)

// Options selects what a run computes.
type Options struct {
	// Molecules are answered with Table.FindMost, in order.
	Molecules []string
	// DefaultsFile, if set, seeds starting molecule quantities.
	DefaultsFile string
}

// Root identifies the chosen root pathway.
type Root struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Result is everything one run produced.
type Result struct {
	RunID    string
	Source   string
	Root     Root
	Tree     *pathway.Node
	Table    pathway.Table
	Stats    pathway.Stats
	Most     []pathway.Most
	Stock    *stock.List
	Defaults *stock.Summary
	Issues   []biopax.Issue
	Duration time.Duration
}

// Analyzer is single-threaded; a Result is never shared between runs.
type Analyzer struct {
	logger  logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMetrics records run metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

func New(logger logging.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	a := &Analyzer{logger: logger.Named("analysis"), now: time.Now}
	for _, o := range opts {
		o(a)
	}
	if a.metrics == nil {
		a.metrics = metrics.New()
	}
	return a
}

// Metrics returns the collectors the analyzer records on.
func (a *Analyzer) Metrics() *metrics.Metrics { return a.metrics }

func (a *Analyzer) since(start time.Time) time.Duration { return a.now().Sub(start) }

// Load reads the pathway file. Failures are CodeModelLoad errors.
func (a *Analyzer) Load(path string) (*biopax.Model, error) {
	start := a.now()
	m, err := biopax.LoadFile(path)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeModelLoad, "cannot load pathway file "+path)
	}
	a.metrics.ObserveStage(metrics.StageLoad, a.since(start))
	a.metrics.ElementsLoaded.Add(float64(m.Len()))
	a.metrics.LoadIssues.Add(float64(len(m.Issues())))

	a.logger.Info("pathway file loaded",
		logging.String("path", path),
		logging.Int("elements", m.Len()),
		logging.Int("pathways", len(m.Pathways())),
		logging.Int("issues", len(m.Issues())))
	for _, is := range m.Issues() {
		a.logger.Warn("skipped "+is.Reason,
			logging.String("element", is.ElementID),
			logging.String("property", is.Property),
			logging.String("value", is.Value))
	}
	return m, nil
}

// Run analyses an already loaded model.
func (a *Analyzer) Run(m *biopax.Model, opts Options) (res *Result, err error) {
	start := a.now()
	runID := uuid.NewString()
	log := a.logger.With(logging.String("run_id", runID))
	defer func() { a.metrics.RunFinished(err) }()

	root, err := pathway.SelectRoot(m.Objects())
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeNoRootPathway, "cannot select a root pathway")
	}
	log.Info("root pathway selected", logging.String("id", root.Identifier()), logging.String("name", root.DisplayName()))

	stage := a.now()
	tree, err := pathway.Build(root)
	if err != nil {
		if errors.Is(err, pathway.ErrCyclicPathway) {
			return nil, apperr.Wrap(err, apperr.CodeCyclicPathway, "cannot build pathway tree")
		}
		return nil, apperr.Wrap(err, apperr.CodeInternal, "cannot build pathway tree")
	}
	a.metrics.ObserveStage(metrics.StageBuild, a.since(stage))
	size := tree.Size()
	a.metrics.NodesBuilt.Add(float64(size))
	log.Debug("tree built", logging.Int("nodes", size))

	stage = a.now()
	table, stats, err := pathway.AggregateWithStats(tree)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "cannot aggregate products")
	}
	a.metrics.ObserveStage(metrics.StageAggregate, a.since(stage))
	a.metrics.ReactionsVisited.Add(float64(stats.Reactions))
	a.metrics.ProductsTallied.Add(float64(stats.ProductsTallied))
	a.metrics.PathwaysTallied.Set(float64(len(table)))
	log.Debug("products tallied",
		logging.Int("pathways", len(table)),
		logging.Int("reactions", stats.Reactions),
		logging.Int("products", stats.ProductsTallied))

	stage = a.now()
	most := make([]pathway.Most, 0, len(opts.Molecules))
	for _, mol := range opts.Molecules {
		r := table.FindMost(mol)
		most = append(most, r)
		log.Info("most producing pathways",
			logging.String("molecule", mol),
			logging.Int("count", r.Count),
			logging.Strings("pathways", r.Pathways))
	}
	a.metrics.ObserveStage(metrics.StageQuery, a.since(stage))

	res = &Result{
		RunID:  runID,
		Root:   Root{ID: root.Identifier(), Name: root.DisplayName()},
		Tree:   tree,
		Table:  table,
		Stats:  stats,
		Most:   most,
		Stock:  stock.FromModel(m),
		Issues: m.Issues(),
	}

	if opts.DefaultsFile != "" {
		sum, err := stock.ReadDefaultsFile(opts.DefaultsFile, res.Stock, log)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeDefaults, "cannot read defaults file")
		}
		res.Defaults = &sum
		log.Info("defaults applied", logging.String("path", opts.DefaultsFile), logging.Int("applied", sum.Applied))
	}

	res.Duration = a.since(start)
	return res, nil
}

// RunFile loads path and runs the analysis on it.
func (a *Analyzer) RunFile(path string, opts Options) (*Result, error) {
	m, err := a.Load(path)
	if err != nil {
		a.metrics.RunFinished(err)
		return nil, err
	}
	res, err := a.Run(m, opts)
	if err != nil {
		return nil, err
	}
	res.Source = path
	return res, nil
}
