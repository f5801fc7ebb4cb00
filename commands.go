package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/pathway-search/analysis"
	"github.com/nodeadmin/pathway-search/internal/apperr"
	"github.com/nodeadmin/pathway-search/internal/config"
	"github.com/nodeadmin/pathway-search/internal/logging"
	"github.com/nodeadmin/pathway-search/internal/metrics"
	"github.com/nodeadmin/pathway-search/report"
)

// app is the state shared by every command once configuration is loaded.
type app struct {
	cfg      *config.Config
	logger   logging.Logger
	metrics  *metrics.Metrics
	analyzer *analysis.Analyzer
	stdout   io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathsearch [file]",
		Short: "Find the pathways producing the most of a molecule",
		Long: `pathsearch reads a BioPAX Level 3 pathway file, builds the tree of nested
pathways and reactions under the root pathway, counts the products generated
in each pathway and reports which pathway produces the most of each queried
molecule.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, args, stdout)
			if err != nil {
				return err
			}
			defer a.close()
			return a.analyse()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("file", "", "BioPAX pathway file (env PATHWAY_FILE)")
	pf.String("defaults", "", "starting molecule quantities, one name=value per line (env DEFAULTS_FILE)")
	pf.StringSlice("molecule", nil, "molecule to query, repeatable (default ADP)")
	pf.String("format", config.FormatText, "report format: text, json or yaml")
	pf.Bool("pretty", false, "indent JSON output")
	pf.Bool("tree", false, "include the pathway tree in the report")
	pf.String("out", "", "write the report to this file instead of stdout")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("metrics-file", "", "write prometheus metrics to this textfile after the run")

	root.AddCommand(newTreeCmd(stdout), newPathwaysCmd(stdout), newMostCmd(stdout), newVersionCmd(stdout))
	return root
}

func newTreeCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the pathway tree under the root pathway",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, args, stdout)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.analyzer.RunFile(a.cfg.PathwayFile, analysis.Options{})
			if err != nil {
				return err
			}
			if err := report.WriteTree(stdout, res.Tree); err != nil {
				return apperr.Wrap(err, apperr.CodeOutput, "cannot write tree")
			}
			return nil
		},
	}
}

func newPathwaysCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "pathways [file]",
		Short: "List every pathway in the file and the top-level ones",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, args, stdout)
			if err != nil {
				return err
			}
			defer a.close()

			m, err := a.analyzer.Load(a.cfg.PathwayFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Pathways:")
			for _, p := range m.Pathways() {
				fmt.Fprintf(stdout, "\t%s\t%s\n", p.DisplayName(), p.Identifier())
			}
			fmt.Fprintln(stdout, "Top-level pathways:")
			for _, p := range m.TopPathways() {
				fmt.Fprintf(stdout, "\t%s\t%s\n", p.DisplayName(), p.Identifier())
			}
			return nil
		},
	}
}

func newMostCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "most <molecule>...",
		Short: "Report only which pathways produce the most of each molecule",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, nil, stdout)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.analyzer.RunFile(a.cfg.PathwayFile, analysis.Options{Molecules: args})
			if err != nil {
				return err
			}
			for _, m := range res.Most {
				report.WriteMost(stdout, m)
			}
			return nil
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pathsearch",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "pathsearch version %s\n", strings.TrimSpace(version))
		},
	}
}

// setup loads configuration, with a positional file overriding --file, and
// builds the logger and analyzer.
func setup(cmd *cobra.Command, args []string, stdout io.Writer) (*app, error) {
	flags := cmd.Flags()
	if len(args) == 1 {
		if err := flags.Set("file", args[0]); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeInvalidCommand, "invalid pathway file argument")
		}
	}
	configPath, _ := flags.GetString("config")

	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeConfig, "invalid configuration")
	}
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeConfig, "cannot create logger")
	}
	if format := detectFormat(cfg.PathwayFile); format != "owl" {
		logger.Warn("pathway file does not look like RDF/XML, reading it anyway",
			logging.String("path", cfg.PathwayFile))
	}

	m := metrics.New()
	return &app{
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
		analyzer: analysis.New(logger, analysis.WithMetrics(m)),
		stdout:   stdout,
	}, nil
}

// analyse runs the full pipeline and writes the report.
func (a *app) analyse() error {
	res, err := a.analyzer.RunFile(a.cfg.PathwayFile, analysis.Options{
		Molecules:    a.cfg.Molecules,
		DefaultsFile: a.cfg.DefaultsFile,
	})
	if err != nil {
		return err
	}

	rep := report.Build(res, report.Options{
		Tree:      a.cfg.Output.Tree,
		Molecules: res.Defaults != nil,
	})
	if a.cfg.Output.Path != "" {
		err = report.WriteFile(rep, a.cfg.Output.Path, a.cfg.Output.Format, a.cfg.Output.Pretty)
	} else {
		err = report.Write(rep, a.stdout, a.cfg.Output.Format, a.cfg.Output.Pretty)
	}
	if err != nil {
		return apperr.Wrap(err, apperr.CodeOutput, "cannot write report")
	}

	a.logger.Info("analysis finished",
		logging.String("run_id", res.RunID),
		logging.Duration("elapsed", res.Duration))
	return nil
}

// close exports metrics and flushes the logger. Metrics are written even when
// the run failed.
func (a *app) close() {
	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := a.metrics.WriteTextfile(path); err != nil {
			a.logger.Warn("cannot write metrics textfile", logging.Err(err))
		}
	}
	_ = a.logger.Sync()
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".owl", ".xml", ".rdf":
		return "owl"
	}
	return ""
}
