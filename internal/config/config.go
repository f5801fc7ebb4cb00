// Package config defines the analyser's configuration and loads it from a
// YAML file, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nodeadmin/pathway-search/internal/logging"
)

// Output formats understood by the report writer.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var outputFormats = []string{FormatText, FormatJSON, FormatYAML}

// DefaultMolecule is queried when no molecule is configured.
const DefaultMolecule = "ADP"

// OutputConfig controls how the report is rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
	// Tree adds a depth-indented dump of the pathway tree.
	Tree bool `mapstructure:"tree" yaml:"tree"`
	// Path is the report destination; empty means stdout.
	Path string `mapstructure:"path" yaml:"path"`
}

// MetricsConfig controls the prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written after each run when non-empty.
	Textfile string `mapstructure:"textfile" yaml:"textfile"`
}

// Config is the complete analyser configuration.
type Config struct {
	PathwayFile  string            `mapstructure:"pathway_file" yaml:"pathway_file"`
	DefaultsFile string            `mapstructure:"defaults_file" yaml:"defaults_file"`
	Molecules    []string          `mapstructure:"molecules" yaml:"molecules"`
	Output       OutputConfig      `mapstructure:"output" yaml:"output"`
	Log          logging.LogConfig `mapstructure:"log" yaml:"log"`
	Metrics      MetricsConfig     `mapstructure:"metrics" yaml:"metrics"`
}

// ApplyDefaults fills unset fields.
func ApplyDefaults(cfg *Config) {
	molecules := cfg.Molecules[:0]
	for _, m := range cfg.Molecules {
		if m = strings.TrimSpace(m); m != "" {
			molecules = append(molecules, m)
		}
	}
	cfg.Molecules = molecules
	if len(cfg.Molecules) == 0 {
		cfg.Molecules = []string{DefaultMolecule}
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

// Validate reports every problem found in cfg.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.PathwayFile) == "" {
		errs = append(errs, errors.New("pathway_file is required (flag, PATHWAY_FILE or config file)"))
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q is not one of %s", c.Output.Format, strings.Join(outputFormats, ", ")))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format %q is not console or json", c.Log.Format))
	}
	return errors.Join(errs...)
}
