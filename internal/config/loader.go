package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the prefix of every analyser environment variable, e.g.
// PATHOPT_OUTPUT_FORMAT.
const envPrefix = "PATHOPT"

// Environment variables kept for compatibility with existing launch scripts.
const (
	EnvPathwayFile  = "PATHWAY_FILE"
	EnvDefaultsFile = "DEFAULTS_FILE"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"file":         "pathway_file",
	"defaults":     "defaults_file",
	"molecule":     "molecules",
	"format":       "output.format",
	"pretty":       "output.pretty",
	"tree":         "output.tree",
	"out":          "output.path",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-file": "metrics.textfile",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so every key gets a default.
	v.SetDefault("pathway_file", "")
	v.SetDefault("defaults_file", "")
	v.SetDefault("molecules", []string{})
	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.tree", false)
	v.SetDefault("output.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_paths", []string{})
	v.SetDefault("metrics.textfile", "")

	_ = v.BindEnv("pathway_file", envPrefix+"_PATHWAY_FILE", EnvPathwayFile)
	_ = v.BindEnv("defaults_file", envPrefix+"_DEFAULTS_FILE", EnvDefaultsFile)
	return v
}

// Load builds a Config from, in increasing precedence: defaults, the YAML
// file at configPath (optional), environment variables and the flags that
// were set on the command line.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", configPath, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
