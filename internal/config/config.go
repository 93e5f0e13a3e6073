// Package config loads the optional .decafc.yaml project file: the
// default analysis target, a diagnostic cutoff, and the report output
// format. Any setting left unset in the file, or with no file at all,
// falls back to Default().
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Format selects how the diagnostic list is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config is the resolved set of driver settings.
type Config struct {
	// Target is "name-resolution" or "type-check", matching the
	// driver's Target enum.
	Target string `yaml:"target"`

	// MaxDiagnostics caps how many diagnostics the text format prints;
	// 0 means unlimited. The JSON report always lists every diagnostic.
	MaxDiagnostics int `yaml:"maxDiagnostics"`

	// Format selects FormatText or FormatJSON.
	Format Format `yaml:"format"`
}

// Default returns the built-in settings used when no config file is
// present or a field is omitted from one.
func Default() Config {
	return Config{
		Target:         "type-check",
		MaxDiagnostics: 0,
		Format:         FormatText,
	}
}

// Load reads and merges path (typically ".decafc.yaml") over
// Default(). A missing file is not an error; it simply yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
