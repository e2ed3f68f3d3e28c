package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the compiler's on-disk configuration, loaded the same way the
// teacher's ext package loads project config: a single YAML document
// unmarshaled straight into a plain struct.
type Config struct {
	// MaxTraceIterations is loaded from the file but not applied: tracing
	// always uses the constant tracer.MaxTraceIterations.
	MaxTraceIterations int `yaml:"max_trace_iterations"`
	// OutputJSON is the path the JSON rule document is written to.
	OutputJSON string `yaml:"output_json"`
	// OutputJS is the path the standalone JS snippet is written to.
	OutputJS string `yaml:"output_js"`
}

// Default returns the zero-config baseline: no iteration override, rules
// written to stdout-adjacent default filenames.
func Default() Config {
	return Config{
		MaxTraceIterations: 0,
		OutputJSON:         "rules.json",
		OutputJS:           "rules.js",
	}
}

// LoadFile reads and parses a YAML config file at path.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
