package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxTraceIterations != 0 {
		t.Fatalf("Default().MaxTraceIterations = %d, want 0", cfg.MaxTraceIterations)
	}
	if cfg.OutputJSON != "rules.json" || cfg.OutputJS != "rules.js" {
		t.Fatalf("Default() output paths = %+v", cfg)
	}
}

func TestLoadFileParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "max_trace_iterations: 5\noutput_json: out.json\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.MaxTraceIterations != 5 {
		t.Fatalf("MaxTraceIterations = %d, want 5", cfg.MaxTraceIterations)
	}
	if cfg.OutputJSON != "out.json" {
		t.Fatalf("OutputJSON = %q, want out.json", cfg.OutputJSON)
	}
	// output_js was not set in the file, so the default survives.
	if cfg.OutputJS != "rules.js" {
		t.Fatalf("OutputJS = %q, want default rules.js", cfg.OutputJS)
	}
}

func TestLoadFileMissingPath(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error loading a missing config file")
	}
}

func TestLoadFileMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("not: [valid: yaml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error parsing malformed YAML")
	}
}
