package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".decafc.yaml")
	content := "target: name-resolution\nmaxDiagnostics: 20\nformat: json\n"
	if err := writeFile(path, content); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Target != "name-resolution" {
		t.Errorf("Target = %q, want name-resolution", cfg.Target)
	}
	if cfg.MaxDiagnostics != 20 {
		t.Errorf("MaxDiagnostics = %d, want 20", cfg.MaxDiagnostics)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
