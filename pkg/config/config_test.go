package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Limits.MaxComponents != DefaultMaxComponents {
		t.Errorf("MaxComponents = %d", cfg.Limits.MaxComponents)
	}
	if cfg.Scan.MaxWorkers != DefaultMaxWorkers {
		t.Errorf("MaxWorkers = %d", cfg.Scan.MaxWorkers)
	}
	if cfg.Scan.Manifest != "package.json" {
		t.Errorf("Manifest = %q", cfg.Scan.Manifest)
	}
	if !cfg.Scan.Gitignore {
		t.Error("gitignore exclusion should default on")
	}

	found := false
	for _, d := range cfg.Scan.ExcludeDirs {
		if d == "node_modules" {
			found = true
		}
	}
	if !found {
		t.Error("node_modules should be excluded by default")
	}
}

func TestExtensionsFor(t *testing.T) {
	cfg := DefaultConfig()

	comps := cfg.ExtensionsFor("components")
	if len(comps) != 2 || comps[0] != "tsx" || comps[1] != "jsx" {
		t.Errorf("components extensions = %v", comps)
	}

	// Unknown scopes fall back to the source group.
	fallback := cfg.ExtensionsFor("nonsense")
	source := cfg.ExtensionsFor("source")
	if len(fallback) != len(source) {
		t.Errorf("fallback = %v, want source group %v", fallback, source)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webscope.toml")
	content := `
[limits]
max_components = 5
top_classes = 7

[scan]
max_workers = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Limits.MaxComponents != 5 {
		t.Errorf("MaxComponents = %d, want 5", cfg.Limits.MaxComponents)
	}
	if cfg.Limits.TopClasses != 7 {
		t.Errorf("TopClasses = %d, want 7", cfg.Limits.TopClasses)
	}
	if cfg.Scan.MaxWorkers != 2 {
		t.Errorf("MaxWorkers = %d, want 2", cfg.Scan.MaxWorkers)
	}
	// Unset fields keep their defaults.
	if cfg.Limits.MaxRoutes != DefaultMaxRoutes {
		t.Errorf("MaxRoutes = %d, want default", cfg.Limits.MaxRoutes)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webscope.yaml")
	content := "limits:\n  max_routes: 9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Limits.MaxRoutes != 9 {
		t.Errorf("MaxRoutes = %d, want 9", cfg.Limits.MaxRoutes)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
