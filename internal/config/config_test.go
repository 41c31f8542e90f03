package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projval.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config file, got exists=true")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %s, got %s", path, resolved)
	}
	if cfg.Project.Root != "." {
		t.Fatalf("expected default root, got %q", cfg.Project.Root)
	}
	if len(cfg.Checks.RequiredPackages) != 8 {
		t.Fatalf("expected 8 default packages, got %d", len(cfg.Checks.RequiredPackages))
	}
	if cfg.Checks.Strict {
		t.Fatalf("strict must default to false")
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projval.toml")
	content := `
[project]
root = "/srv/project"

[checks]
strict = true
data_layers = ["raw", "curated"]

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatalf("expected config file to be found")
	}
	if cfg.Project.Root != "/srv/project" {
		t.Fatalf("unexpected root: %q", cfg.Project.Root)
	}
	if !cfg.Checks.Strict {
		t.Fatalf("expected strict=true")
	}
	if len(cfg.Checks.DataLayers) != 2 || cfg.Checks.DataLayers[1] != "curated" {
		t.Fatalf("unexpected data layers: %v", cfg.Checks.DataLayers)
	}
	// Untouched tables keep their defaults.
	if len(cfg.Checks.RequiredDirs) != 6 {
		t.Fatalf("expected default required dirs, got %v", cfg.Checks.RequiredDirs)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projval.toml")
	content := "[logging]\nformat = \"xml\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error for bad log format")
	}
	if !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsEmptyTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projval.toml")
	content := "[checks]\nrequired_dirs = []\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "checks.required_dirs") {
		t.Fatalf("expected required_dirs error, got %v", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projval.toml")
	if err := os.WriteFile(path, []byte("[checks\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestSampleConfigParsesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projval.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	def := Default()
	if cfg.Project.Root != def.Project.Root {
		t.Fatalf("sample root %q differs from default %q", cfg.Project.Root, def.Project.Root)
	}
	if len(cfg.Checks.IgnorePatterns) != len(def.Checks.IgnorePatterns) {
		t.Fatalf("sample ignore patterns differ from defaults")
	}
	if cfg.Checks.Strict != def.Checks.Strict {
		t.Fatalf("sample strict differs from default")
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := ExpandPath("~/projval.toml")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "projval.toml") {
		t.Fatalf("unexpected expansion: %s", got)
	}
}
