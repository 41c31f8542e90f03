package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "projval.toml")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "required_packages") {
		t.Fatalf("sample config looks wrong:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "projval.toml")
	if err := os.WriteFile(target, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cmd := newRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected refusal without --overwrite")
	}
}

func TestConfigShowPrintsResolvedTOML(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config", "show", "-c", filepath.Join(t.TempDir(), "none.toml"), "--root", "/tmp/project"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "root = '/tmp/project'") && !strings.Contains(text, `root = "/tmp/project"`) {
		t.Fatalf("flag override missing from output:\n%s", text)
	}
	if !strings.Contains(text, "tensorflow") {
		t.Fatalf("default tables missing from output:\n%s", text)
	}
}
