// Package testsupport builds throwaway project trees for checker tests.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteNotebook writes a minimal valid notebook with the given number
// of markdown cells.
func WriteNotebook(t testing.TB, path string, cells int) {
	t.Helper()

	entries := make([]string, 0, cells)
	for i := 0; i < cells; i++ {
		entries = append(entries, fmt.Sprintf(
			`{"cell_type": "markdown", "metadata": {}, "source": ["cell %d"]}`, i))
	}
	content := fmt.Sprintf(
		`{"cells": [%s], "metadata": {}, "nbformat": 4, "nbformat_minor": 5}`,
		strings.Join(entries, ", "))
	WriteFile(t, path, content)
}

// ScaffoldProject populates root with the complete expected layout:
// all required directories and files, valid notebooks, layer READMEs,
// a full requirements manifest, and every expected ignore pattern.
func ScaffoldProject(t testing.TB, root string) {
	t.Helper()

	for _, dir := range []string{
		"data/raw", "data/stage", "data/processed", "notebooks", "models",
	} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	WriteFile(t, filepath.Join(root, "README.md"), "# E-commerce Retention Predictor\n")
	WriteFile(t, filepath.Join(root, "requirements.txt"), strings.Join([]string{
		"pandas>=2.0",
		"numpy>=1.24",
		"tensorflow>=2.13",
		"scikit-learn>=1.3",
		"matplotlib>=3.7",
		"seaborn>=0.12",
		"faker>=19.0",
		"jupyter>=1.0",
	}, "\n")+"\n")
	WriteFile(t, filepath.Join(root, ".gitignore"), strings.Join([]string{
		"__pycache__/",
		"*.pyc",
		".ipynb_checkpoints",
		"data/raw/*.csv",
		"models/",
		".env",
	}, "\n")+"\n")

	for _, notebook := range []string{
		"notebooks/01_data_ingestion.ipynb",
		"notebooks/02_data_cleaning.ipynb",
		"notebooks/03_feature_engineering.ipynb",
		"notebooks/04_model_training.ipynb",
	} {
		WriteNotebook(t, filepath.Join(root, notebook), 3)
	}

	for _, layer := range []string{"raw", "stage", "processed"} {
		WriteFile(t, filepath.Join(root, "data", layer, "README.md"),
			fmt.Sprintf("# %s layer\n", layer))
	}
	WriteFile(t, filepath.Join(root, "models", "README.md"), "# Model artifacts\n")
}
