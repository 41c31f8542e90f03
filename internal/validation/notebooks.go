package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/config"
)

var (
	errMissingCells = errors.New("Missing 'cells' key")
	errCellsNotList = errors.New("'cells' is not a list")
)

// CheckNotebooks parses each notebook as JSON and verifies the "cells"
// key. The first failing notebook ends the check; remaining notebooks
// are not inspected.
func CheckNotebooks(cfg *config.Config, logger *slog.Logger) Result {
	res := Result{
		Name:   "notebooks",
		Title:  "📓 Validating Jupyter notebooks...",
		Passed: true,
	}

	for _, notebook := range cfg.Checks.Notebooks {
		count, kind, err := inspectNotebook(filepath.Join(cfg.Project.Root, notebook))
		logger.Debug("notebook check", "notebook", notebook, "cells", count, "err", err)
		if err != nil {
			res.Items = append(res.Items, failItem(notebook, err.Error()))
			res.Passed = false
			res.Kind = kind
			return res
		}
		res.Items = append(res.Items, okItem(fmt.Sprintf("%s: %d cells - Valid structure", notebook, count)))
	}
	return res
}

// inspectNotebook returns the cell count, or a failure kind and error
// describing why the notebook is unusable.
func inspectNotebook(path string) (int, Kind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, KindIO, fmt.Errorf("Error - %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, KindParse, fmt.Errorf("Invalid JSON - %w", err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return 0, KindStructure, errMissingCells
	}
	cellsVal, ok := obj["cells"]
	if !ok {
		return 0, KindStructure, errMissingCells
	}
	cells, ok := cellsVal.([]any)
	if !ok {
		return 0, KindStructure, errCellsNotList
	}
	return len(cells), "", nil
}
