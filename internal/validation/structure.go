package validation

import (
	"log/slog"
	"path/filepath"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/config"
	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/fileutil"
)

// CheckStructure verifies that every required directory and file exists
// under the project root. Unlike the original script it does not stop at
// the first miss: every item is checked so one run reports the full set
// of missing paths.
func CheckStructure(cfg *config.Config, logger *slog.Logger) Result {
	res := Result{
		Name:   "structure",
		Title:  "🔍 Validating project structure...",
		Passed: true,
	}

	root := cfg.Project.Root
	for _, dir := range cfg.Checks.RequiredDirs {
		err := fileutil.CheckDir(filepath.Join(root, dir))
		logger.Debug("structure check", "dir", dir, "err", err)
		if err != nil {
			res.Items = append(res.Items, failItem("Missing directory: "+dir, err.Error()))
			res.Passed = false
			continue
		}
		res.Items = append(res.Items, okItem("Directory: "+dir))
	}

	for _, file := range cfg.Checks.RequiredFiles {
		err := fileutil.CheckFile(filepath.Join(root, file))
		logger.Debug("structure check", "file", file, "err", err)
		if err != nil {
			res.Items = append(res.Items, failItem("Missing file: "+file, err.Error()))
			res.Passed = false
			continue
		}
		res.Items = append(res.Items, okItem("File: "+file))
	}

	if !res.Passed {
		res.Kind = KindMissingPath
	}
	return res
}
