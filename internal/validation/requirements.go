package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/config"
)

// CheckRequirements reads the dependency manifest and verifies that
// every required package name appears, case-insensitively. The check
// stops at the first missing package: callers depend on the first miss
// in table order being the one reported.
func CheckRequirements(cfg *config.Config, logger *slog.Logger) Result {
	res := Result{
		Name:   "requirements",
		Title:  "📦 Validating requirements...",
		Passed: true,
	}

	manifestPath := filepath.Join(cfg.Project.Root, cfg.Checks.RequirementsFile)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		logger.Debug("requirements check", "path", manifestPath, "err", err)
		res.Items = append(res.Items, failItem("Error reading "+cfg.Checks.RequirementsFile, err.Error()))
		res.Passed = false
		res.Kind = KindIO
		return res
	}

	fold := cases.Fold()
	manifest := fold.String(string(data))
	for _, pkg := range cfg.Checks.RequiredPackages {
		found := strings.Contains(manifest, fold.String(pkg))
		logger.Debug("requirements check", "package", pkg, "found", found)
		if !found {
			res.Items = append(res.Items, failItem(pkg+" missing from requirements", ""))
			res.Passed = false
			return res
		}
		res.Items = append(res.Items, okItem(pkg+" specified in requirements"))
	}
	return res
}
