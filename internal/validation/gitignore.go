package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/config"
)

// CheckGitignore reads the ignore-rules file and verifies each expected
// pattern appears verbatim (case-sensitive, unlike the requirements
// check). Missing patterns only warn; the check fails only when the
// file itself cannot be read, or under checks.strict.
func CheckGitignore(cfg *config.Config, logger *slog.Logger) Result {
	res := Result{
		Name:   "gitignore",
		Title:  "🚫 Validating .gitignore...",
		Passed: true,
	}

	ignorePath := filepath.Join(cfg.Project.Root, cfg.Checks.IgnoreFile)
	data, err := os.ReadFile(ignorePath)
	if err != nil {
		logger.Debug("gitignore check", "path", ignorePath, "err", err)
		res.Items = append(res.Items, failItem("Error reading "+cfg.Checks.IgnoreFile, err.Error()))
		res.Passed = false
		res.Kind = KindIO
		return res
	}

	rules := string(data)
	missed := false
	for _, pattern := range cfg.Checks.IgnorePatterns {
		found := strings.Contains(rules, pattern)
		logger.Debug("gitignore check", "pattern", pattern, "found", found)
		if found {
			res.Items = append(res.Items, okItem(pattern+" pattern included"))
		} else {
			res.Items = append(res.Items, warnItem(pattern+" pattern might be missing"))
			missed = true
		}
	}

	if missed && cfg.Checks.Strict {
		res.Passed = false
	}
	return res
}
