package validation

import (
	"io"
	"log/slog"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/config"
)

func testConfig(root string) *config.Config {
	cfg := config.Default()
	cfg.Project.Root = root
	return &cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func itemLabels(items []Item) []string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	return labels
}
