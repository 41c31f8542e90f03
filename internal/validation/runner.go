package validation

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/config"
)

// Report aggregates one validation run.
type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Root      string    `json:"root"`
	Strict    bool      `json:"strict"`
	Results   []Result  `json:"results"`
	Passed    bool      `json:"passed"`
}

// Runner executes the checkers sequentially in their fixed order.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	observer func(Result)
}

// Option customizes a Runner.
type Option func(*Runner)

// WithObserver registers a callback invoked after each checker
// completes, before the next one starts. The CLI uses it to stream
// per-checker output as the run progresses.
func WithObserver(fn func(Result)) Option {
	return func(r *Runner) {
		r.observer = fn
	}
}

// NewRunner builds a Runner for the given configuration. A nil logger
// discards debug tracing.
func NewRunner(cfg *config.Config, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Runner{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes all five checkers and ANDs their results. A failing
// checker never stops the run; every checker always executes and the
// report always carries five results.
func (r *Runner) Run() Report {
	report := Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Root:      r.cfg.Project.Root,
		Strict:    r.cfg.Checks.Strict,
		Passed:    true,
	}

	checks := []func(*config.Config, *slog.Logger) Result{
		CheckStructure,
		CheckNotebooks,
		CheckPipelineLayout,
		CheckRequirements,
		CheckGitignore,
	}

	for _, check := range checks {
		started := time.Now()
		result := check(r.cfg, r.logger)
		r.logger.Debug("checker finished",
			"check", result.Name,
			"passed", result.Passed,
			"duration", time.Since(started))
		if r.observer != nil {
			r.observer(result)
		}
		if !result.Passed {
			report.Passed = false
		}
		report.Results = append(report.Results, result)
	}
	return report
}
