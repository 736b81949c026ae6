// Package runner orchestrates the generator subcommands as sequential
// subprocesses.
package runner

import (
	"context"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Step is one generator invocation.
type Step struct {
	Name string
	Args []string
}

// Result records the outcome of one step.
type Result struct {
	Step     string
	Err      error
	Output   string
	Duration time.Duration
}

// Runner executes steps against a single binary, strictly in order. A failed
// step is recorded and later steps still run.
type Runner struct {
	bin    string
	logger *zap.Logger
}

// New creates a runner that invokes the given binary.
func New(bin string, logger *zap.Logger) *Runner {
	return &Runner{bin: bin, logger: logger}
}

// Run executes all steps sequentially, capturing each step's combined output
// before starting the next. It returns per-step results and whether every
// step succeeded.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]Result, bool) {
	runID := uuid.New()
	logger := r.logger.With(zap.String("run_id", runID.String()))
	logger.Info("starting generation run", zap.Int("steps", len(steps)))

	results := make([]Result, 0, len(steps))
	ok := true

	for _, step := range steps {
		logger.Info("running step",
			zap.String("step", step.Name),
			zap.Strings("args", step.Args))

		start := time.Now()
		out, err := exec.CommandContext(ctx, r.bin, step.Args...).CombinedOutput()
		result := Result{
			Step:     step.Name,
			Err:      err,
			Output:   string(out),
			Duration: time.Since(start),
		}
		results = append(results, result)

		if err != nil {
			ok = false
			logger.Error("step failed",
				zap.String("step", step.Name),
				zap.Duration("duration", result.Duration),
				zap.String("output", result.Output),
				zap.Error(err))
			continue
		}
		logger.Info("step succeeded",
			zap.String("step", step.Name),
			zap.Duration("duration", result.Duration))
	}

	succeeded := 0
	for _, res := range results {
		if res.Err == nil {
			succeeded++
		}
	}
	logger.Info("generation run finished",
		zap.Int("succeeded", succeeded),
		zap.Int("total", len(results)),
		zap.Bool("ok", ok))

	return results, ok
}
