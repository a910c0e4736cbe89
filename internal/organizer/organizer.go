package organizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"downsort/internal/classify"
	"downsort/internal/config"
	"downsort/internal/history"
	"downsort/internal/logging"
	"downsort/internal/place"
	"downsort/internal/scan"
	"downsort/internal/services"
)

// Engine runs the scan → classify → place pipeline over one directory.
// Entries are processed strictly in sequence; the only state carried across
// entries is the accumulating report.
type Engine struct {
	cfg        *config.Config
	classifier *classify.Classifier
	store      *history.Store
	logger     *slog.Logger
	now        func() time.Time
}

// New constructs the engine. The store may be nil when history recording is
// disabled.
func New(cfg *config.Config, store *history.Store, logger *slog.Logger) (*Engine, error) {
	rules, err := cfg.Ruleset()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "organizing", "build ruleset", "Invalid classification rules", err)
	}
	return &Engine{
		cfg:        cfg,
		classifier: classify.New(rules),
		store:      store,
		logger:     logging.NewComponentLogger(logger, "organizer"),
		now:        time.Now,
	}, nil
}

// SetClockForTests overrides the engine's time source and returns a restore
// function.
func (e *Engine) SetClockForTests(now func() time.Time) func() {
	previous := e.now
	e.now = now
	return func() { e.now = previous }
}

// Run organizes target. Enumeration failures are fatal and happen before any
// mutation; placement failures are recorded per entry and processing
// continues. The returned report is valid whenever the error is nil.
func (e *Engine) Run(ctx context.Context, target string) (*Report, error) {
	return e.execute(ctx, target, false)
}

// Plan produces the report a run would generate without mutating anything.
// Collision resolution is evaluated against the current directory state.
func (e *Engine) Plan(ctx context.Context, target string) (*Report, error) {
	return e.execute(ctx, target, true)
}

func (e *Engine) execute(ctx context.Context, target string, dryRun bool) (*Report, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	ctx = services.WithTarget(ctx, target)
	logger := logging.WithContext(ctx, e.logger)

	started := e.now()
	logger.Info("starting organization",
		logging.Bool("dry_run", dryRun),
		logging.Duration("old_after", e.classifier.Rules().OldAfter()),
	)

	listing, err := scan.List(target)
	if err != nil {
		logger.Error("enumeration failed", logging.Error(err))
		return nil, services.Wrap(services.ErrNotFound, "organizing", "list directory", "Cannot enumerate target directory", err)
	}

	report := &Report{
		RunID:   runID,
		Target:  target,
		DryRun:  dryRun,
		Started: started,
		Skipped: listing.Skipped,
	}

	placer := place.New(target)
	now := e.now()
	for _, entry := range listing.Entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		decision := e.classifier.Classify(entry.Name, entry.ModTime, now)
		destination := e.classifier.Destination(decision)

		if dryRun {
			report.Outcomes = append(report.Outcomes, Outcome{
				Name:     entry.Name,
				Category: destination,
				Moved:    true,
			})
			continue
		}

		finalPath, placeErr := placer.Place(entry.Path, destination, entry.Name)
		if placeErr != nil {
			logger.Warn("placement failed",
				logging.String("name", entry.Name),
				logging.String("category", destination),
				logging.Error(placeErr),
			)
			report.Outcomes = append(report.Outcomes, Outcome{
				Name:     entry.Name,
				Category: destination,
				Reason:   services.Reason(placeErr),
			})
			continue
		}

		logger.Info("moved file",
			logging.String("name", entry.Name),
			logging.String("category", destination),
			logging.String("final_path", finalPath),
			logging.Bool("old", decision.Old),
		)
		report.Outcomes = append(report.Outcomes, Outcome{
			Name:      entry.Name,
			Category:  destination,
			FinalPath: finalPath,
			Moved:     true,
		})
	}

	report.Finished = e.now()
	logger.Info("organization complete",
		logging.Int("moved", report.MovedCount()),
		logging.Int("failed", report.FailedCount()),
		logging.Int("skipped", report.Skipped),
	)

	if !dryRun {
		e.recordHistory(ctx, logger, report)
	}
	return report, nil
}

func (e *Engine) recordHistory(ctx context.Context, logger *slog.Logger, report *Report) {
	if e.store == nil {
		return
	}

	run := history.Run{
		ID:       report.RunID,
		Target:   report.Target,
		Started:  report.Started,
		Finished: report.Finished,
		Moved:    report.MovedCount(),
		Failed:   report.FailedCount(),
		Skipped:  report.Skipped,
	}
	moves := make([]history.Move, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		status := history.StatusMoved
		if !outcome.Moved {
			status = history.StatusFailed
		}
		moves = append(moves, history.Move{
			SourceName: outcome.Name,
			Category:   outcome.Category,
			FinalPath:  outcome.FinalPath,
			Status:     status,
			Reason:     outcome.Reason,
		})
	}

	if err := e.store.RecordRun(ctx, run, moves); err != nil {
		logger.Warn("failed to record run history", logging.Error(err))
	}
}
