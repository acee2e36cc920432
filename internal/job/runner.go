// Package job orchestrates one reminder run: load configuration and
// collections from the store, build each subscriber's digest, and dispatch
// emails sequentially with pacing between sends.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dateminder/internal/alerts"
	"dateminder/internal/digest"
	"dateminder/internal/external"
	"dateminder/internal/store"
	"dateminder/internal/types"
)

// Pacer gates successive send attempts. golang.org/x/time/rate.Limiter
// satisfies it directly.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Report aggregates per-subscriber outcomes of one run. Failed > 0 maps to a
// non-zero process exit.
type Report struct {
	Sent    int
	Failed  int
	Skipped int
}

// Runner executes the reminder job. All collaborators are injected; the
// runner holds no global state and a Runner value is good for any number of
// sequential runs.
type Runner struct {
	Store    store.Reader
	Provider external.EmailProvider
	Pacer    Pacer
	Logger   *slog.Logger

	Scope         types.ScopeMode
	LookaheadDays int

	// Now is the clock source; defaults to time.Now. Injected in tests so
	// date math is deterministic.
	Now func() time.Time
}

// Run performs one full pass over the subscriber list.
//
// Outcomes that are not errors: a missing or incomplete delivery config and
// an empty subscriber list both end the run early with an empty Report. A
// failed send is counted and logged but never stops the loop; only store
// errors and context cancellation abort the run.
//
// The pacer is awaited immediately before each send attempt, so skipped
// subscribers introduce no delay.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.NewString())

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	var report Report

	cfg, err := r.Store.DeliveryConfig(ctx)
	if err != nil {
		return report, fmt.Errorf("load delivery config: %w", err)
	}
	if !cfg.IsComplete() {
		logger.Info("delivery config absent or incomplete, nothing to send")
		return report, nil
	}

	people, err := r.Store.People(ctx)
	if err != nil {
		return report, fmt.Errorf("load people: %w", err)
	}
	subscribers, err := r.Store.Subscribers(ctx)
	if err != nil {
		return report, fmt.Errorf("load subscribers: %w", err)
	}
	if len(subscribers) == 0 {
		logger.Info("no subscribers configured")
		return report, nil
	}

	logger.Info("starting reminder run",
		"people", len(people),
		"subscribers", len(subscribers),
		"scope", string(r.Scope),
		"lookahead_days", r.LookaheadDays,
	)

	runNow := now()
	for _, sub := range subscribers {
		subLogger := logger.With("subscriber", sub.Email)

		alertList := alerts.Build(runNow, people, r.Scope, sub.Email, r.LookaheadDays)
		if len(alertList) == 0 {
			report.Skipped++
			subLogger.Info("no upcoming dates, skipping")
			continue
		}

		if err := r.Pacer.Wait(ctx); err != nil {
			return report, fmt.Errorf("pacing interrupted: %w", err)
		}

		input := types.SendInput{
			To:        sub.Email,
			FromName:  cfg.SenderName(),
			EventList: digest.Render(alertList),
			Delivery:  *cfg,
		}
		if err := r.Provider.Send(ctx, input); err != nil {
			report.Failed++
			subLogger.Error("send failed", "error", err, "code", string(types.CodeOf(err)))
			continue
		}
		report.Sent++
		subLogger.Info("reminder sent", "alerts", len(alertList))
	}

	logger.Info("reminder run complete",
		"sent", report.Sent,
		"failed", report.Failed,
		"skipped", report.Skipped,
	)
	return report, nil
}
