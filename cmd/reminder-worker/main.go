// Package main is the entrypoint for the reminder worker, a run-to-completion
// job meant to be invoked by a host scheduler (cron or similar).
//
// Cold start:
//  1. Initialize the structured logger.
//  2. Load and validate process configuration from the environment.
//  3. Construct the Firestore client and the store reader.
//  4. Construct the email provider (EmailJS, or the logging stub in test mode).
//  5. Run the job once and map its report to the process exit code.
//
// Exit codes: 0 for success, including the "no config", "no subscribers" and
// "all skipped" outcomes; 1 when any send failed or any error escaped.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"dateminder/internal/config"
	"dateminder/internal/external"
	"dateminder/internal/job"
	"dateminder/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	bootLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Error("failed to load configuration", "error", err)
		return 1
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	logger.Info("reminder worker starting",
		"environment", cfg.Environment,
		"scope", cfg.ScopeMode,
		"test_mode", cfg.IsTestMode,
	)

	ctx := context.Background()

	var clientOpts []option.ClientOption
	if !cfg.GoogleCredentialsJSON.IsEmpty() {
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(cfg.GoogleCredentialsJSON.Unmask())))
	}
	fsClient, err := firestore.NewClient(ctx, cfg.GoogleProjectID, clientOpts...)
	if err != nil {
		logger.Error("failed to create Firestore client", "error", err)
		return 1
	}
	defer fsClient.Close()

	var provider external.EmailProvider
	if cfg.IsTestMode {
		logger.Warn("test mode enabled, using stub email provider")
		provider = external.NewStubEmailProvider(logger)
	} else {
		provider = external.NewEmailJSClient(
			&http.Client{Timeout: 10 * time.Second},
			external.EmailJSClientConfig{
				PrivateKey: cfg.EmailJSPrivateKey,
				BaseURL:    cfg.EmailJSBaseURL,
				Logger:     logger,
			},
		)
	}

	runner := &job.Runner{
		Store:    store.NewFirestoreStore(fsClient, logger),
		Provider: provider,
		// Burst 1: the first send goes immediately, every following send
		// waits out the provider's documented minimum spacing.
		Pacer:         rate.NewLimiter(rate.Every(cfg.SendDelay), 1),
		Logger:        logger,
		Scope:         cfg.AlertScope(),
		LookaheadDays: cfg.LookaheadDays,
	}

	report, err := runner.Run(ctx)
	if err != nil {
		logger.Error("reminder run aborted", "error", err)
		return 1
	}
	if report.Failed > 0 {
		logger.Error("reminder run finished with delivery failures",
			"sent", report.Sent,
			"failed", report.Failed,
			"skipped", report.Skipped,
		)
		return 1
	}
	return 0
}
