package main

import (
	"context"
	"fmt"
	"log/slog"

	"pastpresent-backend/services/collection/scraper"

	"github.com/robfig/cron/v3"
)

// StartScrapeCron triggers a scrape run on the given cron spec until ctx is
// cancelled. overlapping fires are absorbed by the runner's single-flight.
func StartScrapeCron(ctx context.Context, spec string, runner *scraper.Runner) error {
	cronner := cron.New(cron.WithLogger(cronLogger{}))

	_, err := cronner.AddFunc(spec, func() {
		started := runner.Trigger(ctx)
		if !started {
			slog.InfoContext(ctx, "scheduled scrape skipped, a run is already in flight")
		}
	})
	if err != nil {
		return fmt.Errorf("add scrape schedule: %w", err)
	}

	cronner.Start()
	go func() {
		<-ctx.Done()
		cronner.Stop()
	}()

	slog.InfoContext(ctx, "scrape schedule registered", "cron", spec)
	return nil
}

type cronLogger struct{}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug(fmt.Sprintf("cron: %s", msg), keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	args := append([]any{"err", err}, keysAndValues...)
	slog.Error(fmt.Sprintf("cron: %s", msg), args...)
}
