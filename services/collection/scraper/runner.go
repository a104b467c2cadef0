package scraper

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"pastpresent-backend/lib/scrapers/futgg"
	"pastpresent-backend/services/collection"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/collection/scraper")

type RunState string

const (
	RunStateIdle      RunState = "idle"
	RunStateRunning   RunState = "running"
	RunStateCompleted RunState = "completed"
	RunStateFailed    RunState = "failed"
)

// RunStatus is a snapshot of the most recent scrape run.
type RunStatus struct {
	State             RunState  `json:"state"`
	RunId             string    `json:"run_id,omitempty"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
	Pages             int64     `json:"pages"`
	Cards             int64     `json:"cards"`
	PlayersNormalized int64     `json:"players_normalized"`
	BaseCardsAssigned int64     `json:"base_cards_assigned"`
	Error             string    `json:"error,omitempty"`
}

type RunReport struct {
	Pages             int64
	Cards             int64
	PlayersNormalized int64
	BaseCardsAssigned int64
}

type Options struct {
	BaseUrl string
	// MaxPages caps a run, 0 means scrape until the site runs out.
	MaxPages int64
}

// Runner walks the paginated listing, stores every parsed card, then runs
// the display name and base card maintenance passes. at most one run is in
// flight at a time.
type Runner struct {
	store  collection.Store
	client *futgg.Client
	opts   Options

	mu     sync.Mutex
	status RunStatus
}

func NewRunner(store collection.Store, client *futgg.Client, opts Options) *Runner {
	return &Runner{
		store:  store,
		client: client,
		opts:   opts,
		status: RunStatus{State: RunStateIdle},
	}
}

// Trigger starts a run in the background. returns false without starting
// anything when a run is already in flight.
func (r *Runner) Trigger(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status.State == RunStateRunning {
		return false
	}

	runId, err := random.String(8)
	if err != nil {
		runId = "unknown"
	}
	r.status = RunStatus{
		State:     RunStateRunning,
		RunId:     runId,
		StartedAt: time.Now(),
	}

	go func() {
		report, err := r.scrape(ctx, runId)
		r.finish(report, err)
	}()
	return true
}

func (r *Runner) finish(report RunReport, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status.FinishedAt = time.Now()
	r.status.Pages = report.Pages
	r.status.Cards = report.Cards
	r.status.PlayersNormalized = report.PlayersNormalized
	r.status.BaseCardsAssigned = report.BaseCardsAssigned
	if err != nil {
		r.status.State = RunStateFailed
		r.status.Error = err.Error()
		return
	}
	r.status.State = RunStateCompleted
}

// Status returns a copy of the latest run's state.
func (r *Runner) Status() RunStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// RunOnce scrapes synchronously and returns the report. used by the cli and
// the cron schedule.
func (r *Runner) RunOnce(ctx context.Context) (RunReport, error) {
	r.mu.Lock()
	if r.status.State == RunStateRunning {
		r.mu.Unlock()
		return RunReport{}, errors.New("a scrape run is already in flight")
	}
	runId, err := random.String(8)
	if err != nil {
		runId = "unknown"
	}
	r.status = RunStatus{
		State:     RunStateRunning,
		RunId:     runId,
		StartedAt: time.Now(),
	}
	r.mu.Unlock()

	report, err := r.scrape(ctx, runId)
	r.finish(report, err)
	return report, err
}

func (r *Runner) scrape(ctx context.Context, runId string) (RunReport, error) {
	ctx, span := tracer.Start(ctx, "scrape")
	defer span.End()

	slog.InfoContext(ctx, "starting scrape run",
		"run_id", runId, "base_url", r.opts.BaseUrl, "max_pages", r.opts.MaxPages)

	var report RunReport

	pages := r.client.Pages(r.opts.BaseUrl, r.opts.MaxPages)
	for {
		pageNo, body, err := pages.Next(ctx)
		if errors.Is(err, futgg.ErrNoMorePages) {
			break
		}
		if err != nil {
			return report, err
		}

		cards, err := futgg.ParseCards(body)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse listing page",
				"run_id", runId, "page", pageNo, "err", err)
			continue
		}
		if len(cards) == 0 {
			slog.InfoContext(ctx, "page yielded no cards, stopping",
				"run_id", runId, "page", pageNo)
			break
		}

		err = r.store.UpsertCards(ctx, payloads(cards))
		if err != nil {
			return report, err
		}

		report.Pages++
		report.Cards += int64(len(cards))
		slog.DebugContext(ctx, "stored listing page",
			"run_id", runId, "page", pageNo, "cards", len(cards))
	}

	normalized, err := r.store.NormalizeDisplayNames(ctx)
	if err != nil {
		return report, err
	}
	report.PlayersNormalized = normalized

	assigned, err := r.store.AssignBaseCards(ctx)
	if err != nil {
		return report, err
	}
	report.BaseCardsAssigned = assigned

	slog.InfoContext(ctx, "scrape run complete",
		"run_id", runId,
		"pages", report.Pages,
		"cards", report.Cards,
		"players_normalized", report.PlayersNormalized,
		"base_cards_assigned", report.BaseCardsAssigned)
	return report, nil
}

func payloads(cards []futgg.Card) []collection.CardPayload {
	out := make([]collection.CardPayload, 0, len(cards))
	for _, c := range cards {
		out = append(out, collection.CardPayload{
			PlayerSlug:  c.PlayerSlug,
			DisplayName: c.DisplayName,
			CardSlug:    c.CardSlug,
			Name:        c.Name,
			Rating:      c.Rating,
			Version:     c.Version,
			CardUrl:     c.CardUrl,
			ImageUrl:    c.ImageUrl,
		})
	}
	return out
}
