package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pastpresent-backend/lib/scrapers/futgg"
	"pastpresent-backend/lib/testutil"
	"pastpresent-backend/services/collection"
	"pastpresent-backend/services/collection/db"

	"github.com/stretchr/testify/require"
)

const listingPage = `<html><body>
<a href="/players/240001-john-smith/26-1/">
	<img alt="John Smith - 84 - Common" src="/cards/26-1.png">
</a>
<a href="/players/240010-erling-haaland/26-2/">
	<img alt="Erling Haaland - 91 - Common" src="/cards/26-2.png">
</a>
</body></html>`

func setupRunner(t *testing.T, handler http.Handler, maxPages int64) (*Runner, collection.Store, func()) {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "collection.scraper",
		DbSchema: db.Schema,
	})

	server := httptest.NewServer(handler)
	store := collection.NewStore(result.DB)
	client := futgg.NewClient(futgg.ClientOptions{
		Sleep: func(time.Duration) {},
	})
	runner := NewRunner(store, client, Options{
		BaseUrl:  server.URL,
		MaxPages: maxPages,
	})

	return runner, store, func() {
		server.Close()
		cleanup()
	}
}

func TestRunOnceScrapesUntilListingEnds(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(listingPage))
	})
	runner, store, cleanup := setupRunner(t, handler, 0)
	defer cleanup()
	ctx := context.Background()

	report, err := runner.RunOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), report.Pages)
	require.Equal(t, int64(2), report.Cards)
	require.Equal(t, int64(2), report.BaseCardsAssigned)

	players, err := store.ListPlayers(ctx, collection.ListOptions{})
	require.NoError(t, err)
	require.Len(t, players, 2)
	require.Equal(t, "erling-haaland", players[0].Slug)
	require.NotNil(t, players[0].BaseCardRating)
	require.Equal(t, int64(91), *players[0].BaseCardRating)

	status := runner.Status()
	require.Equal(t, RunStateCompleted, status.State)
	require.Equal(t, int64(2), status.Cards)
}

func TestRunOnceRespectsMaxPages(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage))
	})
	runner, _, cleanup := setupRunner(t, handler, 2)
	defer cleanup()

	report, err := runner.RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), report.Pages)
	require.Equal(t, int64(4), report.Cards)
}

func TestRunOnceReportsFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	runner, _, cleanup := setupRunner(t, handler, 0)
	defer cleanup()

	_, err := runner.RunOnce(context.Background())
	require.Error(t, err)

	status := runner.Status()
	require.Equal(t, RunStateFailed, status.State)
	require.NotEmpty(t, status.Error)
}

func TestTriggerIsSingleFlight(t *testing.T) {
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusNotFound)
	})
	runner, _, cleanup := setupRunner(t, handler, 0)
	defer cleanup()
	ctx := context.Background()

	require.True(t, runner.Trigger(ctx))
	require.Equal(t, RunStateRunning, runner.Status().State)
	require.False(t, runner.Trigger(ctx))

	close(release)
	require.Eventually(t, func() bool {
		return runner.Status().State != RunStateRunning
	}, time.Second*5, time.Millisecond*10)

	require.True(t, runner.Trigger(ctx))
}
