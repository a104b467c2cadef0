package futgg

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pastpresent-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestPageUrl(t *testing.T) {
	require.Equal(t, "https://example.com/players", PageUrl("https://example.com/players", 1))
	require.Equal(t, "https://example.com/players?page=2", PageUrl("https://example.com/players", 2))
}

func TestPagesStopOnNotFound(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/futgg")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("page one"))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{Sleep: func(time.Duration) {}})
	pages := client.Pages(server.URL, 0)

	page, body, err := pages.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), page)
	require.Equal(t, "page one", body)

	_, _, err = pages.Next(context.Background())
	require.ErrorIs(t, err, ErrNoMorePages)

	// exhausted iterators stay exhausted
	_, _, err = pages.Next(context.Background())
	require.ErrorIs(t, err, ErrNoMorePages)
}

func TestPagesRespectMaxPages(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/futgg")
	defer cleanup()

	var served []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = append(served, r.URL.RequestURI())
		fmt.Fprintf(w, "content")
	}))
	defer server.Close()

	client := NewClient(ClientOptions{Sleep: func(time.Duration) {}})
	pages := client.Pages(server.URL, 3)

	for want := int64(1); want <= 3; want++ {
		page, _, err := pages.Next(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, page)
	}
	_, _, err := pages.Next(context.Background())
	require.ErrorIs(t, err, ErrNoMorePages)

	require.Equal(t, []string{"/", "/?page=2", "/?page=3"}, served)
}

func TestPagesPropagateFetchFailure(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/futgg")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{Sleep: func(time.Duration) {}})
	pages := client.Pages(server.URL, 0)

	_, _, err := pages.Next(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusForbidden, statusErr.Status)
}
