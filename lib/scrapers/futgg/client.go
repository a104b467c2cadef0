package futgg

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pastpresent-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/futgg")

const DefaultUserAgent = "PastPresentCollector/1.0 (+https://github.com/pastpresent/backend)"

const maxFetchAttempts = 5
const maxBackoff = time.Second * 10

// FetchError indicates a server-side (5xx) failure, which is retried.
type FetchError struct {
	Status int
	Url    string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("server error %d for %s", e.Status, e.Url)
}

// StatusError indicates a non-2xx, non-5xx response. it is never retried;
// the paginator reads 404/410 off of it as the end of the listing.
type StatusError struct {
	Status int
	Url    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Status, e.Url)
}

type Client struct {
	http  *resty.Client
	delay time.Duration
	sleep func(time.Duration)
}

type ClientOptions struct {
	// slept after every successful fetch
	Delay     time.Duration
	UserAgent string
	// overrides time.Sleep, for tests
	Sleep func(time.Duration)
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	client.SetHeader("accept-language", "en-US,en;q=0.5")
	client.SetTimeout(time.Second * 15)

	telemetry.InstrumentResty(client, "scrapers/futgg/http")

	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	return &Client{
		http:  client,
		delay: opts.Delay,
		sleep: sleep,
	}
}

// Fetch gets a listing page, retrying transport errors and 5xx responses
// with exponential backoff. after the attempt budget runs out the last
// error is returned as-is. other non-2xx statuses fail immediately with
// a StatusError.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	backoff := time.Second
	var lastErr error

	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		if attempt > 0 {
			c.sleep(backoff)
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		res, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			lastErr = err
			continue
		}

		status := res.StatusCode()
		if status >= http.StatusInternalServerError {
			lastErr = &FetchError{Status: status, Url: url}
			continue
		}
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return "", &StatusError{Status: status, Url: url}
		}

		c.sleep(c.delay)
		return string(res.Body()), nil
	}

	return "", lastErr
}
