package futgg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrNoMorePages signals the normal end of a listing walk.
var ErrNoMorePages = errors.New("no more pages")

// PageUrl maps a 1-based page number to its listing url.
// page 1 is the bare listing url, later pages get a query parameter.
func PageUrl(baseUrl string, page int64) string {
	if page <= 1 {
		return baseUrl
	}
	return fmt.Sprintf("%s?page=%d", baseUrl, page)
}

// PageIter walks listing pages in order, starting at page 1.
// it is not restartable; create a new one per scrape run.
type PageIter struct {
	client   *Client
	baseUrl  string
	maxPages int64
	page     int64
	done     bool
}

// Pages returns an iterator over (page number, page body) pairs.
// maxPages <= 0 means unbounded.
func (c *Client) Pages(baseUrl string, maxPages int64) *PageIter {
	return &PageIter{
		client:   c,
		baseUrl:  baseUrl,
		maxPages: maxPages,
	}
}

// Next fetches the next page. it returns ErrNoMorePages once the
// configured page limit is reached or the site answers 404/410,
// and any other fetch error verbatim. after a non-nil error the
// iterator is exhausted for good.
func (it *PageIter) Next(ctx context.Context) (int64, string, error) {
	if it.done {
		return 0, "", ErrNoMorePages
	}

	it.page++
	if it.maxPages > 0 && it.page > it.maxPages {
		it.done = true
		return 0, "", ErrNoMorePages
	}

	body, err := it.client.Fetch(ctx, PageUrl(it.baseUrl, it.page))
	if err != nil {
		it.done = true

		var statusErr *StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.Status == http.StatusNotFound || statusErr.Status == http.StatusGone) {
			return 0, "", ErrNoMorePages
		}
		return 0, "", err
	}

	return it.page, body, nil
}
