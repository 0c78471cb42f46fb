// Package fetch adapts a backend suggestion endpoint into an engine fetch
// function. The endpoint contract is minimal: it accepts a query string
// parameter and returns a JSON array of items, or fails.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Options tune the adapter.
type Options struct {
	// QueryParam is the URL parameter carrying the query. Default "q".
	QueryParam string
	// RequestsPerSec caps the request rate to the backend. Rapid
	// dispatches that slip past the debouncer wait here instead of
	// hammering the endpoint. Default 5.
	RequestsPerSec float64
	// Client overrides the HTTP client. Default: 10s timeout.
	Client *http.Client
}

// JSON returns a fetch function that GETs the endpoint with the query as a
// URL parameter and decodes the response body as a JSON array of T.
// Non-2xx responses and decode failures are returned as errors; the engine
// absorbs them as empty result sets.
func JSON[T any](endpoint string, opts Options) (func(ctx context.Context, query string) ([]T, error), error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	param := opts.QueryParam
	if param == "" {
		param = "q"
	}
	rps := opts.RequestsPerSec
	if rps <= 0 {
		rps = 5
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	limiter := rate.NewLimiter(rate.Limit(rps), 1)

	return func(ctx context.Context, query string) ([]T, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}

		u := *base
		q := u.Query()
		q.Set(param, query)
		u.RawQuery = q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("backend returned %s", resp.Status)
		}

		var items []T
		if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		return items, nil
	}, nil
}
