package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Result is the outcome of a single GET: the status code, the URL after
// redirects, and the raw body. Non-2xx responses are not errors at this
// layer; the caller decides what a 404 page means.
type Result struct {
	Status   int
	FinalURL string
	Body     []byte
}

// Fetcher performs one HTTP GET per call with a fixed user agent and
// language header, following redirects. Single attempt, no retry.
type Fetcher struct {
	client         *http.Client
	userAgent      string
	acceptLanguage string
}

func NewFetcher(timeout time.Duration, userAgent, acceptLanguage string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent:      userAgent,
		acceptLanguage: acceptLanguage,
	}
}

func (f *Fetcher) Run(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	if f.acceptLanguage != "" {
		req.Header.Set("Accept-Language", f.acceptLanguage)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Result{
		Status:   resp.StatusCode,
		FinalURL: resp.Request.URL.String(),
		Body:     body,
	}, nil
}
