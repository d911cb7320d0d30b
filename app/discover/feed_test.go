package discover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgavara/fightwire/app/fetch"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title>UFC 300: Topuria retains title</title>
      <link>https://example.com/ufc-300-topuria</link>
      <pubDate>Sat, 13 Apr 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second story</title>
      <link>https://example.com/second-story</link>
    </item>
    <item>
      <title>Third story</title>
      <link>https://example.com/third-story</link>
    </item>
  </channel>
</rss>`

func newTestFetcher() *fetch.Fetcher {
	return fetch.NewFetcher(5*time.Second, "test-agent/1.0", "")
}

func TestFeedDiscoverer_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testRSS))
	}))
	defer server.Close()

	discoverer := NewFeedDiscoverer(newTestFetcher())

	candidates, err := discoverer.Run(context.Background(), server.URL, 30)
	if err != nil {
		t.Fatal(err)
	}

	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}

	first := candidates[0]
	if first.Title != "UFC 300: Topuria retains title" {
		t.Errorf("Unexpected first title: %q", first.Title)
	}
	if first.URL != "https://example.com/ufc-300-topuria" {
		t.Errorf("Unexpected first URL: %q", first.URL)
	}
	if first.Published == "" {
		t.Error("Expected published date for first entry")
	}

	// Missing pubDate defaults to empty string
	if candidates[1].Published != "" {
		t.Errorf("Expected empty published for second entry, got %q", candidates[1].Published)
	}
}

func TestFeedDiscoverer_Run_Limit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testRSS))
	}))
	defer server.Close()

	discoverer := NewFeedDiscoverer(newTestFetcher())

	candidates, err := discoverer.Run(context.Background(), server.URL, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(candidates) != 2 {
		t.Errorf("Expected 2 candidates with limit 2, got %d", len(candidates))
	}
	// Document order preserved
	if candidates[1].URL != "https://example.com/second-story" {
		t.Errorf("Expected document order, got %q second", candidates[1].URL)
	}
}

func TestFeedDiscoverer_Run_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	discoverer := NewFeedDiscoverer(newTestFetcher())

	if _, err := discoverer.Run(context.Background(), server.URL, 30); err == nil {
		t.Error("Expected error for non-200 feed response")
	}
}

func TestFeedDiscoverer_Run_ParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	discoverer := NewFeedDiscoverer(newTestFetcher())

	if _, err := discoverer.Run(context.Background(), server.URL, 30); err == nil {
		t.Error("Expected error for unparseable feed")
	}
}
