package discover

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/dgavara/fightwire/app/fetch"
)

// FeedDiscoverer produces candidates from an RSS/Atom feed, in document
// order, up to the configured limit.
type FeedDiscoverer struct {
	fetcher      *fetch.Fetcher
	gofeedParser *gofeed.Parser
}

func NewFeedDiscoverer(fetcher *fetch.Fetcher) *FeedDiscoverer {
	return &FeedDiscoverer{
		fetcher:      fetcher,
		gofeedParser: gofeed.NewParser(),
	}
}

func (d *FeedDiscoverer) Run(ctx context.Context, feedURL string, limit int) ([]Candidate, error) {
	result, err := d.fetcher.Run(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	if result.Status != http.StatusOK {
		return nil, fmt.Errorf("feed returned HTTP %d", result.Status)
	}

	feed, err := d.gofeedParser.Parse(bytes.NewReader(result.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	candidates := make([]Candidate, 0, min(limit, len(feed.Items)))
	for _, item := range feed.Items {
		if len(candidates) >= limit {
			break
		}
		candidates = append(candidates, Candidate{
			Title:     item.Title,
			URL:       item.Link,
			Published: item.Published,
		})
	}

	return candidates, nil
}
