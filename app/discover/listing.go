package discover

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/dgavara/fightwire/app/fetch"
)

// Link text shorter than this is assumed to be chrome (section names,
// "read more" buttons), not an article headline.
const minLinkTextLen = 18

// Shallower URLs than this are section indexes, not articles.
const minPathSeparators = 4

var assetExtensions = []string{
	".jpg", ".jpeg", ".png", ".svg", ".gif", ".css", ".js", ".webp", ".mp4", ".woff", ".woff2",
}

var navigationPatterns = []string{
	"/inicio", "/ver", "/para-ti", "/suscrib", "/registro",
	"/deportes", "/resultados", "/calendario", "/medallero", "/equipo",
}

// ListingDiscoverer scans anchor tags on an HTML listing page and applies
// link-shape heuristics to separate article links from navigation chrome.
// A cheap precision filter: missed articles are acceptable, false positives
// are caught downstream by the topic filter and the extraction threshold.
type ListingDiscoverer struct {
	fetcher *fetch.Fetcher
}

func NewListingDiscoverer(fetcher *fetch.Fetcher) *ListingDiscoverer {
	return &ListingDiscoverer{fetcher: fetcher}
}

func (d *ListingDiscoverer) Run(ctx context.Context, listURL string, limit int) ([]Candidate, error) {
	result, err := d.fetcher.Run(ctx, listURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(result.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	base, err := url.Parse(result.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resolved listing URL: %w", err)
	}

	seen := make(map[string]bool)
	var candidates []Candidate

	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		if len(candidates) >= limit {
			return
		}

		href := anchor.AttrOr("href", "")
		text := strings.Join(strings.Fields(anchor.Text()), " ")

		if href == "" || utf8.RuneCountInString(text) < minLinkTextLen {
			return
		}

		href = resolveHref(base, href)
		if !strings.HasPrefix(href, "http") {
			return
		}

		hrefLower := strings.ToLower(href)

		if hasAnySuffix(hrefLower, assetExtensions) {
			return
		}
		if containsAny(hrefLower, navigationPatterns) {
			return
		}
		if strings.Count(hrefLower, "/") < minPathSeparators {
			return
		}

		if seen[href] {
			return
		}
		seen[href] = true

		candidates = append(candidates, Candidate{Title: text, URL: href})
	})

	return candidates, nil
}

// resolveHref rebuilds root-relative and scheme-relative hrefs against the
// listing page's resolved scheme and host. Anything else passes through
// untouched; the http-prefix check rejects it if it is not absolute.
func resolveHref(base *url.URL, href string) string {
	switch {
	case strings.HasPrefix(href, "//"):
		return base.Scheme + ":" + href
	case strings.HasPrefix(href, "/"):
		return base.Scheme + "://" + base.Host + href
	default:
		return href
	}
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
