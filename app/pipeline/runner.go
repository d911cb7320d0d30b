package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/dgavara/fightwire/app/database"
	"github.com/dgavara/fightwire/app/discover"
	"github.com/dgavara/fightwire/app/fetch"
	"github.com/dgavara/fightwire/app/site"
	"github.com/dgavara/fightwire/app/sources"
	"github.com/dgavara/fightwire/app/topic"
)

// Preview length kept in the probe snapshot, matching the extraction
// threshold so a below-threshold article is fully visible in the debug
// output.
const probePreviewChars = 900

// Runner drives one full pipeline pass: discovery per source, topic
// filtering, dedup short-circuit, fetch, extract, threshold check, upsert,
// then the run summary, the probe snapshot and the site build. Strictly
// sequential; a discovery failure aborts the run, a per-candidate failure
// is recorded and skipped.
type Runner struct {
	registry          *sources.Registry
	feedDiscoverer    *discover.FeedDiscoverer
	listingDiscoverer *discover.ListingDiscoverer
	filter            *topic.Filter
	fetcher           *fetch.Fetcher
	extractor         *fetch.Extractor
	articleRepo       database.ArticleRepository
	runRepo           database.RunRepository
	builder           *site.Builder
	opts              Options
}

func NewRunner(registry *sources.Registry, fetcher *fetch.Fetcher, extractor *fetch.Extractor,
	articleRepo database.ArticleRepository, runRepo database.RunRepository, opts Options) *Runner {
	filter := topic.NewFilter(registry.Keywords())

	return &Runner{
		registry:          registry,
		feedDiscoverer:    discover.NewFeedDiscoverer(fetcher),
		listingDiscoverer: discover.NewListingDiscoverer(fetcher),
		filter:            filter,
		fetcher:           fetcher,
		extractor:         extractor,
		articleRepo:       articleRepo,
		runRepo:           runRepo,
		builder:           site.NewBuilder(filter),
		opts:              opts,
	}
}

func (r *Runner) Run(ctx context.Context) (Stats, error) {
	startedAt := database.NowUTC()
	runID := startedAt

	var stats Stats
	var probeRows []ProbeRow

	for _, src := range r.registry.Sources() {
		candidates, err := r.discoverSource(ctx, src)
		if err != nil {
			return stats, fmt.Errorf("discovery failed for source %s: %w", src.Name, err)
		}

		slog.Debug("Source discovered", "source", src.Name, "candidates", len(candidates))

		for _, cand := range candidates {
			stats.TotalCandidates++

			if !r.filter.OnTopic(cand.Title, cand.URL) {
				continue
			}

			// Dedup by URL before fetching: saves a request per known article
			exists, err := r.articleRepo.Exists(cand.URL)
			if err != nil {
				return stats, fmt.Errorf("failed to check existing URL: %w", err)
			}
			if exists {
				stats.SkippedExisting++
				continue
			}

			row := r.processCandidate(ctx, src, cand, &stats)
			probeRows = append(probeRows, row)
		}
	}

	finishedAt := database.NowUTC()
	err := r.runRepo.RecordRun(database.Run{
		RunID:           runID,
		StartedAt:       startedAt,
		FinishedAt:      finishedAt,
		TotalCandidates: stats.TotalCandidates,
		StoredNew:       stats.StoredNew,
		StoredUpdated:   stats.StoredUpdated,
		SkippedExisting: stats.SkippedExisting,
		ExtractOK:       stats.ExtractOK,
	})
	if err != nil {
		return stats, fmt.Errorf("failed to record run summary: %w", err)
	}

	if err := r.writeProbeSnapshot(probeRows); err != nil {
		return stats, err
	}

	if err := r.buildSite(); err != nil {
		return stats, err
	}

	slog.Info("Run completed",
		"run_id", runID,
		"candidates", stats.TotalCandidates,
		"new", stats.StoredNew,
		"updated", stats.StoredUpdated,
		"skipped_existing", stats.SkippedExisting,
		"extract_ok", stats.ExtractOK)

	return stats, nil
}

func (r *Runner) discoverSource(ctx context.Context, src sources.Source) ([]discover.Candidate, error) {
	switch src.Kind {
	case sources.KindFeed:
		return r.feedDiscoverer.Run(ctx, src.URL, r.opts.PerSourceLimit)
	case sources.KindListing:
		// Listing pages mix navigation with articles; a doubled cap keeps
		// enough candidates after the shape heuristics discard chrome.
		return r.listingDiscoverer.Run(ctx, src.URL, r.opts.PerSourceLimit*2)
	default:
		return nil, fmt.Errorf("unknown source kind '%s'", src.Kind)
	}
}

// processCandidate runs fetch → extract → threshold → upsert for one
// candidate and returns its probe row. Failures are recorded in the row,
// never propagated: the pipeline moves on to the next candidate.
func (r *Runner) processCandidate(ctx context.Context, src sources.Source, cand discover.Candidate, stats *Stats) ProbeRow {
	row := ProbeRow{
		Source:     src.Name,
		SourceType: string(src.Kind),
		ListURL:    src.URL,
		Title:      cand.Title,
		URL:        cand.URL,
		Published:  cand.Published,
	}

	result, err := r.fetcher.Run(ctx, cand.URL)
	if err != nil {
		slog.Warn("Candidate fetch failed", "source", src.Name, "url", cand.URL, "error", err)
		row.Error = err.Error()
		return row
	}

	text := r.extractor.Run(result.Body)
	chars := utf8.RuneCountInString(text)

	domain := hostOf(result.FinalURL)
	fetchedAt := database.NowUTC()

	row.HTTPStatus = &result.Status
	row.FinalURL = &result.FinalURL
	row.Domain = &domain
	row.ExtractedChars = chars
	row.ExtractOK = chars >= r.opts.MinChars
	row.ContentHash = topic.Hash(text)
	row.TextPreview = truncateRunes(text, probePreviewChars)

	if !row.ExtractOK {
		row.Error = fmt.Sprintf("Low extracted chars (<%d).", r.opts.MinChars)
		return row
	}

	stats.ExtractOK++

	upsertResult, err := r.articleRepo.Upsert(database.Article{
		URL:            cand.URL,
		FinalURL:       result.FinalURL,
		Title:          cand.Title,
		Source:         src.Name,
		Published:      cand.Published,
		Domain:         domain,
		FetchedAt:      fetchedAt,
		ExtractedChars: chars,
		ContentHash:    row.ContentHash,
		Text:           text,
	})
	if err != nil {
		slog.Error("Article upsert failed", "url", cand.URL, "error", err)
		row.Error = err.Error()
		return row
	}

	switch upsertResult {
	case database.UpsertNew:
		stats.StoredNew++
	case database.UpsertUpdated:
		stats.StoredUpdated++
	}

	return row
}

func (r *Runner) writeProbeSnapshot(rows []ProbeRow) error {
	if err := os.MkdirAll(r.opts.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create out directory: %w", err)
	}

	if rows == nil {
		rows = []ProbeRow{}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal probe snapshot: %w", err)
	}

	path := filepath.Join(r.opts.OutDir, "probe.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write probe snapshot: %w", err)
	}

	return nil
}

func (r *Runner) buildSite() error {
	if err := os.MkdirAll(r.opts.SiteDir, 0755); err != nil {
		return fmt.Errorf("failed to create site directory: %w", err)
	}

	recent, err := r.articleRepo.ListRecent(r.opts.RecentDays, r.opts.RecentLimit)
	if err != nil {
		return fmt.Errorf("failed to list recent articles: %w", err)
	}

	html, err := r.builder.Run(recent, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build site: %w", err)
	}

	path := filepath.Join(r.opts.SiteDir, "index.html")
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write site: %w", err)
	}

	return nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
