package database

import (
	"time"
)

// Article is an ingested article row, keyed by the URL the candidate was
// discovered under. FinalURL may differ after redirects. Timestamps are
// RFC 3339 UTC at second precision, stored as TEXT: lexicographic order is
// chronological order.
type Article struct {
	URL            string
	FinalURL       string
	Title          string
	Source         string
	Published      string // opaque source-provided date string, may be empty
	Domain         string
	FetchedAt      string
	ExtractedChars int
	ContentHash    string
	Text           string
}

// Run is one pipeline execution summary. Never mutated after insertion.
type Run struct {
	RunID           string
	StartedAt       string
	FinishedAt      string
	TotalCandidates int
	StoredNew       int
	StoredUpdated   int
	SkippedExisting int
	ExtractOK       int
}

// NowUTC formats the current time the way every timestamp in the store is
// kept: RFC 3339 UTC, second precision.
func NowUTC() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}
