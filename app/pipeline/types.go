package pipeline

// Stats are the counters reported at the end of a run and persisted in the
// run summary row.
type Stats struct {
	TotalCandidates int
	StoredNew       int
	StoredUpdated   int
	SkippedExisting int
	ExtractOK       int
}

// ProbeRow is the debug snapshot entry for one processed candidate.
// Network fields are pointers so a failed fetch serializes them as null.
type ProbeRow struct {
	Source         string  `json:"source"`
	SourceType     string  `json:"source_type"`
	ListURL        string  `json:"rss_or_list_url"`
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Published      string  `json:"published"`
	HTTPStatus     *int    `json:"http_status"`
	FinalURL       *string `json:"final_url"`
	Domain         *string `json:"domain"`
	ExtractedChars int     `json:"extracted_chars"`
	ExtractOK      bool    `json:"extract_ok"`
	ContentHash    string  `json:"content_hash"`
	TextPreview    string  `json:"text_preview"`
	Error          string  `json:"error,omitempty"`
}

// Options carries the run parameters the orchestrator needs beyond its
// collaborators.
type Options struct {
	OutDir         string
	SiteDir        string
	PerSourceLimit int
	MinChars       int
	RecentDays     int
	RecentLimit    int
}
