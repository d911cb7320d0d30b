package fetch

import (
	"bytes"
	"log/slog"
	"strings"

	"codeberg.org/readeck/go-readability"
)

// Extractor pulls best-effort main-content text out of raw article HTML.
// Extraction failures surface as an empty string, never as an error: a page
// the readability algorithm cannot handle is a below-threshold article, not
// a pipeline fault.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Run(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err != nil {
		slog.Debug("Content extraction failed", "error", err)
		return ""
	}

	return strings.TrimSpace(article.TextContent)
}
