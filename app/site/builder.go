package site

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dgavara/fightwire/app/database"
	"github.com/dgavara/fightwire/app/topic"
)

// Preview length embedded in the site; enough for a card, small enough to
// keep the document light with a couple thousand rows inline.
const previewChars = 280

//go:embed index.html.tmpl
var indexTemplate string

// Builder renders stored articles into a single self-contained HTML
// document with client-side search and filtering over an embedded JSON
// array. Pure: identical input yields identical output except for the
// generation timestamp.
type Builder struct {
	filter *topic.Filter
	tmpl   *template.Template
}

type item struct {
	Title     string      `json:"title"`
	URL       string      `json:"url"`
	Source    string      `json:"source"`
	Domain    string      `json:"domain"`
	Published string      `json:"published"`
	FetchedAt string      `json:"fetched_at"`
	Sport     topic.Sport `json:"sport"`
	Preview   string      `json:"preview"`
}

type templateData struct {
	Generated string
	Count     int
	ItemsJSON template.JS
}

func NewBuilder(filter *topic.Filter) *Builder {
	return &Builder{
		filter: filter,
		tmpl:   template.Must(template.New("index").Parse(indexTemplate)),
	}
}

func (b *Builder) Run(articles []database.Article, now time.Time) (string, error) {
	items := make([]item, 0, len(articles))
	for _, a := range articles {
		items = append(items, item{
			Title:     a.Title,
			URL:       a.URL,
			Source:    a.Source,
			Domain:    a.Domain,
			Published: a.Published,
			FetchedAt: a.FetchedAt,
			Sport:     b.filter.Classify(a.Title, a.URL, a.Text),
			Preview:   preview(a.Text),
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal site items: %w", err)
	}

	var buf bytes.Buffer
	err = b.tmpl.Execute(&buf, templateData{
		Generated: now.UTC().Truncate(time.Second).Format(time.RFC3339),
		Count:     len(items),
		ItemsJSON: template.JS(itemsJSON),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render site template: %w", err)
	}

	return buf.String(), nil
}

func preview(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) > previewChars {
		runes = runes[:previewChars]
	}
	return strings.TrimSpace(strings.ReplaceAll(string(runes), "\n", " "))
}
