package sources

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dgavara/fightwire/app/topic"
)

// Registry holds the source list and the topic keyword configuration.
// Loaded once at startup; adding a source means editing the override file
// (or the defaults) and restarting.
type Registry struct {
	sources  []Source
	keywords topic.Keywords
}

// NewRegistry returns the built-in source list and keyword sets.
func NewRegistry() *Registry {
	return &Registry{
		sources:  defaultSources(),
		keywords: topic.DefaultKeywords(),
	}
}

// Load builds a registry from an optional YAML override file. An empty path
// yields the defaults.
func Load(path string) (*Registry, error) {
	registry := NewRegistry()
	if path == "" {
		return registry, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if len(fc.Sources) > 0 {
		for i, src := range fc.Sources {
			if err := validateSource(src); err != nil {
				return nil, fmt.Errorf("invalid source at index %d: %w", i, err)
			}
		}
		registry.sources = fc.Sources
	}

	if len(fc.Keywords.MMA) > 0 {
		registry.keywords.MMA = fc.Keywords.MMA
	}
	if len(fc.Keywords.Boxing) > 0 {
		registry.keywords.Boxing = fc.Keywords.Boxing
	}
	if len(fc.Keywords.StopURL) > 0 {
		registry.keywords.StopURL = fc.Keywords.StopURL
	}

	slog.Debug("Sources configuration loaded", "file", path, "sources", len(registry.sources))

	return registry, nil
}

func (r *Registry) Sources() []Source {
	return r.sources
}

func (r *Registry) Keywords() topic.Keywords {
	return r.keywords
}

func validateSource(src Source) error {
	if src.Name == "" {
		return fmt.Errorf("source name is required")
	}
	if src.URL == "" {
		return fmt.Errorf("source URL is required")
	}
	if src.Kind != KindFeed && src.Kind != KindListing {
		return fmt.Errorf("unknown source kind '%s' (expected 'feed' or 'listing')", src.Kind)
	}
	return nil
}

func defaultSources() []Source {
	return []Source{
		{Name: "marca_portada", Kind: KindFeed, URL: "https://e00-marca.uecdn.es/rss/portada.xml"},
		{Name: "dazn_news", Kind: KindListing, URL: "https://www.dazn.com/es-ES/news"},
		{Name: "eurosport_mma", Kind: KindListing, URL: "https://www.eurosport.es/mma/"},
		{Name: "eurosport_ufc", Kind: KindListing, URL: "https://www.eurosport.es/mma/ufc/"},
	}
}
