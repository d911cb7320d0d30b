package sources

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRegistry_Defaults(t *testing.T) {
	registry := NewRegistry()

	if len(registry.Sources()) == 0 {
		t.Fatal("Expected built-in sources")
	}

	for _, src := range registry.Sources() {
		if err := validateSource(src); err != nil {
			t.Errorf("Built-in source %q is invalid: %v", src.Name, err)
		}
	}

	kw := registry.Keywords()
	if len(kw.MMA) == 0 || len(kw.Boxing) == 0 || len(kw.StopURL) == 0 {
		t.Error("Expected non-empty default keyword sets")
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	registry, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if len(registry.Sources()) != len(defaultSources()) {
		t.Errorf("Expected %d default sources, got %d", len(defaultSources()), len(registry.Sources()))
	}
}

func TestLoad_OverrideFile(t *testing.T) {
	tempDir := t.TempDir()

	content := `
sources:
  - name: "local_feed"
    kind: "feed"
    url: "https://example.com/feed.xml"
  - name: "local_listing"
    kind: "listing"
    url: "https://example.com/news"

keywords:
  mma:
    - "jaula"
  stop_url:
    - "/archivo/"
`

	path := filepath.Join(tempDir, "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	registry, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(registry.Sources()) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(registry.Sources()))
	}
	if registry.Sources()[0].Name != "local_feed" || registry.Sources()[0].Kind != KindFeed {
		t.Errorf("Unexpected first source: %+v", registry.Sources()[0])
	}

	kw := registry.Keywords()
	if len(kw.MMA) != 1 || kw.MMA[0] != "jaula" {
		t.Errorf("Expected overridden MMA keywords, got %v", kw.MMA)
	}
	// Boxing section omitted: defaults kept
	if len(kw.Boxing) == 0 {
		t.Error("Expected default boxing keywords to survive a partial override")
	}
	if len(kw.StopURL) != 1 || kw.StopURL[0] != "/archivo/" {
		t.Errorf("Expected overridden stop URLs, got %v", kw.StopURL)
	}
}

func TestLoad_InvalidKind(t *testing.T) {
	tempDir := t.TempDir()

	content := `
sources:
  - name: "broken"
    kind: "scrape"
    url: "https://example.com/news"
`

	path := filepath.Join(tempDir, "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown source kind")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/sources.yml"); err == nil {
		t.Error("Expected error for missing file")
	}
}
