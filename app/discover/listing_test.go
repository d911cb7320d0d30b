package discover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const longText = "Crónica completa del combate de anoche"

func listingPage(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<!doctype html><html><body>" + body + "</body></html>"))
	}
}

func TestListingDiscoverer_Run_Heuristics(t *testing.T) {
	body := `
		<a href="/mma/ufc/cronica-completa-del-combate/noticia.html">` + longText + `</a>
		<a href="/mma/ufc/foto.jpg">` + longText + ` en imágenes de archivo</a>
		<a href="/deportes/futbol/resultados">` + longText + ` y resultados</a>
		<a href="/mma/">Corto</a>
		<a href="/seccion">` + longText + ` de la semana</a>
		<a href="">` + longText + ` sin enlace</a>
		<a href="//cdn.example.org/mma/boxeo/gran-velada/cronica.html">` + longText + ` en la velada</a>
	`

	server := httptest.NewServer(listingPage(body))
	defer server.Close()

	discoverer := NewListingDiscoverer(newTestFetcher())

	candidates, err := discoverer.Run(context.Background(), server.URL, 60)
	if err != nil {
		t.Fatal(err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d: %+v", len(candidates), candidates)
	}

	// Root-relative href resolved against the listing host
	if candidates[0].URL != server.URL+"/mma/ufc/cronica-completa-del-combate/noticia.html" {
		t.Errorf("Unexpected first URL: %q", candidates[0].URL)
	}
	if candidates[0].Title != longText {
		t.Errorf("Unexpected first title: %q", candidates[0].Title)
	}

	// Scheme-relative href resolved with the listing scheme
	if candidates[1].URL != "http://cdn.example.org/mma/boxeo/gran-velada/cronica.html" {
		t.Errorf("Unexpected second URL: %q", candidates[1].URL)
	}
}

func TestListingDiscoverer_Run_DedupePreservesOrder(t *testing.T) {
	body := `
		<a href="/mma/ufc/primera-cronica/noticia.html">` + longText + ` uno</a>
		<a href="/mma/ufc/segunda-cronica/noticia.html">` + longText + ` dos</a>
		<a href="/mma/ufc/primera-cronica/noticia.html">` + longText + ` uno repetido</a>
	`

	server := httptest.NewServer(listingPage(body))
	defer server.Close()

	discoverer := NewListingDiscoverer(newTestFetcher())

	candidates, err := discoverer.Run(context.Background(), server.URL, 60)
	if err != nil {
		t.Fatal(err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 deduplicated candidates, got %d", len(candidates))
	}
	if !strings.HasSuffix(candidates[0].URL, "/primera-cronica/noticia.html") {
		t.Errorf("Expected first-seen order preserved, got %q first", candidates[0].URL)
	}

	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c.URL] {
			t.Errorf("Duplicate URL in output: %q", c.URL)
		}
		seen[c.URL] = true
	}
}

func TestListingDiscoverer_Run_Limit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString(`<a href="/mma/ufc/cronica-` + strings.Repeat("x", i+1) + `/noticia.html">` + longText + `</a>`)
	}

	server := httptest.NewServer(listingPage(sb.String()))
	defer server.Close()

	discoverer := NewListingDiscoverer(newTestFetcher())

	candidates, err := discoverer.Run(context.Background(), server.URL, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(candidates) != 3 {
		t.Errorf("Expected limit of 3 candidates, got %d", len(candidates))
	}
}

func TestListingDiscoverer_Run_NormalizesLinkText(t *testing.T) {
	body := `<a href="/mma/ufc/cronica/noticia.html">  Crónica
		completa   del combate	de anoche  </a>`

	server := httptest.NewServer(listingPage(body))
	defer server.Close()

	discoverer := NewListingDiscoverer(newTestFetcher())

	candidates, err := discoverer.Run(context.Background(), server.URL, 60)
	if err != nil {
		t.Fatal(err)
	}

	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Title != longText {
		t.Errorf("Expected whitespace-normalized title %q, got %q", longText, candidates[0].Title)
	}
}

func TestListingDiscoverer_Run_FetchError(t *testing.T) {
	server := httptest.NewServer(listingPage(""))
	url := server.URL
	server.Close()

	discoverer := NewListingDiscoverer(newTestFetcher())

	if _, err := discoverer.Run(context.Background(), url, 60); err == nil {
		t.Error("Expected error when the listing page is unreachable")
	}
}
