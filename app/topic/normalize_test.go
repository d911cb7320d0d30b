package topic

import (
	"strings"
	"testing"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("  El   Campeón\n\tretiene  el título ")
	want := "el campeón retiene el título"

	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalize_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", 6000)
	got := Normalize(long)

	if len([]rune(got)) != 5000 {
		t.Errorf("Expected normalized text truncated to 5000 characters, got %d", len([]rune(got)))
	}
}

func TestHash_EmptyText(t *testing.T) {
	if Hash("") != "" {
		t.Error("Expected empty hash for empty text")
	}
}

func TestHash_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := Hash("El Campeón retiene el título")
	b := Hash("  el campeón   retiene el título\n")

	if a == "" {
		t.Fatal("Expected non-empty hash")
	}
	if a != b {
		t.Errorf("Expected identical hashes for equivalent text, got %q and %q", a, b)
	}
}

func TestHash_DiffersForDifferentContent(t *testing.T) {
	a := Hash("primera crónica del combate")
	b := Hash("segunda crónica del combate")

	if a == b {
		t.Error("Expected different hashes for different content")
	}
}
