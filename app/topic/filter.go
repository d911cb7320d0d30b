package topic

import (
	"strings"
)

// Filter decides topic membership and assigns a sport category using
// case-insensitive substring matching over the configured keyword sets.
// No tokenization or stemming: false positives are tolerated downstream by
// the extraction threshold.
type Filter struct {
	mma     []string
	boxing  []string
	stopURL []string
}

func NewFilter(kw Keywords) *Filter {
	return &Filter{
		mma:     foldAll(kw.MMA),
		boxing:  foldAll(kw.Boxing),
		stopURL: foldAll(kw.StopURL),
	}
}

// OnTopic reports whether a candidate belongs to the combat-sports topic.
// Stop-URL patterns (other-sport sections, auth and navigation pages) veto
// before any keyword can match.
func (f *Filter) OnTopic(title, url string) bool {
	s := Fold(title + " " + url)

	if containsAny(s, f.stopURL) {
		return false
	}

	return containsAny(s, f.mma) || containsAny(s, f.boxing)
}

// Classify assigns a sport category from title, URL and extracted text.
// SportOther marks the borderline case where the title or URL matched a
// keyword but the extracted text contains neither list's terms.
func (f *Filter) Classify(title, url, text string) Sport {
	s := Fold(title + " " + url + " " + text)

	mma := containsAny(s, f.mma)
	boxing := containsAny(s, f.boxing)

	switch {
	case mma && !boxing:
		return SportMMA
	case boxing && !mma:
		return SportBoxing
	case mma && boxing:
		return SportMixed
	default:
		return SportOther
	}
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func foldAll(patterns []string) []string {
	folded := make([]string, len(patterns))
	for i, p := range patterns {
		folded[i] = Fold(p)
	}
	return folded
}
