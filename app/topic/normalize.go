package topic

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/cases"
)

// Content hashed for change detection is capped so that trailing edits to
// very long articles (related-links blocks, comment counts) do not count as
// content changes.
const hashCap = 5000

var folder = cases.Fold()

// Fold lowercases text for matching and hashing. Unicode case folding
// rather than ASCII lowercasing, since sources publish in Spanish.
func Fold(s string) string {
	return folder.String(s)
}

// Normalize produces the canonical form used for change detection:
// case-folded, whitespace-collapsed, truncated to 5000 characters.
func Normalize(text string) string {
	t := strings.Join(strings.Fields(Fold(text)), " ")
	runes := []rune(t)
	if len(runes) > hashCap {
		runes = runes[:hashCap]
	}
	return string(runes)
}

// Hash returns the sha256 hex digest of the normalized text. Empty text
// hashes to the empty string.
func Hash(text string) string {
	if text == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(Normalize(text)))
	return hex.EncodeToString(sum[:])
}
