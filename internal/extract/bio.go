package extract

import (
	"regexp"
	"strings"

	"github.com/leadscout/leadscout/internal/exa"
)

// DefaultSummary is returned when nothing in the result reads like a bio.
const DefaultSummary = "No summary available"

const (
	summaryMinLength = 20
	summaryMaxLength = 300
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

	// LinkedIn login walls and UI chrome that leak into search snippets.
	boilerplateRe = regexp.MustCompile(`(?i)(?:sign in to view|sign in|join now|join linkedin|log in|new to linkedin|privacy policy|cookie policy|user agreement|by clicking|welcome back|forgot password|see who you know)`)
)

// summarize picks the first human-sounding sentence out of the highlights and
// body text. Falls back to the middle segment of the page title, then to a
// fixed placeholder.
func summarize(result *exa.Result) string {
	parts := make([]string, 0, len(result.Highlights)+1)
	parts = append(parts, result.Highlights...)
	if result.Text != "" {
		parts = append(parts, result.Text)
	}

	combined := strings.Join(parts, " ")
	for _, sentence := range sentenceSplitRe.Split(combined, -1) {
		cleaned := Clean(sentence)
		if len(cleaned) < summaryMinLength || len(cleaned) > summaryMaxLength {
			continue
		}
		if boilerplateRe.MatchString(cleaned) {
			continue
		}
		return cleaned
	}

	if fallback := titleSegment(result.Title); fallback != "" {
		return fallback
	}

	return DefaultSummary
}

// titleSegment returns the text between the first dash and the first pipe of
// the page title, which often holds the member's headline.
func titleSegment(title string) string {
	_, rest, found := strings.Cut(title, " - ")
	if !found {
		return ""
	}
	segment, _, found := strings.Cut(rest, " | ")
	if !found {
		return ""
	}
	return Clean(segment)
}
