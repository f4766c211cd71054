package extract

import (
	"regexp"
	"strings"
)

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	htmlTagRe      = regexp.MustCompile(`<[^>]+>`)
	annotationRe   = regexp.MustCompile(`(?i)\(\s*(?:current|full[\s-]?time|part[\s-]?time|contract|remote)\s*\)`)
	leadingJunkRe  = regexp.MustCompile(`^[\s·•\-*>#–]+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Clean normalizes one extracted field: markdown and HTML leftovers are
// removed, employment annotations dropped, whitespace collapsed, and dangling
// "at"/"@" tokens trimmed from both ends.
func Clean(s string) string {
	s = markdownLinkRe.ReplaceAllString(s, "$1")
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = annotationRe.ReplaceAllString(s, " ")
	s = leadingJunkRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return trimEdgeTokens(strings.TrimSpace(s))
}

func trimEdgeTokens(s string) string {
	fields := strings.Fields(s)

	for len(fields) > 0 && isEdgeToken(fields[0]) {
		fields = fields[1:]
	}
	for len(fields) > 0 && isEdgeToken(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}

	return strings.Join(fields, " ")
}

func isEdgeToken(token string) bool {
	lower := strings.ToLower(token)
	return lower == "at" || lower == "@"
}
