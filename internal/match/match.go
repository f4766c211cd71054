// Package match decides whether an extracted profile fits the company and
// title derived from the user's query.
package match

import (
	"regexp"
	"strings"

	"github.com/leadscout/leadscout/internal/profile"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CompanyMatches reports whether the extracted company fits the target.
// Comparison is case-insensitive and accepts substring containment in either
// direction, so "OpenAI" matches "OpenAI Research Labs" and vice versa.
// A missing or sentinel company never matches.
func CompanyMatches(company, target string) bool {
	company = strings.TrimSpace(company)
	if company == "" || company == profile.NotSpecified {
		return false
	}

	target = strings.TrimSpace(target)
	if target == "" {
		return false
	}

	lc, lt := strings.ToLower(company), strings.ToLower(target)
	return lc == lt || strings.Contains(lc, lt) || strings.Contains(lt, lc)
}

// TitleMatches reports whether the extracted title fits the searched title or
// any of its variations. When strict is true the permissive token-overlap
// fallback is skipped; the default mode keeps it because single shared words
// like "engineer" are often the only signal in truncated snippets, at the
// cost of occasional false positives.
func TitleMatches(title, target string, variations []string, strict bool) bool {
	title = strings.TrimSpace(title)
	if title == "" || title == profile.NotSpecified {
		return false
	}

	nt := Normalize(title)
	ns := Normalize(target)
	if ns == "" {
		return false
	}

	if strings.Contains(nt, ns) || strings.Contains(ns, nt) {
		return true
	}

	// "founder" and "co-founder" are the same person for our purposes.
	if strings.Contains(ns, "founder") && strings.Contains(nt, "founder") {
		return true
	}

	for _, variation := range variations {
		nv := Normalize(variation)
		if nv == "" {
			continue
		}
		if strings.Contains(nt, nv) || strings.Contains(nv, nt) {
			return true
		}
	}

	if synonymMatch(ns, nt) || synonymMatch(nt, ns) {
		return true
	}

	if strict {
		return false
	}

	return tokenOverlap(ns, nt)
}

// Normalize prepares a title for comparison: hyphens and underscores become
// spaces, whitespace collapses, everything is lower-cased.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// tokenOverlap returns true when at least one meaningful search token is a
// substring or superstring of a profile token.
func tokenOverlap(search, title string) bool {
	searchTokens := meaningfulTokens(search)
	titleTokens := meaningfulTokens(title)

	for _, st := range searchTokens {
		for _, tt := range titleTokens {
			if strings.Contains(tt, st) || strings.Contains(st, tt) {
				return true
			}
		}
	}
	return false
}

// Filler words dropped before token comparison.
var stopWords = map[string]struct{}{
	"a": {}, "the": {}, "and": {}, "or": {}, "at": {}, "in": {}, "of": {},
	"senior": {}, "junior": {}, "staff": {},
}

func meaningfulTokens(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := stopWords[field]; ok {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
