// Package extract turns one noisy search result into a structured candidate
// profile. Every step is best-effort: a failed match leaves the previous
// value in place, there is no error path.
package extract

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/leadscout/leadscout/internal/exa"
	"github.com/leadscout/leadscout/internal/profile"
)

var (
	// Page titles end with "| LinkedIn" or "| Professional Profile" noise.
	suffixRe = regexp.MustCompile(`(?i)\s*\|\s*(?:linkedin|professional profile)\b.*$`)

	// Snippet sections that usually carry the current role.
	experienceRe = regexp.MustCompile(`(?i)experience\s*:?\s+([^·•|\n.]{2,100})`)
	currentRe    = regexp.MustCompile(`(?i)current\s*:?\s+([^·•|\n.]{2,100})`)

	durationRe = regexp.MustCompile(`(?i)^\d+\+?\s*(?:years?|yrs?|months?|mos?)\b`)
	dateRe     = regexp.MustCompile(`(?i)^(?:\d{1,2}/\d{4}|\d{4}(?:\s*[-–]\s*(?:\d{4}|present))?|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4})$`)
	bareNameRe = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+$`)
)

// Words that mark a dangling phrase as a job title rather than a company name.
var jobWords = []string{
	"engineer", "manager", "director", "developer", "designer", "scientist",
	"analyst", "lead", "specialist", "consultant", "architect", "researcher",
	"coordinator", "associate", "intern",
}

// Separators between title and company inside a page title, tried in order.
var titleCompanySeparators = []string{" @ ", " at ", " | "}

const snippetMinLength = 50

// Extract builds a Profile from a single search result. targetCompany, when
// known, anchors one extra title pass over the snippet text. Extraction is
// deterministic: the same result and target always produce the same profile.
func Extract(result *exa.Result, targetCompany string) *profile.Profile {
	p := &profile.Profile{
		ID:          result.ID,
		Name:        profile.UnknownName,
		Title:       profile.NotSpecified,
		Company:     profile.NotSpecified,
		LinkedInURL: result.URL,
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	pageTitle := suffixRe.ReplaceAllString(result.Title, "")

	name, afterDash, dashed := strings.Cut(pageTitle, " - ")
	if strings.TrimSpace(name) != "" {
		p.Name = name
	}

	if dashed {
		parseAfterDash(p, afterDash)
	}

	snippet := combinedText(result)
	if len(snippet) > snippetMinLength {
		if candidate, ok := firstValidMatch(experienceRe, snippet); ok {
			p.Title = candidate
		}
		if candidate, ok := firstValidMatch(currentRe, snippet); ok {
			p.Title = candidate
		}
	}

	if strings.TrimSpace(targetCompany) != "" && snippet != "" {
		if candidate, ok := titleBeforeCompany(snippet, targetCompany); ok {
			p.Title = candidate
			p.Company = targetCompany
		}
	}

	p.Name = cleanOr(p.Name, profile.UnknownName)
	p.Title = cleanOr(p.Title, profile.NotSpecified)
	p.Company = cleanOr(p.Company, profile.NotSpecified)
	p.Summary = summarize(result)

	return p
}

// parseAfterDash resolves the "Title @ Company" tail of a page title. When no
// separator is present, a short phrase without job words is a company name and
// anything else is a title.
func parseAfterDash(p *profile.Profile, afterDash string) {
	lower := strings.ToLower(afterDash)

	for _, sep := range titleCompanySeparators {
		idx := strings.Index(lower, sep)
		if idx == -1 {
			continue
		}
		if title := strings.TrimSpace(afterDash[:idx]); title != "" {
			p.Title = title
		}
		if company := strings.TrimSpace(afterDash[idx+len(sep):]); company != "" {
			p.Company = company
		}
		return
	}

	phrase := strings.TrimSpace(afterDash)
	if phrase == "" {
		return
	}

	if len(strings.Fields(phrase)) <= 3 && !containsJobWord(lower) {
		p.Company = phrase
		return
	}
	p.Title = phrase
}

func containsJobWord(lower string) bool {
	for _, word := range jobWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func combinedText(result *exa.Result) string {
	parts := make([]string, 0, len(result.Highlights)+1)
	if result.Text != "" {
		parts = append(parts, result.Text)
	}
	parts = append(parts, result.Highlights...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

func firstValidMatch(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	candidate := Clean(m[1])
	if !validTitleCandidate(candidate) {
		return "", false
	}
	return candidate, true
}

// titleBeforeCompany looks for a phrase immediately preceding the target
// company name, e.g. "Data Scientist at OpenAI".
func titleBeforeCompany(text, company string) (string, bool) {
	re, err := regexp.Compile(`(?i)([A-Za-z][^·•|\n.]{3,79}?)\s+(?:at|@)\s+` + regexp.QuoteMeta(company))
	if err != nil {
		return "", false
	}

	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}

	// The match starts at the leftmost position, so the captured group often
	// drags in the whole sentence prefix. Keep only the capitalized phrase
	// right before the company name.
	candidate := trailingTitlePhrase(Clean(m[1]))
	if !validTitleCandidate(candidate) {
		return "", false
	}
	return candidate, true
}

// trailingTitlePhrase returns the longest run of capitalized words at the end
// of s. Without such a run a short lowercase phrase passes through as is and
// anything longer is discarded as sentence prose.
func trailingTitlePhrase(s string) string {
	fields := strings.Fields(s)

	start := len(fields)
	for start > 0 && startsUpper(fields[start-1]) {
		start--
	}

	if start == len(fields) {
		if len(fields) > 5 {
			return ""
		}
		return s
	}
	return strings.Join(fields[start:], " ")
}

func startsUpper(word string) bool {
	return word != "" && word[0] >= 'A' && word[0] <= 'Z'
}

// validTitleCandidate rejects phrases that look like durations, dates, or a
// person's name rather than a job title. Two capitalized words read as a bare
// name only when neither is a job word, so "Product Manager" stays a title
// while "Sam Patel" does not.
func validTitleCandidate(s string) bool {
	if len(s) < 5 || len(s) > 80 {
		return false
	}
	if durationRe.MatchString(s) {
		return false
	}
	if dateRe.MatchString(s) {
		return false
	}
	if bareNameRe.MatchString(s) && !containsJobWord(strings.ToLower(s)) {
		return false
	}
	return true
}

func cleanOr(value, sentinel string) string {
	if value == sentinel {
		return sentinel
	}
	cleaned := Clean(value)
	if cleaned == "" {
		return sentinel
	}
	return cleaned
}
