// Package query derives a target company and job title from the raw
// free-text query, optionally enriched by a language model.
package query

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/leadscout/leadscout/internal/ai"
)

// ParsedQuery is the structured reading of one search request. Company and
// JobTitle may both be empty; TitleVariations only ever augments matching.
type ParsedQuery struct {
	Company         string   `json:"company"`
	JobTitle        string   `json:"jobTitle"`
	TitleVariations []string `json:"titleVariations,omitempty"`
}

// companyRe captures a capitalized phrase immediately following "at" or "@".
var companyRe = regexp.MustCompile(`(?:\bat\b|@)\s+([A-Z][A-Za-z0-9&.'-]*(?:\s+[A-Z][A-Za-z0-9&.'-]*)*)`)

// Interpreter turns raw queries into ParsedQuery values. A nil parser keeps
// the regex baseline only.
type Interpreter struct {
	parser ai.QueryParser
	logger *zap.Logger
}

func NewInterpreter(parser ai.QueryParser, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{parser: parser, logger: logger}
}

// Interpret never fails: any parser error degrades to the regex baseline and
// the caller always receives a complete, possibly-all-empty ParsedQuery.
func (i *Interpreter) Interpret(ctx context.Context, query string) *ParsedQuery {
	parsed := baseline(query)

	if i.parser == nil {
		return parsed
	}

	intent, err := i.parser.ParseQuery(ctx, query)
	if err != nil {
		i.logger.Debug("query parser failed, using baseline fields", zap.Error(err))
		return parsed
	}

	if company := strings.TrimSpace(intent.Company); company != "" {
		parsed.Company = company
	}
	if title := strings.TrimSpace(intent.JobTitle); title != "" {
		parsed.JobTitle = title
	}
	parsed.TitleVariations = append(parsed.TitleVariations, intent.TitleVariations...)

	return parsed
}

// baseline extracts the company from the first "(at|@) CapitalizedPhrase"
// match and the job title from the text preceding the first " at " or " @ ".
func baseline(query string) *ParsedQuery {
	parsed := &ParsedQuery{}

	if m := companyRe.FindStringSubmatch(query); len(m) > 1 {
		parsed.Company = strings.TrimSpace(m[1])
	}

	lower := strings.ToLower(query)
	idx := strings.Index(lower, " at ")
	if atIdx := strings.Index(lower, " @ "); atIdx != -1 && (idx == -1 || atIdx < idx) {
		idx = atIdx
	}
	if idx > 0 {
		parsed.JobTitle = strings.ToLower(strings.TrimSpace(query[:idx]))
	}

	return parsed
}
