// Package leadgen wires the search, extraction, filtering, and dedup stages
// into one request pipeline.
package leadgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/leadscout/leadscout/internal/exa"
	"github.com/leadscout/leadscout/internal/extract"
	"github.com/leadscout/leadscout/internal/filtering"
	"github.com/leadscout/leadscout/internal/profile"
	"github.com/leadscout/leadscout/internal/query"
)

// ErrEmptyQuery is returned before any external call when the query is blank.
var ErrEmptyQuery = errors.New("query is required")

// Searcher is the search-provider dependency.
type Searcher interface {
	Search(ctx context.Context, params *exa.SearchParams) (*exa.Results, error)
}

// Annotator marks profiles already present in the CRM.
type Annotator interface {
	Annotate(ctx context.Context, profiles []*profile.Profile) []*profile.Profile
}

// Result is one completed pipeline run.
type Result struct {
	Query    string             `json:"query"`
	Parsed   *query.ParsedQuery `json:"parsed"`
	Profiles []*profile.Profile `json:"profiles"`
}

// Pipeline holds the collaborators for one deployment. All clients are
// injected; the pipeline owns no global state.
type Pipeline struct {
	Search      Searcher
	Interpreter *query.Interpreter
	Annotator   Annotator
	Logger      *zap.Logger

	// NumResults caps how many search results are requested.
	NumResults int
	// Strict disables the permissive title token-overlap fallback.
	Strict bool
}

// Run executes one search request. Only an empty query or a failed primary
// search is fatal; every other collaborator failure degrades and is logged.
func (p *Pipeline) Run(ctx context.Context, rawQuery string) (*Result, error) {
	rawQuery = strings.TrimSpace(rawQuery)
	if rawQuery == "" {
		return nil, ErrEmptyQuery
	}

	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed := p.Interpreter.Interpret(ctx, rawQuery)
	logger.Info("interpreted query",
		zap.String("query", rawQuery),
		zap.String("target_company", parsed.Company),
		zap.String("target_title", parsed.JobTitle),
		zap.Int("title_variations", len(parsed.TitleVariations)),
	)

	results, err := p.Search.Search(ctx, &exa.SearchParams{
		Query:          rawQuery + " site:linkedin.com/in",
		IncludeDomains: []string{"linkedin.com"},
		NumResults:     p.NumResults,
		MaxCharacters:  1000,
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	candidates := results.OnlyProfiles()
	logger.Info("got search results",
		zap.Int("total", results.Len()),
		zap.Int("profile_pages", candidates.Len()),
	)

	profiles := &profile.Profiles{Items: make([]*profile.Profile, 0, candidates.Len())}
	for _, item := range candidates.Items {
		profiles.Items = append(profiles.Items, extract.Extract(item, parsed.Company))
	}

	cfg := &filtering.Config{
		Company:         parsed.Company,
		Title:           parsed.JobTitle,
		TitleVariations: parsed.TitleVariations,
		Strict:          p.Strict,
	}
	steps := []filtering.Filter{
		filtering.NewCompanyMatch(),
		filtering.NewTitleMatch(),
	}

	filtered, err := filtering.Run(ctx, cfg, filtering.Deps{Logger: logger}, steps, profiles)
	if err != nil {
		// Filter validation problems should not kill the request; ship
		// the unfiltered extraction instead.
		logger.Warn("filtering failed, returning unfiltered profiles", zap.Error(err))
		filtered = profiles
	}

	items := filtered.Items
	if p.Annotator != nil {
		items = p.Annotator.Annotate(ctx, items)
	}

	return &Result{
		Query:    rawQuery,
		Parsed:   parsed,
		Profiles: items,
	}, nil
}

// DescribeSearchError picks user-facing wording for a failed primary search.
func DescribeSearchError(err error) string {
	switch {
	case errors.Is(err, exa.ErrTimeout):
		return "The search provider timed out. Try again in a moment."
	case errors.Is(err, exa.ErrCredentials):
		return "The search provider rejected our credentials. Check the configured API key."
	default:
		return "Search failed. Please try again."
	}
}
