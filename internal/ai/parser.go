package ai

import "context"

// QueryIntent is the structured reading of a free-text prospect query as
// returned by a language model.
type QueryIntent struct {
	Company         string
	JobTitle        string
	TitleVariations []string
	Raw             string
}

// QueryParser derives a QueryIntent from a raw query. Implementations may
// fail; callers are expected to fall back to heuristic parsing.
type QueryParser interface {
	ParseQuery(ctx context.Context, query string) (*QueryIntent, error)
}
