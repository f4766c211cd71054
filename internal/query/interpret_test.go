package query

import (
	"context"
	"errors"
	"testing"

	"github.com/leadscout/leadscout/internal/ai"
)

type stubParser struct {
	intent *ai.QueryIntent
	err    error
}

func (s *stubParser) ParseQuery(_ context.Context, _ string) (*ai.QueryIntent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.intent, nil
}

func TestInterpretBaseline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		company string
		title   string
	}{
		{
			name:    "title at company",
			query:   "Marketing Manager at HubSpot",
			company: "HubSpot",
			title:   "marketing manager",
		},
		{
			name:    "title with @ separator",
			query:   "data scientist @ OpenAI",
			company: "OpenAI",
			title:   "data scientist",
		},
		{
			name:    "multi word company",
			query:   "engineers at Acme Research Labs",
			company: "Acme Research Labs",
			title:   "engineers",
		},
		{
			name:    "no company keyword",
			query:   "senior golang developers",
			company: "",
			title:   "",
		},
		{
			name:    "lowercase company not captured",
			query:   "designers at acme",
			company: "",
			title:   "designers",
		},
	}

	interpreter := NewInterpreter(nil, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			parsed := interpreter.Interpret(context.Background(), tt.query)
			if parsed.Company != tt.company {
				t.Fatalf("expected company %q, got %q", tt.company, parsed.Company)
			}
			if parsed.JobTitle != tt.title {
				t.Fatalf("expected title %q, got %q", tt.title, parsed.JobTitle)
			}
		})
	}
}

func TestInterpretEnhancedOverridesBaseline(t *testing.T) {
	parser := &stubParser{intent: &ai.QueryIntent{
		Company:         "HubSpot Inc",
		JobTitle:        "growth marketer",
		TitleVariations: []string{"demand generation", "marketing lead"},
	}}

	interpreter := NewInterpreter(parser, nil)
	parsed := interpreter.Interpret(context.Background(), "Marketing Manager at HubSpot")

	if parsed.Company != "HubSpot Inc" {
		t.Fatalf("expected parser company to win, got %q", parsed.Company)
	}
	if parsed.JobTitle != "growth marketer" {
		t.Fatalf("expected parser title to win, got %q", parsed.JobTitle)
	}
	if len(parsed.TitleVariations) != 2 {
		t.Fatalf("expected variations to be kept, got %v", parsed.TitleVariations)
	}
}

func TestInterpretEnhancedEmptyFieldsKeepBaseline(t *testing.T) {
	parser := &stubParser{intent: &ai.QueryIntent{
		TitleVariations: []string{"vp marketing"},
	}}

	interpreter := NewInterpreter(parser, nil)
	parsed := interpreter.Interpret(context.Background(), "Marketing Manager at HubSpot")

	if parsed.Company != "HubSpot" {
		t.Fatalf("expected baseline company kept, got %q", parsed.Company)
	}
	if parsed.JobTitle != "marketing manager" {
		t.Fatalf("expected baseline title kept, got %q", parsed.JobTitle)
	}
	if len(parsed.TitleVariations) != 1 {
		t.Fatalf("expected variations appended, got %v", parsed.TitleVariations)
	}
}

func TestInterpretParserFailureFallsBack(t *testing.T) {
	parser := &stubParser{err: errors.New("model unavailable")}

	interpreter := NewInterpreter(parser, nil)
	parsed := interpreter.Interpret(context.Background(), "Marketing Manager at HubSpot")

	if parsed.Company != "HubSpot" || parsed.JobTitle != "marketing manager" {
		t.Fatalf("expected baseline fallback, got %+v", parsed)
	}
}
