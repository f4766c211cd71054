package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/leadscout/leadscout/internal/ai"
	"github.com/leadscout/leadscout/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Parser asks Gemini to read a free-text prospect query into company, job
// title, and title variations.
type Parser struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewParser(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Parser {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Parser{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// ParseQuery implements ai.QueryParser. Any generation or decode failure is
// returned to the caller, which is expected to fall back to regex parsing.
func (p *Parser) ParseQuery(ctx context.Context, query string) (*ai.QueryIntent, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	prompt := buildPrompt(query)

	p.logger.Debug("gemini parse query request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("gemini parse query response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, p.maxLogLen)),
	)

	intent, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	intent.Raw = raw
	return intent, nil
}

func buildPrompt(query string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Query:\n{{QUERY}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{QUERY}}", query)
}

func parseResponse(raw string) (*ai.QueryIntent, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &ai.QueryIntent{
		Company:         coerceString(data["company"]),
		JobTitle:        coerceString(data["jobTitle"]),
		TitleVariations: coerceStringSlice(data["titleVariations"]),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

func coerceStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		s := coerceString(item)
		if s == "" {
			continue
		}
		result = append(result, s)
	}
	return result
}
