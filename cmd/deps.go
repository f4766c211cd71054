package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/leadscout/leadscout/internal/ai"
	"github.com/leadscout/leadscout/internal/ai/gemini"
	"github.com/leadscout/leadscout/internal/dedup"
	"github.com/leadscout/leadscout/internal/exa"
	"github.com/leadscout/leadscout/internal/hubspot"
	"github.com/leadscout/leadscout/internal/leadgen"
	"github.com/leadscout/leadscout/internal/logger"
	"github.com/leadscout/leadscout/internal/query"
	"github.com/leadscout/leadscout/internal/secrets"
)

// newPipeline wires the collaborators for one process: the search client is
// required, HubSpot and the AI query parser are optional and degrade to
// disabled when unconfigured.
func newPipeline(ctx context.Context, config *Config, log *zap.Logger) (*leadgen.Pipeline, *hubspot.Client, error) {
	if config == nil || config.Search == nil {
		return nil, nil, fmt.Errorf("search configuration is required")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "exa api key",
		File: config.Search.APIKeyFile,
		Env:  "EXA_API_KEY",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w (set EXA_API_KEY_FILE or the 'search.api-key-file' key in the configuration file)", err)
	}

	searchClient := exa.New(log, apiKey)

	crm := newHubSpotClient(config, log)

	parser, err := newQueryParser(ctx, config.AI, log)
	if err != nil {
		log.Warn("query parsing runs without AI enrichment", zap.Error(err))
		parser = nil
	}

	pipeline := &leadgen.Pipeline{
		Search:      searchClient,
		Interpreter: query.NewInterpreter(parser, log),
		Logger:      log,
		NumResults:  config.Search.NumResults,
		Strict:      config.Search.StrictTitles,
	}

	if crm != nil {
		pipeline.Annotator = dedup.NewAnnotator(crm, log)
	}

	return pipeline, crm, nil
}

func newHubSpotClient(config *Config, log *zap.Logger) *hubspot.Client {
	tokenFile := ""
	if config.HubSpot != nil {
		tokenFile = config.HubSpot.TokenFile
	}

	token, err := secrets.Load(secrets.Source{
		Name: "hubspot token",
		File: tokenFile,
		Env:  "HUBSPOT_TOKEN",
	})
	if err != nil {
		log.Warn("hubspot integration disabled",
			zap.Error(err),
			zap.String("hint", "set HUBSPOT_TOKEN_FILE or the 'hubspot.token-file' key in the configuration file"),
		)
		return nil
	}

	return hubspot.New(log, token)
}

func newQueryParser(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.QueryParser, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("ai enrichment is not enabled")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai enrichment is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithCommonFields(log, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewParser(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}
