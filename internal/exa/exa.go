// Package exa is a minimal client for the Exa web search API, used to find
// public LinkedIn profile pages for a free-text query.
package exa

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL = "https://api.exa.ai"
	// Enough candidates for one review screen without burning quota.
	defaultNumResults = 10
)

type Client struct {
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

func New(logger *zap.Logger, apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Search runs one query. The context bounds the request, so an abandoned
// caller cancels the in-flight call.
func (c *Client) Search(ctx context.Context, params *SearchParams) (*Results, error) {
	return c.search(ctx, params)
}
