package exa

import "context"

const SearchPath = "/search"

type SearchParams struct {
	Query            string   `yaml:"query"`
	IncludeDomains   []string `yaml:"include_domains" mapstructure:"include_domains"`
	NumResults       int      `yaml:"num_results" mapstructure:"num_results"`
	MaxCharacters    int      `yaml:"max_characters" mapstructure:"max_characters"`
	HighlightsPerURL int      `yaml:"highlights_per_url" mapstructure:"highlights_per_url"`
}

type searchRequest struct {
	Query          string          `json:"query"`
	NumResults     int             `json:"numResults"`
	IncludeDomains []string        `json:"includeDomains,omitempty"`
	Contents       contentsRequest `json:"contents"`
}

type contentsRequest struct {
	Text       textRequest       `json:"text"`
	Highlights highlightsRequest `json:"highlights"`
}

type textRequest struct {
	MaxCharacters   int  `json:"maxCharacters,omitempty"`
	IncludeHTMLTags bool `json:"includeHtmlTags"`
}

type highlightsRequest struct {
	NumSentences     int `json:"numSentences,omitempty"`
	HighlightsPerURL int `json:"highlightsPerUrl,omitempty"`
}

type searchResponse struct {
	Results []*Result `json:"results"`
}

func (c *Client) search(ctx context.Context, params *SearchParams) (*Results, error) {
	if params.NumResults <= 0 {
		params.NumResults = defaultNumResults
	}

	body := &searchRequest{
		Query:          params.Query,
		NumResults:     params.NumResults,
		IncludeDomains: params.IncludeDomains,
		Contents: contentsRequest{
			Text: textRequest{
				MaxCharacters: params.MaxCharacters,
			},
			Highlights: highlightsRequest{
				NumSentences:     2,
				HighlightsPerURL: params.HighlightsPerURL,
			},
		},
	}

	var response searchResponse
	if err := c.postJSON(ctx, SearchPath, body, &response); err != nil {
		return nil, err
	}

	return &Results{Items: response.Results}, nil
}
