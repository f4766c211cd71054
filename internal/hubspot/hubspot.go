// Package hubspot is a minimal client for the HubSpot contacts API, used to
// detect existing contacts and upsert exported profiles.
package hubspot

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/leadscout/leadscout/internal/profile"
)

const (
	apiURL             = "https://api.hubapi.com"
	searchContactsPath = "/crm/v3/objects/contacts/search"
	contactsPath       = "/crm/v3/objects/contacts"

	// PropertyLinkedInURL is the dedicated contact property holding the
	// profile URL, which is our stable dedup key.
	PropertyLinkedInURL = "linkedin_url"
)

// HubSpot allows ~4 search requests per second on the standard plan.
const (
	requestsPerSecond = 4
	requestBurst      = 5
)

type Client struct {
	token      string
	logger     *zap.Logger
	limiter    *rate.Limiter
	HTTPClient *http.Client
	APIURL     string
}

func New(logger *zap.Logger, token string) *Client {
	return &Client{
		token:   token,
		APIURL:  apiURL,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// SearchByProperty returns the first contact whose property equals value, or
// nil when no contact matches.
func (c *Client) SearchByProperty(ctx context.Context, property, value string) (*Contact, error) {
	body := &searchRequest{
		FilterGroups: []filterGroup{{
			Filters: []filter{{
				PropertyName: property,
				Operator:     "EQ",
				Value:        value,
			}},
		}},
		Properties: contactProperties,
		Limit:      1,
	}

	var response searchResponse
	if err := c.doJSON(ctx, http.MethodPost, searchContactsPath, body, &response); err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}

	if len(response.Results) == 0 {
		return nil, nil
	}

	return decodeContact(response.Results[0])
}

// CreateContact creates a contact with the provided property values.
func (c *Client) CreateContact(ctx context.Context, properties map[string]string) (*Contact, error) {
	body := &mutateRequest{Properties: properties}

	var raw map[string]any
	if err := c.doJSON(ctx, http.MethodPost, contactsPath, body, &raw); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	return decodeContact(raw)
}

// UpdateContact patches an existing contact's properties.
func (c *Client) UpdateContact(ctx context.Context, id string, properties map[string]string) (*Contact, error) {
	body := &mutateRequest{Properties: properties}

	var raw map[string]any
	if err := c.doJSON(ctx, http.MethodPatch, contactsPath+"/"+id, body, &raw); err != nil {
		return nil, fmt.Errorf("update contact %s: %w", id, err)
	}

	return decodeContact(raw)
}

// UpsertProfile creates or updates the contact matching the profile's
// LinkedIn URL. The second return value is true when a new contact was
// created.
func (c *Client) UpsertProfile(ctx context.Context, p *profile.Profile) (*Contact, bool, error) {
	properties := PropertiesForProfile(p)

	existing, err := c.SearchByProperty(ctx, PropertyLinkedInURL, p.LinkedInURL)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		created, err := c.CreateContact(ctx, properties)
		if err != nil {
			return nil, false, err
		}
		c.logger.Info("created hubspot contact",
			zap.String("contact_id", created.ID),
			zap.String("linkedin_url", p.LinkedInURL),
		)
		return created, true, nil
	}

	updated, err := c.UpdateContact(ctx, existing.ID, properties)
	if err != nil {
		return nil, false, err
	}
	c.logger.Info("updated hubspot contact",
		zap.String("contact_id", existing.ID),
		zap.String("linkedin_url", p.LinkedInURL),
	)
	return updated, false, nil
}

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties,omitempty"`
	Limit        int           `json:"limit,omitempty"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchResponse struct {
	Total   int              `json:"total"`
	Results []map[string]any `json:"results"`
}

type mutateRequest struct {
	Properties map[string]string `json:"properties"`
}

// decodeContact maps a loosely-typed API object into a Contact.
func decodeContact(raw map[string]any) (*Contact, error) {
	var contact *Contact
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &contact,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode contact: %w", err)
	}
	return contact, nil
}
