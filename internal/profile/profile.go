// Package profile defines the candidate record produced by extraction and the
// collection helpers used by filtering, export, and the CRM sync.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Sentinel values written when extraction cannot find a field. Downstream
// filters treat them as "absent".
const (
	UnknownName  = "Unknown"
	NotSpecified = "Not specified"
)

const (
	ProfileIDField  = "ID"
	ProfileURLField = "LinkedInURL"
)

// Profile is one candidate person extracted from a single search result.
// Fields are settled during extraction; only the HubSpot annotation is
// merged in afterwards.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	LinkedInURL string `json:"linkedinUrl"`
	Summary     string `json:"summary"`

	InHubSpot        bool   `json:"inHubSpot"`
	HubSpotContactID string `json:"hubSpotContactId,omitempty"`
}

type Profiles struct {
	Items []*Profile `json:"items"`
}

func (p *Profiles) Len() int {
	return len(p.Items)
}

func (p *Profiles) FindByID(id string) *Profile {
	for _, item := range p.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (pr *Profile) GetStringField(name string) string {
	switch name {
	case ProfileIDField:
		return pr.ID
	case ProfileURLField:
		return pr.LinkedInURL
	default:
		return ""
	}
}

// HasCompany reports whether a real company was extracted, i.e. the field is
// neither empty nor the sentinel.
func (pr *Profile) HasCompany() bool {
	c := strings.TrimSpace(pr.Company)
	return c != "" && c != NotSpecified
}

// HasTitle reports whether a real title was extracted.
func (pr *Profile) HasTitle() bool {
	t := strings.TrimSpace(pr.Title)
	return t != "" && t != NotSpecified
}

// ReportByCompany groups profiles by extracted company for interactive review.
func (p *Profiles) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range p.Items {
		key := item.Company
		if key == "" {
			key = NotSpecified
		}
		entry := map[string]string{
			"name":    item.Name,
			"title":   item.Title,
			"url":     item.LinkedInURL,
			"summary": item.Summary,
		}
		if item.InHubSpot {
			entry["hubspot_contact_id"] = item.HubSpotContactID
		}
		report[key] = append(report[key], entry)
	}
	return report
}

func (p *Profiles) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "profiles_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// Label is a one-line human readable description used by interactive prompts.
func (pr *Profile) Label() string {
	return fmt.Sprintf("%s / %s / %s / %s", pr.Name, pr.Title, pr.Company, pr.LinkedInURL)
}
