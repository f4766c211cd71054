package exa

import (
	"encoding/json"
	"os"
	"strings"
)

// Result is one ranked web page returned by the search API.
type Result struct {
	ID         string   `json:"id,omitempty"`
	URL        string   `json:"url,omitempty"`
	Title      string   `json:"title,omitempty"`
	Text       string   `json:"text,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type Results struct {
	Items []*Result
}

func (r *Results) Len() int {
	return len(r.Items)
}

func (r *Results) FindByID(id string) *Result {
	for _, item := range r.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// IsProfileURL reports whether the URL points at a personal LinkedIn profile
// page. Job postings and company pages share the domain but carry no person.
func IsProfileURL(url string) bool {
	lower := strings.ToLower(url)
	if !strings.Contains(lower, "/in/") {
		return false
	}
	return !strings.Contains(lower, "/jobs/") && !strings.Contains(lower, "/company/")
}

// OnlyProfiles returns the results whose URLs pass IsProfileURL, preserving
// the ranking order.
func (r *Results) OnlyProfiles() *Results {
	kept := make([]*Result, 0, len(r.Items))
	for _, item := range r.Items {
		if IsProfileURL(item.URL) {
			kept = append(kept, item)
		}
	}
	return &Results{Items: kept}
}

func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "results_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
