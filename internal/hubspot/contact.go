package hubspot

import (
	"strings"

	"github.com/leadscout/leadscout/internal/profile"
)

// Contact is the subset of a HubSpot contact object we care about.
type Contact struct {
	ID         string            `json:"id"`
	Properties ContactProperties `json:"properties"`
}

type ContactProperties struct {
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	JobTitle    string `json:"jobtitle"`
	Company     string `json:"company"`
	LinkedInURL string `json:"linkedin_url"`
}

// contactProperties lists the property names requested on search responses.
var contactProperties = []string{
	"firstname", "lastname", "jobtitle", "company", PropertyLinkedInURL,
}

// PropertiesForProfile maps an extracted profile onto HubSpot contact
// properties. The name splits on the first space into first/last; sentinel
// values are not written.
func PropertiesForProfile(p *profile.Profile) map[string]string {
	properties := map[string]string{
		PropertyLinkedInURL: p.LinkedInURL,
	}

	if name := strings.TrimSpace(p.Name); name != "" && name != profile.UnknownName {
		first, last, found := strings.Cut(name, " ")
		properties["firstname"] = first
		if found {
			properties["lastname"] = strings.TrimSpace(last)
		}
	}

	if p.HasTitle() {
		properties["jobtitle"] = p.Title
	}
	if p.HasCompany() {
		properties["company"] = p.Company
	}

	return properties
}
