package profile

import "testing"

func TestReportByCompanyIncludesHubSpotAnnotation(t *testing.T) {
	profiles := &Profiles{
		Items: []*Profile{
			{
				ID:               "1",
				Name:             "Ada Vance",
				Title:            "Software Engineer",
				Company:          "Acme",
				LinkedInURL:      "https://linkedin.com/in/ada",
				Summary:          "Builds payment infrastructure.",
				InHubSpot:        true,
				HubSpotContactID: "hs-42",
			},
			{
				ID:          "2",
				Name:        "Ben Ortiz",
				Title:       NotSpecified,
				Company:     "",
				LinkedInURL: "https://linkedin.com/in/ben",
			},
		},
	}

	report := profiles.ReportByCompany()

	entries, ok := report["Acme"]
	if !ok || len(entries) != 1 {
		t.Fatalf("expected 1 entry for Acme, got %v", report)
	}
	if entries[0]["hubspot_contact_id"] != "hs-42" {
		t.Fatalf("expected hubspot annotation, got %v", entries[0])
	}

	sentinel, ok := report[NotSpecified]
	if !ok || len(sentinel) != 1 {
		t.Fatalf("expected empty company grouped under the sentinel, got %v", report)
	}
	if _, ok := sentinel[0]["hubspot_contact_id"]; ok {
		t.Fatalf("did not expect hubspot annotation for a new profile")
	}
}

func TestHasCompanyAndHasTitle(t *testing.T) {
	tests := []struct {
		name        string
		profile     *Profile
		wantCompany bool
		wantTitle   bool
	}{
		{"real values", &Profile{Company: "Acme", Title: "Engineer"}, true, true},
		{"sentinels", &Profile{Company: NotSpecified, Title: NotSpecified}, false, false},
		{"empty", &Profile{}, false, false},
		{"whitespace", &Profile{Company: "  ", Title: " "}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.HasCompany(); got != tt.wantCompany {
				t.Fatalf("HasCompany() = %v, want %v", got, tt.wantCompany)
			}
			if got := tt.profile.HasTitle(); got != tt.wantTitle {
				t.Fatalf("HasTitle() = %v, want %v", got, tt.wantTitle)
			}
		})
	}
}

func TestFindByID(t *testing.T) {
	profiles := &Profiles{Items: []*Profile{{ID: "a"}, {ID: "b"}}}

	if found := profiles.FindByID("b"); found == nil || found.ID != "b" {
		t.Fatalf("expected profile b, got %+v", found)
	}
	if found := profiles.FindByID("missing"); found != nil {
		t.Fatalf("expected nil for missing id, got %+v", found)
	}
}
