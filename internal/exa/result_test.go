package exa

import "testing"

func TestIsProfileURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://linkedin.com/in/janedoe", true},
		{"https://www.linkedin.com/in/jane-doe-123", true},
		{"https://LinkedIn.com/IN/JaneDoe", true},
		{"https://linkedin.com/jobs/view/12345", false},
		{"https://linkedin.com/company/acme", false},
		{"https://linkedin.com/company/acme/in/", false},
		{"https://example.com/profile/jane", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsProfileURL(tt.url); got != tt.want {
			t.Fatalf("IsProfileURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestOnlyProfilesPreservesOrder(t *testing.T) {
	results := &Results{
		Items: []*Result{
			{ID: "1", URL: "https://linkedin.com/in/first"},
			{ID: "2", URL: "https://linkedin.com/jobs/view/999"},
			{ID: "3", URL: "https://linkedin.com/in/second"},
			{ID: "4", URL: "https://linkedin.com/company/acme"},
		},
	}

	kept := results.OnlyProfiles()

	if kept.Len() != 2 {
		t.Fatalf("expected 2 profile results, got %d", kept.Len())
	}
	if kept.Items[0].ID != "1" || kept.Items[1].ID != "3" {
		t.Fatalf("order not preserved: %s, %s", kept.Items[0].ID, kept.Items[1].ID)
	}
}

func TestFindByID(t *testing.T) {
	results := &Results{
		Items: []*Result{
			{ID: "a"},
			{ID: "b"},
		},
	}

	if found := results.FindByID("b"); found == nil || found.ID != "b" {
		t.Fatalf("expected to find result b, got %+v", found)
	}
	if found := results.FindByID("missing"); found != nil {
		t.Fatalf("expected nil for missing id, got %+v", found)
	}
}
