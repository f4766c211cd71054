package extract

import (
	"testing"

	"github.com/leadscout/leadscout/internal/exa"
	"github.com/leadscout/leadscout/internal/profile"
)

func TestExtractTitleAtCompany(t *testing.T) {
	result := &exa.Result{
		ID:    "r1",
		URL:   "https://linkedin.com/in/chrisbeaumont",
		Title: "Chris Beaumont - Data Science @ OpenAI | LinkedIn",
	}

	p := Extract(result, "")

	if p.Name != "Chris Beaumont" {
		t.Fatalf("unexpected name: %q", p.Name)
	}
	if p.Title != "Data Science" {
		t.Fatalf("unexpected title: %q", p.Title)
	}
	if p.Company != "OpenAI" {
		t.Fatalf("unexpected company: %q", p.Company)
	}
}

func TestExtractCompanyOnlyPageTitle(t *testing.T) {
	result := &exa.Result{
		ID:    "r2",
		URL:   "https://linkedin.com/in/janedoe",
		Title: "Jane Doe - Acme | LinkedIn",
	}

	p := Extract(result, "")

	if p.Name != "Jane Doe" {
		t.Fatalf("unexpected name: %q", p.Name)
	}
	if p.Company != "Acme" {
		t.Fatalf("unexpected company: %q", p.Company)
	}
	if p.Title != profile.NotSpecified {
		t.Fatalf("expected title sentinel, got %q", p.Title)
	}
}

func TestExtractLongPhraseAfterDashIsTitle(t *testing.T) {
	result := &exa.Result{
		ID:    "r3",
		URL:   "https://linkedin.com/in/bob",
		Title: "Bob Smith - Senior Software Engineer | LinkedIn",
	}

	p := Extract(result, "")

	if p.Title != "Senior Software Engineer" {
		t.Fatalf("unexpected title: %q", p.Title)
	}
	if p.Company != profile.NotSpecified {
		t.Fatalf("expected company sentinel, got %q", p.Company)
	}
}

func TestExtractEmptyResultKeepsSentinels(t *testing.T) {
	result := &exa.Result{URL: "https://linkedin.com/in/ghost"}

	p := Extract(result, "")

	if p.Name != profile.UnknownName {
		t.Fatalf("expected name sentinel, got %q", p.Name)
	}
	if p.Title != profile.NotSpecified {
		t.Fatalf("expected title sentinel, got %q", p.Title)
	}
	if p.Company != profile.NotSpecified {
		t.Fatalf("expected company sentinel, got %q", p.Company)
	}
	if p.Summary != DefaultSummary {
		t.Fatalf("expected summary placeholder, got %q", p.Summary)
	}
	if p.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestExtractTitleBeforeTargetCompany(t *testing.T) {
	result := &exa.Result{
		ID:    "r4",
		URL:   "https://linkedin.com/in/alice",
		Title: "Alice Wong | LinkedIn",
		Text:  "Alice Wong is a Machine Learning Engineer at Anthropic working on evaluation tooling and large scale training pipelines.",
	}

	p := Extract(result, "Anthropic")

	if p.Company != "Anthropic" {
		t.Fatalf("unexpected company: %q", p.Company)
	}
	if p.Title != "Machine Learning Engineer" {
		t.Fatalf("unexpected title: %q", p.Title)
	}
}

func TestExtractExperienceLineFromSnippet(t *testing.T) {
	result := &exa.Result{
		ID:    "r5",
		URL:   "https://linkedin.com/in/sam",
		Title: "Sam Patel | LinkedIn",
		Text:  "View the profile of Sam Patel on the network of professionals. Experience: Product Manager · Acme Corp",
	}

	p := Extract(result, "")

	if p.Title != "Product Manager" {
		t.Fatalf("unexpected title: %q", p.Title)
	}
}

func TestValidTitleCandidateKeepsTwoWordTitles(t *testing.T) {
	tests := []struct {
		candidate string
		want      bool
	}{
		{"Product Manager", true},
		{"Data Scientist", true},
		{"Software Engineer", true},
		{"Sam Patel", false},
		{"Jane Doe", false},
		{"5 years", false},
	}

	for _, tt := range tests {
		if got := validTitleCandidate(tt.candidate); got != tt.want {
			t.Fatalf("validTitleCandidate(%q) = %v, want %v", tt.candidate, got, tt.want)
		}
	}
}

func TestExtractCurrentLineWithTwoWordTitle(t *testing.T) {
	result := &exa.Result{
		ID:         "r8",
		URL:        "https://linkedin.com/in/nina",
		Title:      "Nina Park | LinkedIn",
		Highlights: []string{"View Nina Park's professional profile on the network. Current: Data Scientist · Globex"},
	}

	p := Extract(result, "")

	if p.Title != "Data Scientist" {
		t.Fatalf("unexpected title: %q", p.Title)
	}
}

func TestExtractRejectsDurationAsTitle(t *testing.T) {
	result := &exa.Result{
		ID:    "r6",
		URL:   "https://linkedin.com/in/kim",
		Title: "Kim Lee | LinkedIn",
		Text:  "A seasoned professional with a long track record. Experience: 5 years in consulting and operations work",
	}

	p := Extract(result, "")

	if p.Title != profile.NotSpecified {
		t.Fatalf("expected title sentinel, got %q", p.Title)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	result := &exa.Result{
		ID:         "r7",
		URL:        "https://linkedin.com/in/pat",
		Title:      "Pat Jones - Engineering Manager @ Globex | LinkedIn",
		Text:       "Pat Jones leads a team of fifteen engineers building payment infrastructure at Globex.",
		Highlights: []string{"Current: Engineering Manager at Globex"},
	}

	first := Extract(result, "Globex")
	second := Extract(result, "Globex")

	if *first != *second {
		t.Fatalf("extraction is not deterministic: %+v vs %+v", first, second)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"markdown link", "[Acme](https://acme.example)", "Acme"},
		{"html tags", "Senior <b>Engineer</b>", "Senior Engineer"},
		{"employment annotation", "Engineer (Full-time)", "Engineer"},
		{"leading bullets", "· • - Data Scientist", "Data Scientist"},
		{"edge tokens", "at Acme at", "Acme"},
		{"whitespace", "  Staff   Engineer  ", "Staff Engineer"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Fatalf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSummarizeSkipsBoilerplate(t *testing.T) {
	result := &exa.Result{
		Title: "Jo March | LinkedIn",
		Highlights: []string{
			"Sign in to view Jo's full profile. Jo March is a growth marketer who scaled two startups from seed to series B.",
		},
	}

	p := Extract(result, "")

	if p.Summary != "Jo March is a growth marketer who scaled two startups from seed to series B" {
		t.Fatalf("unexpected summary: %q", p.Summary)
	}
}

func TestSummarizeFallsBackToHeadline(t *testing.T) {
	result := &exa.Result{
		Title: "Jo March - Growth Marketing Leader | LinkedIn",
	}

	p := Extract(result, "")

	if p.Summary != "Growth Marketing Leader" {
		t.Fatalf("unexpected summary: %q", p.Summary)
	}
}
