package dedup

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/leadscout/leadscout/internal/hubspot"
	"github.com/leadscout/leadscout/internal/profile"
)

type stubFinder struct {
	mu       sync.Mutex
	calls    int
	contacts map[string]*hubspot.Contact
	err      error
}

func (s *stubFinder) SearchByProperty(_ context.Context, _, value string) (*hubspot.Contact, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	return s.contacts[value], nil
}

func stubProfiles(urls ...string) []*profile.Profile {
	profiles := make([]*profile.Profile, 0, len(urls))
	for i, url := range urls {
		profiles = append(profiles, &profile.Profile{
			ID:          string(rune('a' + i)),
			LinkedInURL: url,
		})
	}
	return profiles
}

func TestAnnotateMarksKnownContacts(t *testing.T) {
	finder := &stubFinder{
		contacts: map[string]*hubspot.Contact{
			"https://linkedin.com/in/known": {ID: "hs-42"},
		},
	}
	annotator := NewAnnotator(finder, nil)
	annotator.Pause = 0

	profiles := stubProfiles(
		"https://linkedin.com/in/known",
		"https://linkedin.com/in/new",
	)

	got := annotator.Annotate(context.Background(), profiles)

	if len(got) != 2 {
		t.Fatalf("expected 2 profiles back, got %d", len(got))
	}
	if !got[0].InHubSpot || got[0].HubSpotContactID != "hs-42" {
		t.Fatalf("known profile not annotated: %+v", got[0])
	}
	if got[1].InHubSpot || got[1].HubSpotContactID != "" {
		t.Fatalf("new profile wrongly annotated: %+v", got[1])
	}
}

func TestAnnotateDegradesOnLookupError(t *testing.T) {
	finder := &stubFinder{err: errors.New("rate limited")}
	annotator := NewAnnotator(finder, nil)
	annotator.Pause = 0

	profiles := stubProfiles("https://linkedin.com/in/one")
	got := annotator.Annotate(context.Background(), profiles)

	if got[0].InHubSpot {
		t.Fatalf("lookup error must leave the profile marked as new")
	}
}

func TestAnnotatePreservesOrderAcrossGroups(t *testing.T) {
	finder := &stubFinder{}
	annotator := NewAnnotator(finder, nil)
	annotator.GroupSize = 2
	annotator.Pause = 0

	urls := []string{
		"https://linkedin.com/in/p1",
		"https://linkedin.com/in/p2",
		"https://linkedin.com/in/p3",
		"https://linkedin.com/in/p4",
		"https://linkedin.com/in/p5",
	}
	got := annotator.Annotate(context.Background(), stubProfiles(urls...))

	for i, item := range got {
		if item.LinkedInURL != urls[i] {
			t.Fatalf("order changed at %d: got %s", i, item.LinkedInURL)
		}
	}

	finder.mu.Lock()
	defer finder.mu.Unlock()
	if finder.calls != len(urls) {
		t.Fatalf("expected %d lookups, got %d", len(urls), finder.calls)
	}
}

func TestAnnotateStopsOnCanceledContext(t *testing.T) {
	finder := &stubFinder{}
	annotator := NewAnnotator(finder, nil)
	annotator.GroupSize = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profiles := stubProfiles(
		"https://linkedin.com/in/p1",
		"https://linkedin.com/in/p2",
		"https://linkedin.com/in/p3",
	)
	got := annotator.Annotate(ctx, profiles)

	if len(got) != 3 {
		t.Fatalf("expected all profiles back, got %d", len(got))
	}
	for _, item := range got {
		if item.InHubSpot {
			t.Fatalf("canceled context must not mark profiles as present")
		}
	}

	finder.mu.Lock()
	defer finder.mu.Unlock()
	if finder.calls != 1 {
		t.Fatalf("expected the pause to stop after the first group, got %d calls", finder.calls)
	}
}
