// Package dedup marks profiles that already exist in HubSpot, keyed by the
// LinkedIn URL. Lookup failures degrade per profile and never abort a batch.
package dedup

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leadscout/leadscout/internal/hubspot"
	"github.com/leadscout/leadscout/internal/profile"
	"github.com/leadscout/leadscout/internal/utils"
)

// ContactFinder is the single CRM lookup the annotator needs.
type ContactFinder interface {
	SearchByProperty(ctx context.Context, property, value string) (*hubspot.Contact, error)
}

const (
	defaultGroupSize = 5
	defaultPause     = 300 * time.Millisecond
)

// Annotator checks profiles against the CRM in small concurrent groups with a
// pause between groups, respecting the API's rate limits while bounding
// latency.
type Annotator struct {
	crm    ContactFinder
	logger *zap.Logger

	// GroupSize profiles are looked up concurrently before pausing.
	GroupSize int
	Pause     time.Duration
}

func NewAnnotator(crm ContactFinder, logger *zap.Logger) *Annotator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annotator{
		crm:       crm,
		logger:    logger,
		GroupSize: defaultGroupSize,
		Pause:     defaultPause,
	}
}

// Annotate fills InHubSpot and HubSpotContactID on every profile. The input
// slice is annotated in place and returned in its original order. Lookup
// errors, including context cancellation, leave the affected profiles marked
// as not present.
func (a *Annotator) Annotate(ctx context.Context, profiles []*profile.Profile) []*profile.Profile {
	groupSize := a.GroupSize
	if groupSize <= 0 {
		groupSize = defaultGroupSize
	}

	for start := 0; start < len(profiles); start += groupSize {
		end := min(start+groupSize, len(profiles))

		var group errgroup.Group
		for _, item := range profiles[start:end] {
			group.Go(func() error {
				a.annotateOne(ctx, item)
				return nil
			})
		}
		// Goroutines never return errors; failures degrade per profile.
		_ = group.Wait()

		if end < len(profiles) {
			if err := utils.WaitFor(ctx, a.Pause); err != nil {
				// Context is gone; the remaining profiles keep the
				// zero-value annotation.
				break
			}
		}
	}

	return profiles
}

func (a *Annotator) annotateOne(ctx context.Context, item *profile.Profile) {
	item.InHubSpot = false
	item.HubSpotContactID = ""

	contact, err := a.crm.SearchByProperty(ctx, hubspot.PropertyLinkedInURL, item.LinkedInURL)
	if err != nil {
		a.logger.Warn("hubspot lookup failed, treating profile as new",
			zap.String("linkedin_url", item.LinkedInURL),
			zap.Error(err),
		)
		return
	}

	if contact == nil {
		return
	}

	item.InHubSpot = true
	item.HubSpotContactID = contact.ID
}
