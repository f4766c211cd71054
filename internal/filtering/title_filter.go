package filtering

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/leadscout/leadscout/internal/match"
	"github.com/leadscout/leadscout/internal/profile"
)

type titleFilter struct {
	disabled   bool
	reason     string
	target     string
	variations []string
	strict     bool
}

// NewTitleMatch creates a filter that keeps profiles whose title matches the
// searched title or one of its variations.
func NewTitleMatch() Filter {
	return &titleFilter{}
}

func (f *titleFilter) Name() string { return "title_match" }

func (f *titleFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *titleFilter) IsEnabled() bool { return !f.disabled }

func (f *titleFilter) Validate(cfg *Config) error {
	f.target = ""
	f.variations = nil
	f.strict = false
	if cfg != nil {
		f.target = strings.TrimSpace(cfg.Title)
		f.variations = append(f.variations, cfg.TitleVariations...)
		f.strict = cfg.Strict
	}
	if f.target == "" {
		f.Disable("no target title derived from query")
	}
	return nil
}

func (f *titleFilter) Apply(_ context.Context, deps Deps, p *profile.Profiles) (*profile.Profiles, Step, error) {
	initial := p.Len()

	kept := make([]*profile.Profile, 0, initial)
	var excluded []string
	for _, item := range p.Items {
		if match.TitleMatches(item.Title, f.target, f.variations, f.strict) {
			kept = append(kept, item)
			continue
		}
		excluded = append(excluded, item.LinkedInURL)
	}

	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding profiles by title",
			zap.String("target_title", f.target),
			zap.Strings("excluded_profiles", excluded),
			zap.Int("profiles_left", len(kept)),
		)
	}

	next := &profile.Profiles{Items: kept}
	return next, Step{Initial: initial, Dropped: len(excluded), Left: next.Len()}, nil
}

func (f *titleFilter) Status() Status {
	details := map[string]string{
		"strict": strconv.FormatBool(f.strict),
	}
	if f.target != "" {
		details["target_title"] = f.target
	}
	if len(f.variations) > 0 {
		details["variations"] = strings.Join(f.variations, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
