package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/leadscout/leadscout/internal/match"
	"github.com/leadscout/leadscout/internal/profile"
)

type companyFilter struct {
	disabled bool
	reason   string
	target   string
}

// NewCompanyMatch creates a filter that keeps profiles whose company matches
// the target derived from the query.
func NewCompanyMatch() Filter {
	return &companyFilter{}
}

func (f *companyFilter) Name() string { return "company_match" }

func (f *companyFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *companyFilter) IsEnabled() bool { return !f.disabled }

func (f *companyFilter) Validate(cfg *Config) error {
	f.target = ""
	if cfg != nil {
		f.target = strings.TrimSpace(cfg.Company)
	}
	if f.target == "" {
		f.Disable("no target company derived from query")
	}
	return nil
}

func (f *companyFilter) Apply(_ context.Context, deps Deps, p *profile.Profiles) (*profile.Profiles, Step, error) {
	initial := p.Len()

	kept := make([]*profile.Profile, 0, initial)
	var excluded []string
	for _, item := range p.Items {
		if match.CompanyMatches(item.Company, f.target) {
			kept = append(kept, item)
			continue
		}
		excluded = append(excluded, item.LinkedInURL)
	}

	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding profiles by company",
			zap.String("target_company", f.target),
			zap.Strings("excluded_profiles", excluded),
			zap.Int("profiles_left", len(kept)),
		)
	}

	next := &profile.Profiles{Items: kept}
	return next, Step{Initial: initial, Dropped: len(excluded), Left: next.Len()}, nil
}

func (f *companyFilter) Status() Status {
	details := map[string]string{}
	if f.target != "" {
		details["target_company"] = f.target
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
