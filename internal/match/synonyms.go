package match

import "strings"

// roleSynonyms maps canonical role roots to common alternate phrasings seen
// in LinkedIn headlines.
var roleSynonyms = map[string][]string{
	"director":  {"head", "vp", "vice president", "chief"},
	"engineer":  {"developer", "swe", "sde", "programmer"},
	"scientist": {"researcher", "research"},
	"manager":   {"lead", "head"},
	"founder":   {"co founder", "cofounder", "owner", "ceo"},
	"designer":  {"ux", "ui", "creative"},
	"analyst":   {"analytics", "analysis"},
	"product":   {"pm", "product manager", "product owner"},
	"data":      {"machine learning", "ml", "analytics"},
}

// synonymMatch reports whether the search title shares a canonical root and
// the profile title contains one of that root's alternate phrasings.
func synonymMatch(search, title string) bool {
	for root, alternates := range roleSynonyms {
		if !strings.Contains(search, root) {
			continue
		}
		for _, alternate := range alternates {
			if strings.Contains(title, alternate) {
				return true
			}
		}
	}
	return false
}
