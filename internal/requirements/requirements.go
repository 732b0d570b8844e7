// Package requirements parses a job description into structured
// requirements: required and preferred skills, certifications, requested
// languages and a minimum-years figure. Extraction is lexicon matching plus
// marker-delimited zone capture; it is deliberately heuristic.
package requirements

import "sort"

// JobRequirements is the structured result of extraction. All sets hold
// lowercase terms and are deduplicated; RequiredSkills and PreferredSkills
// never share an entry. Immutable once built.
type JobRequirements struct {
	RequiredSkills  map[string]struct{}
	PreferredSkills map[string]struct{}
	Certifications  map[string]struct{}
	Languages       map[string]struct{}
	MinYears        int
}

// Required returns the required skills in sorted order.
func (jr *JobRequirements) Required() []string { return sorted(jr.RequiredSkills) }

// Preferred returns the preferred skills in sorted order.
func (jr *JobRequirements) Preferred() []string { return sorted(jr.PreferredSkills) }

// CertificationList returns the certifications in sorted order.
func (jr *JobRequirements) CertificationList() []string { return sorted(jr.Certifications) }

// LanguageList returns the requested languages in sorted order.
func (jr *JobRequirements) LanguageList() []string { return sorted(jr.Languages) }

// RequestsLanguage reports whether the given language ("english" or
// "turkish") was requested.
func (jr *JobRequirements) RequestsLanguage(lang string) bool {
	_, ok := jr.Languages[lang]
	return ok
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
