package requirements

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/baauozar/cvmatch/internal/language"
)

// Marker words opening a required or a preferred zone. A zone extends from
// its marker to the next marker of either kind, or to the end of text.
var (
	requiredMarkers  = []string{"zorunlu", "gerekli", "must have", "required", "mandatory"}
	preferredMarkers = []string{"tercihen", "nice to have", "preferred", "plus", "artı"}
)

var (
	// Alternation over both marker lists, longest first so multi-word
	// markers win over any single-word prefix.
	markerPattern = func() *regexp.Regexp {
		all := append(append([]string{}, requiredMarkers...), preferredMarkers...)
		sortByLengthDesc(all)
		for i, m := range all {
			all[i] = regexp.QuoteMeta(m)
		}
		return regexp.MustCompile("(?i)(" + strings.Join(all, "|") + ")")
	}()

	englishRequested = regexp.MustCompile(`\b(english|required english|ingilizce)\b`)
	turkishRequested = regexp.MustCompile(`\b(türkçe|turkish|turkce)\b`)

	// A number followed by a year-unit word, optionally preceded by a
	// minimum marker. First match wins.
	minYearsPattern = regexp.MustCompile(`\b(?:min(?:imum)?|en\s*az)?\s*(\d{1,2})\s*\+?\s*(?:yıl|yil|year|years|yr|yrs)\b`)

	skillSplitter = regexp.MustCompile(`[,;\r\n]+`)

	// Edge punctuation to strip off split terms. + # . survive so terms
	// like c++, c# and .net keep their identity.
	leadingJunk  = regexp.MustCompile(`^[^\pL\pN_+#.]+`)
	trailingJunk = regexp.MustCompile(`[^\pL\pN_+#.]+$`)
)

// Extractor parses job descriptions against configured skill and
// certification lexicons.
type Extractor struct {
	skills []string
	certs  []string
}

// NewExtractor builds an extractor over the given lexicons. Lexicon entries
// are expected lowercase.
func NewExtractor(skills, certifications []string) *Extractor {
	return &Extractor{skills: skills, certs: certifications}
}

// Extract parses a job description into JobRequirements. It never fails:
// empty or unstructured text yields empty sets and MinYears 0.
func (e *Extractor) Extract(jobText string) *JobRequirements {
	text := language.Lower(jobText)

	jr := &JobRequirements{
		RequiredSkills:  make(map[string]struct{}),
		PreferredSkills: make(map[string]struct{}),
		Certifications:  make(map[string]struct{}),
		Languages:       make(map[string]struct{}),
		MinYears:        extractMinYears(text),
	}

	requiredZones, preferredZones := captureZones(text)

	requiredTerms := splitTerms(requiredZones)
	preferredTerms := splitTerms(preferredZones)

	if englishRequested.MatchString(text) {
		jr.Languages["english"] = struct{}{}
	}
	if turkishRequested.MatchString(text) {
		jr.Languages["turkish"] = struct{}{}
	}

	for _, cert := range e.certs {
		if strings.Contains(text, cert) {
			jr.Certifications[cert] = struct{}{}
		}
	}

	// Classify each lexicon skill. Required context always wins; a term
	// never lands in both sets.
	for _, skill := range e.skills {
		inRequired := requiredTerms[skill] || anyContains(requiredZones, skill)
		inPreferred := !inRequired &&
			(preferredTerms[skill] || strings.Contains(text, skill))

		switch {
		case inRequired:
			jr.RequiredSkills[skill] = struct{}{}
		case inPreferred:
			jr.PreferredSkills[skill] = struct{}{}
		}
	}

	return jr
}

// captureZones scans for marker words and returns the text runs between each
// marker and the next marker of either kind (or end of text), bucketed by
// the kind of the opening marker. Adjacent markers with no intervening
// content produce empty zones, which contribute nothing.
func captureZones(text string) (required, preferred []string) {
	matches := markerPattern.FindAllStringIndex(text, -1)
	for i, m := range matches {
		marker := text[m[0]:m[1]]

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		zone := strings.TrimSpace(strings.TrimLeft(text[m[1]:end], " \t:-"))
		if zone == "" {
			continue
		}

		if isRequiredMarker(marker) {
			required = append(required, zone)
		} else {
			preferred = append(preferred, zone)
		}
	}
	return required, preferred
}

func isRequiredMarker(marker string) bool {
	m := strings.ToLower(marker)
	for _, r := range requiredMarkers {
		if m == r {
			return true
		}
	}
	return false
}

// splitTerms splits zone text on commas, semicolons and newlines into
// candidate skill terms, trimmed and stripped of edge punctuation.
func splitTerms(zones []string) map[string]bool {
	terms := make(map[string]bool)
	for _, zone := range zones {
		for _, raw := range skillSplitter.Split(zone, -1) {
			term := strings.TrimSpace(raw)
			if len([]rune(term)) < 2 {
				continue
			}
			term = leadingJunk.ReplaceAllString(term, "")
			term = trailingJunk.ReplaceAllString(term, "")
			if term != "" {
				terms[term] = true
			}
		}
	}
	return terms
}

func extractMinYears(text string) int {
	m := minYearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil || years < 0 {
		return 0
	}
	return years
}

func anyContains(zones []string, term string) bool {
	for _, z := range zones {
		if strings.Contains(z, term) {
			return true
		}
	}
	return false
}

func sortByLengthDesc(words []string) {
	sort.Slice(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
}
