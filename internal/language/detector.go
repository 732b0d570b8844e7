// Package language provides coarse heuristic language classification for CV
// and job-posting fragments. It distinguishes Turkish from English using
// diacritics and a small hint lexicon; it is best-effort, not a statistical
// classifier, and its output should never be treated as authoritative.
package language

import "regexp"

// Lang identifies the detected language of a text fragment.
type Lang string

const (
	Turkish Lang = "Turkish"
	English Lang = "English"
	Unknown Lang = "Unknown"
)

var (
	turkishDiacritics = regexp.MustCompile(`[çğıöşüÇĞİÖŞÜ]`)
	latinLetters      = regexp.MustCompile(`[A-Za-z]`)
	wordRuns          = regexp.MustCompile(`[a-zA-Z0-9çğıöşü]+`)
	whitespaceOnly    = regexp.MustCompile(`^\s*$`)
)

// Detector classifies text fragments as Turkish or English.
type Detector struct {
	turkishHints map[string]struct{}
	englishHints map[string]struct{}
}

// NewDetector builds a detector over the given hint lexicons. Hint entries
// are expected lowercase.
func NewDetector(turkishHints, englishHints []string) *Detector {
	return &Detector{
		turkishHints: toSet(turkishHints),
		englishHints: toSet(englishHints),
	}
}

// Detect classifies a text fragment. Empty or whitespace-only text is
// Unknown. Turkish diacritics weigh 2, any Latin letter weighs 1, and each
// token found in a hint lexicon adds 1 to that language's counter. Ties go
// to Turkish when diacritics were seen, otherwise English.
func (d *Detector) Detect(text string) Lang {
	if whitespaceOnly.MatchString(text) {
		return Unknown
	}

	hasTurkishChars := turkishDiacritics.MatchString(text)

	turkish, english := 0, 0
	if hasTurkishChars {
		turkish += 2
	}
	if latinLetters.MatchString(text) {
		english++
	}

	for _, token := range wordRuns.FindAllString(Lower(text), -1) {
		if _, ok := d.turkishHints[token]; ok {
			turkish++
		}
		if _, ok := d.englishHints[token]; ok {
			english++
		}
	}

	switch {
	case turkish > english:
		return Turkish
	case english > turkish:
		return English
	case hasTurkishChars:
		return Turkish
	default:
		return English
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
