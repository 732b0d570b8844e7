package rules

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(yıl|yil|yr|yrs|year|years)`)
	cefrPattern  = regexp.MustCompile(`\b(c1|c2)\b`)
)

// ExtractYears returns the highest year count mentioned in the text: the
// largest integer directly preceding a year-unit word. Text is expected
// lowercase. Absence yields 0.
func ExtractYears(text string) int {
	years := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && v > years {
			years = v
		}
	}
	return years
}

// MentionsEnglish reports whether the lowercase CV text shows evidence of
// English proficiency. CEFR marks C1/C2 count as evidence for both
// languages.
func MentionsEnglish(cv string) bool {
	return strings.Contains(cv, "english") ||
		strings.Contains(cv, "ielts") ||
		strings.Contains(cv, "toefl") ||
		cefrPattern.MatchString(cv)
}

// MentionsTurkish reports whether the lowercase CV text shows evidence of
// Turkish proficiency.
func MentionsTurkish(cv string) bool {
	return strings.Contains(cv, "türkçe") ||
		strings.Contains(cv, "turkce") ||
		strings.Contains(cv, "ana dil") ||
		cefrPattern.MatchString(cv)
}

// containedIn returns the keys that appear as substrings of the lowercase
// text, preserving the input order.
func containedIn(text string, keys []string) []string {
	var found []string
	for _, k := range keys {
		if strings.Contains(text, k) {
			found = append(found, k)
		}
	}
	return found
}

// difference returns the entries of all that are absent from found.
func difference(all, found []string) []string {
	present := make(map[string]struct{}, len(found))
	for _, f := range found {
		present[f] = struct{}{}
	}
	var missing []string
	for _, a := range all {
		if _, ok := present[a]; !ok {
			missing = append(missing, a)
		}
	}
	return missing
}
