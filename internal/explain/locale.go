package explain

import (
	"strconv"
	"strings"
)

// Locale parameterizes the formatter: one phrase table per language instead
// of two parallel formatter implementations, so the Turkish and English
// narratives cannot drift structurally.
type Locale struct {
	Conjunction  string
	FormatNumber func(float64) string
	Phrases      PhraseTable
}

// PhraseTable holds every sentence template of the narrative. Templates use
// fmt verbs; clause templates are rendered only when the corresponding data
// is non-empty.
type PhraseTable struct {
	Overall       string // score, base score, signed adjustment
	Languages     string // cv language, job language
	ExperienceMin string // years, min years, met/not-met clause
	Experience    string // years
	MetClause     string
	NotMetClause  string

	Matched        string // joined list
	Missing        string // joined list
	Certifications string // joined list
	RequestedLangs string // joined list

	Confidence string // confidence value, reason trail
	Verdict    string // verdict label

	Bands VerdictBands
}

// VerdictBands are the qualitative labels per score band, each with a
// variant for when required skills are missing.
type VerdictBands struct {
	Excellent     string
	ExcellentMiss string
	Strong        string
	StrongMiss    string
	Moderate      string
	ModerateMiss  string
	Limited       string
	LimitedMiss   string
	Low           string
	LowMiss       string
}

// joinList joins items into prose with the locale conjunction before the
// last item: "a, b ve c" / "a, b and c".
func (l Locale) joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + l.Conjunction + " " + items[len(items)-1]
}

func formatNumberDot(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNumberComma(v float64) string {
	return strings.ReplaceAll(formatNumberDot(v), ".", ",")
}

// TR is the Turkish locale.
var TR = Locale{
	Conjunction:  "ve",
	FormatNumber: formatNumberComma,
	Phrases: PhraseTable{
		Overall:       "Toplam skor %s. Temel benzerlik %s. Kural etkisi %s.",
		Languages:     "CV dili %s. İlan dili %s.",
		ExperienceMin: "Deneyim %d yıl. İlan en az %d yıl ister %s",
		Experience:    "Deneyim %d yıl.",
		MetClause:     "ve şart sağlanır.",
		NotMetClause:  "ve şart sağlanmaz.",

		Matched:        "Zorunlu eşleşmeler: %s.",
		Missing:        "Eksik zorunlu beceriler: %s.",
		Certifications: "Sertifikalar: %s.",
		RequestedLangs: "İstenen diller: %s.",

		Confidence: "Güven %s/100 (%s).",
		Verdict:    "Değerlendirme: %s.",

		Bands: VerdictBands{
			Excellent:     "mükemmel uyum, şartların tamamı karşılanıyor",
			ExcellentMiss: "çok yüksek ama kritik eksikler var",
			Strong:        "yüksek ve rol şartlarını karşılıyor",
			StrongMiss:    "yüksek ama bazı zorunlular eksik",
			Moderate:      "orta-yüksek, rol için uygun",
			ModerateMiss:  "orta-yüksek, bazı zorunlular eksik",
			Limited:       "orta, ek geliştirme gerekir",
			LimitedMiss:   "orta, zorunlu beceri eksikleri kapatılmalı",
			Low:           "düşük, rol gereksinimleriyle uyum sınırlı",
			LowMiss:       "düşük, zorunlu gereksinimler büyük ölçüde karşılanmıyor",
		},
	},
}

// EN is the English locale.
var EN = Locale{
	Conjunction:  "and",
	FormatNumber: formatNumberDot,
	Phrases: PhraseTable{
		Overall:       "Overall score %s. Base similarity %s. Rule impact %s.",
		Languages:     "CV language %s. Job language %s.",
		ExperienceMin: "Experience %d years. Job requires at least %d years %s",
		Experience:    "Experience %d years.",
		MetClause:     "and the condition is met.",
		NotMetClause:  "and the condition is not met.",

		Matched:        "Matched required skills: %s.",
		Missing:        "Missing required skills: %s.",
		Certifications: "Certifications: %s.",
		RequestedLangs: "Requested languages: %s.",

		Confidence: "Confidence %s/100 (%s).",
		Verdict:    "Assessment: %s.",

		Bands: VerdictBands{
			Excellent:     "excellent match, all requirements covered",
			ExcellentMiss: "very high but with critical gaps",
			Strong:        "high and meets the requirements",
			StrongMiss:    "high but some required skills are missing",
			Moderate:      "upper-mid and suitable for the role",
			ModerateMiss:  "upper-mid with some required gaps",
			Limited:       "mid, needs improvement",
			LimitedMiss:   "mid, required-skill gaps should be closed",
			Low:           "low, limited fit to the role",
			LowMiss:       "low, required skills are largely unmet",
		},
	},
}
