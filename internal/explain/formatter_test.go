package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleContext() Context {
	return Context{
		Score:              72.5,
		BaseScore:          67.5,
		Adjustment:         5,
		CVLang:             "Turkish",
		JobLang:            "Turkish",
		Years:              5,
		MinYears:           3,
		MatchedRequired:    []string{"python", "sql"},
		MissingRequired:    []string{"aws"},
		Certifications:     []string{"aws"},
		RequestedLanguages: []string{"english"},
	}
}

func TestBuild_TurkishNarrative(t *testing.T) {
	f := NewFormatter()

	text := f.BuildTR(sampleContext(), 68, "local lexical fallback -5")

	assert.Contains(t, text, "Toplam skor 72,5.")
	assert.Contains(t, text, "Temel benzerlik 67,5.")
	assert.Contains(t, text, "Kural etkisi +5.")
	assert.Contains(t, text, "CV dili Turkish.")
	assert.Contains(t, text, "İlan en az 3 yıl ister ve şart sağlanır.")
	assert.Contains(t, text, "Zorunlu eşleşmeler: python ve sql.")
	assert.Contains(t, text, "Eksik zorunlu beceriler: aws.")
	assert.Contains(t, text, "Güven 68/100")
}

func TestBuild_EnglishNarrative(t *testing.T) {
	f := NewFormatter()

	text := f.BuildEN(sampleContext(), 68, "local lexical fallback -5")

	assert.Contains(t, text, "Overall score 72.5.")
	assert.Contains(t, text, "Rule impact +5.")
	assert.Contains(t, text, "Job requires at least 3 years and the condition is met.")
	assert.Contains(t, text, "Matched required skills: python and sql.")
	assert.Contains(t, text, "Missing required skills: aws.")
	assert.Contains(t, text, "Confidence 68/100 (local lexical fallback -5).")
}

func TestBuild_NoMinimumYearsClause(t *testing.T) {
	f := NewFormatter()
	ctx := sampleContext()
	ctx.MinYears = 0

	text := f.BuildEN(ctx, 70, "r")

	assert.Contains(t, text, "Experience 5 years.")
	assert.NotContains(t, text, "requires at least")
}

func TestBuild_MinimumNotMet(t *testing.T) {
	f := NewFormatter()
	ctx := sampleContext()
	ctx.Years = 1

	text := f.BuildEN(ctx, 70, "r")
	assert.Contains(t, text, "the condition is not met")
}

func TestBuild_EmptySetsOmitClauses(t *testing.T) {
	f := NewFormatter()
	ctx := sampleContext()
	ctx.MatchedRequired = nil
	ctx.MissingRequired = nil
	ctx.Certifications = nil
	ctx.RequestedLanguages = nil

	text := f.BuildEN(ctx, 70, "r")

	assert.NotContains(t, text, "Matched required")
	assert.NotContains(t, text, "Missing required")
	assert.NotContains(t, text, "Certifications")
	assert.NotContains(t, text, "Requested languages")
}

func TestBuild_NegativeAdjustmentUnsigned(t *testing.T) {
	f := NewFormatter()
	ctx := sampleContext()
	ctx.Adjustment = -7

	text := f.BuildEN(ctx, 70, "r")
	assert.Contains(t, text, "Rule impact -7.")
}

func TestBuild_ListJoining(t *testing.T) {
	f := NewFormatter()
	ctx := sampleContext()
	ctx.MatchedRequired = []string{"python", "sql", "docker"}
	ctx.MissingRequired = nil

	assert.Contains(t, f.BuildEN(ctx, 70, "r"), "python, sql and docker")
	assert.Contains(t, f.BuildTR(ctx, 70, "r"), "python, sql ve docker")

	ctx.MatchedRequired = []string{"python"}
	assert.Contains(t, f.BuildEN(ctx, 70, "r"), "Matched required skills: python.")
}

func TestVerdict_Bands(t *testing.T) {
	f := NewFormatter()

	cases := []struct {
		score   float64
		missing bool
		want    string
	}{
		{95, false, EN.Phrases.Bands.Excellent},
		{95, true, EN.Phrases.Bands.ExcellentMiss},
		{90, false, EN.Phrases.Bands.Excellent},
		{80, false, EN.Phrases.Bands.Strong},
		{75, true, EN.Phrases.Bands.StrongMiss},
		{60, false, EN.Phrases.Bands.Moderate},
		{55, true, EN.Phrases.Bands.ModerateMiss},
		{45, false, EN.Phrases.Bands.Limited},
		{40, true, EN.Phrases.Bands.LimitedMiss},
		{39.9, false, EN.Phrases.Bands.Low},
		{0, true, EN.Phrases.Bands.LowMiss},
	}
	for _, tc := range cases {
		ctx := Context{Score: tc.score}
		if tc.missing {
			ctx.MissingRequired = []string{"aws"}
		}
		assert.Contains(t, f.BuildEN(ctx, 50, "r"), tc.want,
			"score=%v missing=%v", tc.score, tc.missing)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	f := NewFormatter()
	ctx := sampleContext()

	assert.Equal(t, f.BuildTR(ctx, 68, "r"), f.BuildTR(ctx, 68, "r"))
	assert.Equal(t, f.BuildEN(ctx, 68, "r"), f.BuildEN(ctx, 68, "r"))
}
