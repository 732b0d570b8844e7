package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSkills = []string{
	"python", "sql", "aws", "docker", "kubernetes", "go", "react", "spark",
}

var testCerts = []string{"aws", "pmp", "ielts"}

func newTestExtractor() *Extractor {
	return NewExtractor(testSkills, testCerts)
}

func TestExtract_EmptyText(t *testing.T) {
	jr := newTestExtractor().Extract("")

	assert.Empty(t, jr.RequiredSkills)
	assert.Empty(t, jr.PreferredSkills)
	assert.Empty(t, jr.Certifications)
	assert.Empty(t, jr.Languages)
	assert.Zero(t, jr.MinYears)
}

func TestExtract_RequiredZone(t *testing.T) {
	jr := newTestExtractor().Extract("Required: Python, SQL, AWS. Minimum 3 years.")

	assert.Equal(t, []string{"aws", "python", "sql"}, jr.Required())
	assert.Empty(t, jr.Preferred())
	assert.Equal(t, 3, jr.MinYears)
}

func TestExtract_PreferredZone(t *testing.T) {
	jr := newTestExtractor().Extract("Nice to have: Docker, Kubernetes")

	assert.Empty(t, jr.Required())
	assert.Equal(t, []string{"docker", "kubernetes"}, jr.Preferred())
}

func TestExtract_RequiredWinsOverPreferred(t *testing.T) {
	jr := newTestExtractor().Extract("Required: Python. Preferred: Python, Docker.")

	assert.Contains(t, jr.RequiredSkills, "python")
	assert.NotContains(t, jr.PreferredSkills, "python")
	assert.Contains(t, jr.PreferredSkills, "docker")
}

func TestExtract_SetsNeverOverlap(t *testing.T) {
	jr := newTestExtractor().Extract(
		"Zorunlu: Python, SQL\nTercihen: SQL, Docker, React\nMust have: Go")

	for skill := range jr.RequiredSkills {
		assert.NotContains(t, jr.PreferredSkills, skill)
	}
	assert.Contains(t, jr.RequiredSkills, "python")
	assert.Contains(t, jr.RequiredSkills, "sql")
	assert.Contains(t, jr.RequiredSkills, "go")
	assert.Contains(t, jr.PreferredSkills, "docker")
	assert.Contains(t, jr.PreferredSkills, "react")
}

func TestExtract_SkillOutsideAnyZoneIsPreferred(t *testing.T) {
	jr := newTestExtractor().Extract("We use Spark for batch processing.")

	assert.Empty(t, jr.Required())
	assert.Equal(t, []string{"spark"}, jr.Preferred())
}

func TestExtract_TurkishMarkers(t *testing.T) {
	jr := newTestExtractor().Extract("Zorunlu: Python, SQL. Artı: Docker. En az 5 yıl.")

	assert.Equal(t, []string{"python", "sql"}, jr.Required())
	assert.Contains(t, jr.PreferredSkills, "docker")
	assert.Equal(t, 5, jr.MinYears)
}

func TestExtract_AdjacentMarkers(t *testing.T) {
	// A marker immediately followed by another produces an empty zone; the
	// second marker's zone owns the content.
	jr := newTestExtractor().Extract("Required: preferred: Docker")

	assert.Empty(t, jr.Required())
	assert.Contains(t, jr.PreferredSkills, "docker")
}

func TestExtract_ZoneEndsAtNextMarker(t *testing.T) {
	jr := newTestExtractor().Extract("Required: Python nice to have: Docker")

	assert.Equal(t, []string{"python"}, jr.Required())
	assert.Equal(t, []string{"docker"}, jr.Preferred())
}

func TestExtract_Languages(t *testing.T) {
	jr := newTestExtractor().Extract("İngilizce ve Türkçe iletişim gerekli")

	assert.True(t, jr.RequestsLanguage("english"))
	assert.True(t, jr.RequestsLanguage("turkish"))

	jr = newTestExtractor().Extract("Fluent English required")
	assert.True(t, jr.RequestsLanguage("english"))
	assert.False(t, jr.RequestsLanguage("turkish"))
}

func TestExtract_Certifications(t *testing.T) {
	jr := newTestExtractor().Extract("AWS certification and PMP are valued")

	assert.Equal(t, []string{"aws", "pmp"}, jr.CertificationList())
}

func TestExtract_MinYearsVariants(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"minimum 3 years of experience", 3},
		{"min 5 yrs", 5},
		{"en az 7 yıl deneyim", 7},
		{"10+ years in backend development", 10},
		{"no experience figure here", 0},
	}
	for _, tc := range cases {
		jr := newTestExtractor().Extract(tc.text)
		assert.Equal(t, tc.want, jr.MinYears, "text: %q", tc.text)
	}
}

func TestExtract_FirstYearsFigureWins(t *testing.T) {
	jr := newTestExtractor().Extract("Minimum 3 years required, ideally 8 years")

	assert.Equal(t, 3, jr.MinYears)
}

func TestExtract_EdgePunctuationStripped(t *testing.T) {
	jr := newTestExtractor().Extract("Required: (Python), 'SQL'!")

	require.Contains(t, jr.RequiredSkills, "python")
	assert.Contains(t, jr.RequiredSkills, "sql")
}
