package textproc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorize_TermFrequencyNormalizedByMax(t *testing.T) {
	cv, _ := Vectorize([]string{"go", "go", "sql"}, []string{"go"})

	// "go" appears twice, "sql" once; TF("sql") is half of TF("go"). The
	// shared term "go" has df=2, the exclusive "sql" df=1, so the ratio of
	// weights is (0.5 * idf(sql)) / (1.0 * idf(go)).
	idfShared := math.Log(3.0/3.0) + 1.0    // 1.0
	idfExclusive := math.Log(3.0/2.0) + 1.0 // > 1.0

	require.Contains(t, cv, "go")
	require.Contains(t, cv, "sql")
	assert.InDelta(t, idfShared, cv["go"], 1e-9)
	assert.InDelta(t, 0.5*idfExclusive, cv["sql"], 1e-9)
}

func TestVectorize_IDFAlwaysPositive(t *testing.T) {
	cv, job := Vectorize([]string{"go", "sql"}, []string{"go", "aws"})

	for term, w := range cv {
		assert.Greater(t, w, 0.0, "cv term %q", term)
	}
	for term, w := range job {
		assert.Greater(t, w, 0.0, "job term %q", term)
	}
}

func TestVectorize_ExclusiveTermsWeighMoreThanShared(t *testing.T) {
	cv, _ := Vectorize([]string{"go", "sql"}, []string{"go"})

	// Equal TF, but "sql" appears in one document and "go" in both.
	assert.Greater(t, cv["sql"], cv["go"])
}

func TestVectorize_EmptyDocument(t *testing.T) {
	cv, job := Vectorize(nil, []string{"go"})

	assert.Empty(t, cv)
	assert.Len(t, job, 1)
}

func TestCosine_IdenticalVectors(t *testing.T) {
	v := map[string]float64{"go": 1.0, "sql": 0.5}

	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_DisjointVectors(t *testing.T) {
	a := map[string]float64{"go": 1.0}
	b := map[string]float64{"sql": 1.0}

	assert.Equal(t, 0.0, Cosine(a, b))
}

func TestCosine_EmptyVector(t *testing.T) {
	v := map[string]float64{"go": 1.0}

	assert.Equal(t, 0.0, Cosine(nil, v))
	assert.Equal(t, 0.0, Cosine(v, map[string]float64{}))
}

func TestCosine_Bounded(t *testing.T) {
	cv, job := Vectorize(
		[]string{"go", "go", "sql", "docker", "linux"},
		[]string{"go", "sql", "aws", "terraform"},
	)

	sim := Cosine(cv, job)
	assert.GreaterOrEqual(t, sim, 0.0)
	assert.LessOrEqual(t, sim, 1.0)
}

func TestTopOverlap_OrderedByContribution(t *testing.T) {
	a := map[string]float64{"go": 2.0, "sql": 1.0, "aws": 3.0, "only": 5.0}
	b := map[string]float64{"go": 2.0, "sql": 1.0, "aws": 0.1}

	// Products: go 4.0, aws 0.3, sql 1.0; "only" is not shared.
	assert.Equal(t, []string{"go", "sql", "aws"}, TopOverlap(a, b, 10))
}

func TestTopOverlap_TiesBreakAlphabetically(t *testing.T) {
	a := map[string]float64{"zeta": 1.0, "alpha": 1.0, "mid": 1.0}
	b := map[string]float64{"zeta": 1.0, "alpha": 1.0, "mid": 1.0}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, TopOverlap(a, b, 3))
}

func TestTopOverlap_RespectsLimit(t *testing.T) {
	a := map[string]float64{"a2": 1.0, "b2": 2.0, "c2": 3.0}
	b := map[string]float64{"a2": 1.0, "b2": 1.0, "c2": 1.0}

	assert.Equal(t, []string{"c2", "b2"}, TopOverlap(a, b, 2))
	assert.Nil(t, TopOverlap(a, b, 0))
	assert.Nil(t, TopOverlap(a, b, -1))
}

func TestTopOverlap_NoSharedTerms(t *testing.T) {
	a := map[string]float64{"go": 1.0}
	b := map[string]float64{"sql": 1.0}

	assert.Empty(t, TopOverlap(a, b, 5))
}
