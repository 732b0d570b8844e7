package textproc

import "math"

// corpusSize is fixed: the CV and the job description form a two-document
// corpus. The smoothed IDF below favors terms exclusive to one side but
// never zeroes out shared terms.
const corpusSize = 2

// Vectorize builds TF-IDF weight maps for the two token sequences. Term
// frequency is the raw count normalized by the document's maximum count, so
// the most frequent term has TF 1.0; an empty document yields an empty map.
// IDF is ln((N+1)/(df+1))+1 over the two-document corpus, which is always
// positive.
func Vectorize(cvTokens, jobTokens []string) (cv, job map[string]float64) {
	df := make(map[string]int)
	for term := range counts(cvTokens) {
		df[term]++
	}
	for term := range counts(jobTokens) {
		df[term]++
	}

	idf := func(term string) float64 {
		return math.Log(float64(corpusSize+1)/float64(df[term]+1)) + 1.0
	}

	weigh := func(tokens []string) map[string]float64 {
		tf := counts(tokens)
		maxCount := 0
		for _, c := range tf {
			if c > maxCount {
				maxCount = c
			}
		}
		weights := make(map[string]float64, len(tf))
		for term, c := range tf {
			weights[term] = float64(c) / float64(maxCount) * idf(term)
		}
		return weights
	}

	return weigh(cvTokens), weigh(jobTokens)
}

// Cosine returns the cosine similarity of two sparse weight maps, in [0, 1].
// An empty vector or a zero norm yields 0 rather than NaN.
func Cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	dot := 0.0
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}

	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 0.0
	}
	return dot / (na * nb)
}

func norm(v map[string]float64) float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func counts(tokens []string) map[string]int {
	c := make(map[string]int, len(tokens))
	for _, t := range tokens {
		c[t]++
	}
	return c
}
