package textproc

import "sort"

// TopOverlap returns up to k terms present in both weight maps, ordered by
// descending product of their weights (a proxy for each term's contribution
// to the similarity). Ties break alphabetically so the output is
// deterministic. The result is used for explainability only, never for
// scoring.
func TopOverlap(a, b map[string]float64, k int) []string {
	if k <= 0 {
		return nil
	}

	type scored struct {
		term   string
		weight float64
	}

	var shared []scored
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			shared = append(shared, scored{term: term, weight: wa * wb})
		}
	}

	sort.Slice(shared, func(i, j int) bool {
		if shared[i].weight != shared[j].weight {
			return shared[i].weight > shared[j].weight
		}
		return shared[i].term < shared[j].term
	})

	if k > len(shared) {
		k = len(shared)
	}
	terms := make([]string, 0, k)
	for _, s := range shared[:k] {
		terms = append(terms, s.term)
	}
	return terms
}
