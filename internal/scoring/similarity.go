package scoring

import "sort"

// Dot returns the dot product of two sparse vectors. For unit vectors it is
// their cosine similarity.
func Dot(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}

	terms := make([]string, 0, len(a))
	for term := range a {
		if _, ok := b[term]; ok {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	var sum float64
	for _, term := range terms {
		sum += a[term] * b[term]
	}

	return sum
}

// Similarities scores every candidate vector against the reference, clamped to [0, 1].
func Similarities(reference Vector, candidates []Vector) []float64 {
	scores := make([]float64, len(candidates))
	for i, cand := range candidates {
		s := Dot(reference, cand)
		switch {
		case s < 0:
			s = 0
		case s > 1:
			s = 1
		}
		scores[i] = s
	}

	return scores
}
