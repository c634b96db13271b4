package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/spigell/hh-screener/internal/textnorm"
)

// Matrix is the document-term weight matrix of one corpus.
// Vectors[0] belongs to the reference document.
type Matrix struct {
	Vocabulary []string
	IDF        map[string]float64
	Vectors    []Vector
}

// Vectorize builds smoothed TF-IDF vectors for the corpus, reference first.
// Every non-empty vector has unit Euclidean norm.
func Vectorize(reference string, candidates []string) (*Matrix, error) {
	corpus := make([][]string, 0, len(candidates)+1)
	corpus = append(corpus, textnorm.Terms(reference))
	for _, text := range candidates {
		corpus = append(corpus, textnorm.Terms(text))
	}

	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	for i, terms := range corpus {
		counts[i] = make(map[string]int, len(terms))
		for _, term := range terms {
			if counts[i][term] == 0 {
				df[term]++
			}
			counts[i][term]++
		}
	}

	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if len(counts[0]) == 0 {
		return nil, fmt.Errorf("reference document: %w", ErrEmptyVocabulary)
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	n := float64(len(corpus))
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log((1+n)/(1+float64(freq))) + 1
	}

	vectors := make([]Vector, len(corpus))
	for i, tf := range counts {
		vectors[i] = weigh(tf, idf)
	}

	return &Matrix{
		Vocabulary: vocabulary,
		IDF:        idf,
		Vectors:    vectors,
	}, nil
}

func weigh(tf map[string]int, idf map[string]float64) Vector {
	vec := make(Vector, len(tf))
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	// fixed summation order keeps repeated calls bit-identical
	sort.Strings(terms)

	var sum float64
	for _, term := range terms {
		w := float64(tf[term]) * idf[term]
		vec[term] = w
		sum += w * w
	}

	if sum == 0 {
		return vec
	}

	norm := math.Sqrt(sum)
	for term, w := range vec {
		vec[term] = w / norm
	}

	return vec
}
