// Package scoring ranks candidate documents against a reference document by
// TF-IDF cosine similarity.
//
// Every call builds its own vocabulary and vectors, so calls share no state and
// are safe to run concurrently. A call either returns a complete Ranking or an
// error, never both.
package scoring

import "fmt"

// Score ranks the candidate texts against the reference text. names and texts
// are parallel slices.
func Score(reference string, texts, names []string, threshold float64) (*Ranking, error) {
	if len(texts) == 0 {
		return nil, ErrNoCandidates
	}
	if len(texts) != len(names) {
		return nil, fmt.Errorf("got %d candidate names for %d texts", len(names), len(texts))
	}
	if err := ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	matrix, err := Vectorize(reference, texts)
	if err != nil {
		return nil, err
	}

	scores := Similarities(matrix.Vectors[0], matrix.Vectors[1:])

	return Rank(names, scores, threshold)
}

// ScoreDocuments is Score for named documents.
func ScoreDocuments(reference Document, candidates []Document, threshold float64) (*Ranking, error) {
	texts := make([]string, len(candidates))
	names := make([]string, len(candidates))
	for i, doc := range candidates {
		texts[i] = doc.Text
		names[i] = doc.Name
	}

	return Score(reference.Text, texts, names, threshold)
}
