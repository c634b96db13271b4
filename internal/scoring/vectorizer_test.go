package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizeSmoothedIDF(t *testing.T) {
	matrix, err := Vectorize("python django", []string{"python java", "python"})
	require.NoError(t, err)

	assert.Equal(t, []string{"django", "java", "python"}, matrix.Vocabulary)
	require.Len(t, matrix.Vectors, 3)

	// N = 3: python in all documents, django and java in one each.
	assert.InDelta(t, 1.0, matrix.IDF["python"], 1e-12)
	assert.InDelta(t, math.Log(2)+1, matrix.IDF["django"], 1e-12)
	assert.InDelta(t, math.Log(2)+1, matrix.IDF["java"], 1e-12)

	for i, vec := range matrix.Vectors {
		var sum float64
		for _, w := range vec {
			sum += w * w
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "vector %d is not unit length", i)
	}

	assert.InDelta(t, 1.0, matrix.Vectors[2]["python"], 1e-12)
	assert.NotContains(t, matrix.Vectors[2], "django")
}

func TestVectorizeCountsRepeats(t *testing.T) {
	matrix, err := Vectorize("golang golang rust", []string{"rust"})
	require.NoError(t, err)

	ref := matrix.Vectors[0]
	// golang: tf 2, idf ln(3/2)+1; rust: tf 1, idf 1
	golangWeight := 2 * (math.Log(1.5) + 1)
	norm := math.Sqrt(golangWeight*golangWeight + 1)
	assert.InDelta(t, golangWeight/norm, ref["golang"], 1e-12)
	assert.InDelta(t, 1/norm, ref["rust"], 1e-12)
}

func TestVectorizeToleratesEmptyCandidate(t *testing.T) {
	matrix, err := Vectorize("kotlin", []string{"", "the"})
	require.NoError(t, err)

	assert.Empty(t, matrix.Vectors[1])
	assert.Empty(t, matrix.Vectors[2])
	assert.Equal(t, []float64{0, 0}, Similarities(matrix.Vectors[0], matrix.Vectors[1:]))
}

func TestVectorizeDropsStopWords(t *testing.T) {
	matrix, err := Vectorize("go golang", []string{"go rust"})
	require.NoError(t, err)

	assert.Equal(t, []string{"golang", "rust"}, matrix.Vocabulary)
	assert.NotContains(t, matrix.Vectors[0], "go")
	assert.InDelta(t, 1.0, matrix.Vectors[0]["golang"], 1e-12)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		score  float64
		expect float64
	}{
		{score: 0, expect: 0},
		{score: 1, expect: 100},
		{score: 0.393676959, expect: 39.37},
		{score: 0.12345, expect: 12.35},
		{score: 0.5, expect: 50},
		{score: 0.99999999999999, expect: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, Percent(tt.score), "score %v", tt.score)
	}
}

func TestRankPreconditions(t *testing.T) {
	_, err := Rank(nil, nil, DefaultThreshold)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = Rank([]string{"a"}, []float64{0.1, 0.2}, DefaultThreshold)
	assert.Error(t, err)

	_, err = Rank([]string{"a"}, []float64{0.1}, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestClassifyIsInclusive(t *testing.T) {
	assert.Equal(t, LabelShortlisted, Classify(40, 40))
	assert.Equal(t, LabelRejected, Classify(39.99, 40))
	assert.Equal(t, LabelShortlisted, Classify(100, 100))
}
