package scoring

import (
	"fmt"
	"math"
	"sort"
)

// Percent converts a similarity score to a percentage rounded to two decimals,
// half away from zero.
func Percent(score float64) float64 {
	return math.Round(score*100*100) / 100
}

// ValidateThreshold rejects NaN and values outside [0, 100].
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 100 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}

	return nil
}

// Classify labels a percentage against the threshold. The threshold is inclusive.
func Classify(percent, threshold float64) string {
	if percent >= threshold {
		return LabelShortlisted
	}

	return LabelRejected
}

// Rank orders candidates by descending percentage, keeping input order among
// ties, and assigns dense 1-based ranks and labels.
func Rank(names []string, scores []float64, threshold float64) (*Ranking, error) {
	if len(names) == 0 {
		return nil, ErrNoCandidates
	}
	if len(names) != len(scores) {
		return nil, fmt.Errorf("got %d names for %d scores", len(names), len(scores))
	}
	if err := ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	entries := make([]ScoreEntry, len(names))
	for i, name := range names {
		entries[i] = ScoreEntry{
			Name:    name,
			Score:   scores[i],
			Percent: Percent(scores[i]),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percent > entries[j].Percent
	})

	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].Label = Classify(entries[i].Percent, threshold)
	}

	return &Ranking{
		Entries:   entries,
		Best:      entries[0],
		Threshold: threshold,
	}, nil
}
