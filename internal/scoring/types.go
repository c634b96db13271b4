package scoring

import (
	"errors"
	"fmt"
)

const (
	// DefaultThreshold is the percentage a candidate needs to be shortlisted.
	DefaultThreshold = 40.0

	LabelShortlisted = "Shortlisted"
	LabelRejected    = "Rejected"
)

var (
	// ErrEmptyVocabulary is returned when the corpus or the reference has no usable terms.
	ErrEmptyVocabulary = errors.New("empty vocabulary: no usable terms after normalization")
	// ErrNoCandidates is returned when no candidate documents are supplied.
	ErrNoCandidates = errors.New("no candidate documents supplied")
	// ErrInvalidThreshold is returned for thresholds outside [0, 100].
	ErrInvalidThreshold = errors.New("threshold must be a percentage between 0 and 100")
)

// Document is a named piece of plain text.
type Document struct {
	Name string `json:"name" mapstructure:"name"`
	Text string `json:"text" mapstructure:"text"`
}

// Vector maps vocabulary terms to TF-IDF weights.
type Vector map[string]float64

// ScoreEntry is a single ranked and classified candidate.
type ScoreEntry struct {
	Name    string  `json:"name" mapstructure:"name"`
	Score   float64 `json:"score" mapstructure:"score"`
	Percent float64 `json:"percent" mapstructure:"percent"`
	Rank    int     `json:"rank" mapstructure:"rank"`
	Label   string  `json:"label" mapstructure:"label"`
}

// Shortlisted reports whether the entry passed the threshold.
func (e ScoreEntry) Shortlisted() bool {
	return e.Label == LabelShortlisted
}

// Ranking is the ordered result of a scoring call.
type Ranking struct {
	Entries   []ScoreEntry `json:"entries"`
	Best      ScoreEntry   `json:"best"`
	Threshold float64      `json:"threshold"`
}

// Len returns the number of ranked candidates.
func (r *Ranking) Len() int {
	return len(r.Entries)
}

// Shortlisted returns the entries labeled Shortlisted, in rank order.
func (r *Ranking) Shortlisted() []ScoreEntry {
	out := make([]ScoreEntry, 0, len(r.Entries))
	for _, entry := range r.Entries {
		if entry.Shortlisted() {
			out = append(out, entry)
		}
	}

	return out
}

// DocumentExtractionError describes a candidate that could not be decoded into text.
type DocumentExtractionError struct {
	Name string
	Err  error
}

func (e *DocumentExtractionError) Error() string {
	return fmt.Sprintf("extracting text from %q: %v", e.Name, e.Err)
}

func (e *DocumentExtractionError) Unwrap() error {
	return e.Err
}
