package candidates

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/spigell/hh-screener/internal/scoring"
)

// ExcludedCandidates is the content of an exclude file: resumes that were
// already screened and should not be ranked again.
type ExcludedCandidates struct {
	Items []*ExcludedCandidate
}

type ExcludedCandidate struct {
	Name       string
	Percent    float64
	Label      string
	ExcludedAt time.Time
}

// FromRanking converts every ranked entry into an exclude record.
func FromRanking(ranking *scoring.Ranking) *ExcludedCandidates {
	excluded := &ExcludedCandidates{}
	for _, entry := range ranking.Entries {
		excluded.Items = append(excluded.Items, &ExcludedCandidate{
			Name:       entry.Name,
			Percent:    entry.Percent,
			Label:      entry.Label,
			ExcludedAt: time.Now().UTC(),
		})
	}

	return excluded
}

// GetExcludedFromFile reads an exclude file. A missing or empty file yields an empty list.
func GetExcludedFromFile(path string) (*ExcludedCandidates, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ExcludedCandidates{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedCandidates{}, nil
	}

	var excluded ExcludedCandidates
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}

	return &excluded, nil
}

func (e *ExcludedCandidates) Append(s *ExcludedCandidates) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedCandidates) Names() []string {
	names := make([]string, 0, len(e.Items))
	for _, candidate := range e.Items {
		names = append(names, candidate.Name)
	}

	return names
}

func (e *ExcludedCandidates) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")

	return enc.Encode(e)
}
