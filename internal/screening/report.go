package screening

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/hh-screener/internal/candidates"
	"github.com/spigell/hh-screener/internal/scoring"
)

// Report returns one flat row per ranked candidate, ready for JSON output.
func (r *Result) Report() ([]map[string]any, error) {
	rows := make([]map[string]any, 0, r.Ranking.Len())
	for _, entry := range r.Ranking.Entries {
		var row map[string]any
		if err := mapstructure.Decode(entry, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReportByStatus groups report rows by label.
func (r *Result) ReportByStatus() (map[string][]map[string]any, error) {
	rows, err := r.Report()
	if err != nil {
		return nil, err
	}

	report := map[string][]map[string]any{
		scoring.LabelShortlisted: {},
		scoring.LabelRejected:    {},
	}
	for _, row := range rows {
		label, _ := row["label"].(string)
		report[label] = append(report[label], row)
	}

	if len(r.Skipped) > 0 {
		for _, skipped := range r.Skipped {
			report["Skipped"] = append(report["Skipped"], map[string]any{
				"name":  skipped.Name,
				"error": skipped.Err.Error(),
			})
		}
	}

	return report, nil
}

type dump struct {
	RunID     string               `json:"run_id"`
	Reference string               `json:"reference"`
	Threshold float64              `json:"threshold"`
	Best      scoring.ScoreEntry   `json:"best"`
	Entries   []scoring.ScoreEntry `json:"entries"`
	Skipped   []string             `json:"skipped,omitempty"`
}

func (r *Result) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "screening_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	out := dump{
		RunID:     r.RunID,
		Reference: r.Reference,
		Threshold: r.Ranking.Threshold,
		Best:      r.Ranking.Best,
		Entries:   r.Ranking.Entries,
	}
	for _, skipped := range r.Skipped {
		out.Skipped = append(out.Skipped, skipped.Name)
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// AppendToExcludeFile records every ranked candidate in the exclude file so
// later runs skip them.
func (r *Result) AppendToExcludeFile(path string) error {
	excluded, err := candidates.GetExcludedFromFile(path)
	if err != nil {
		return err
	}

	excluded.Append(candidates.FromRanking(r.Ranking))

	return excluded.ToFile(path)
}
