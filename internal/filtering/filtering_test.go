package filtering

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/hh-screener/internal/candidates"
	"github.com/spigell/hh-screener/internal/scoring"
)

func newCandidates(names ...string) *candidates.Candidates {
	docs := make([]scoring.Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, scoring.Document{Name: name, Text: name})
	}
	return candidates.FromDocuments(docs, nil)
}

func TestRunAppliesDefaultChain(t *testing.T) {
	excludeFile := filepath.Join(t.TempDir(), "excluded.json")
	seen := &candidates.ExcludedCandidates{Items: []*candidates.ExcludedCandidate{{Name: "b.pdf"}}}
	if err := seen.ToFile(excludeFile); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	core, observed := observer.New(zapcore.InfoLevel)
	deps := Deps{Logger: zap.New(core)}

	left, err := Run(context.Background(), &Config{ExcludeFile: excludeFile}, deps, Default(),
		newCandidates("a.pdf", "b.pdf", "a.pdf", "c.pdf"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := left.Names()
	if len(names) != 2 || names[0] != "a.pdf" || names[1] != "c.pdf" {
		t.Fatalf("unexpected candidates left: %v", names)
	}

	steps := observed.FilterMessage("filter step").All()
	if len(steps) != 2 {
		t.Fatalf("expected 2 filter step entries, got %d", len(steps))
	}

	dup := steps[0].ContextMap()
	if dup["name"] != "duplicates" || dup["dropped"] != int64(1) {
		t.Fatalf("unexpected duplicates step: %v", dup)
	}

	exclude := steps[1].ContextMap()
	if exclude["name"] != "exclude_file" || exclude["dropped"] != int64(1) || exclude["left"] != int64(2) {
		t.Fatalf("unexpected exclude_file step: %v", exclude)
	}
}

func TestRunAllowDuplicates(t *testing.T) {
	steps := Default()

	left, err := Run(context.Background(), &Config{AllowDuplicates: true}, Deps{}, steps, newCandidates("a.pdf", "a.pdf"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if left.Len() != 2 {
		t.Fatalf("expected duplicates to be kept, got %d", left.Len())
	}

	statuses := Describe(steps)
	if statuses[0].Name != "duplicates" || statuses[0].Enabled {
		t.Fatalf("expected duplicates filter to be reported disabled: %+v", statuses[0])
	}
}

func TestDisableByName(t *testing.T) {
	steps := Default()
	if !DisableByName(steps, "duplicates", "manual") {
		t.Fatalf("expected duplicates filter to be found")
	}
	if DisableByName(steps, "no_such_filter", "manual") {
		t.Fatalf("unknown filter must not be reported as disabled")
	}

	left, err := Run(context.Background(), nil, Deps{}, steps, newCandidates("a.pdf", "a.pdf"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Len() != 2 {
		t.Fatalf("expected duplicates to be kept, got %d", left.Len())
	}

	if reason := Describe(steps)[0].Reason; reason != "manual" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestExcludeFileMatchesPathAndCanBeDisabled(t *testing.T) {
	excludeFile := filepath.Join(t.TempDir(), "excluded.json")
	seen := &candidates.ExcludedCandidates{Items: []*candidates.ExcludedCandidate{{Name: "/team-b/cv.pdf"}}}
	if err := seen.ToFile(excludeFile); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	fresh := func() *candidates.Candidates {
		docs := []scoring.Document{{Name: "cv.pdf"}, {Name: "cv.pdf"}}
		return candidates.FromDocuments(docs, []string{"/team-a/cv.pdf", "/team-b/cv.pdf"})
	}
	cfg := &Config{ExcludeFile: excludeFile, AllowDuplicates: true}

	left, err := Run(context.Background(), cfg, Deps{}, Default(), fresh())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Len() != 1 || left.Items[0].Path != "/team-a/cv.pdf" {
		t.Fatalf("expected only the team-a resume to be left, got %+v", left.Items)
	}

	steps := Default()
	DisableByName(steps, "exclude_file", "disabled by flag")
	left, err = Run(context.Background(), cfg, Deps{}, steps, fresh())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Len() != 2 {
		t.Fatalf("expected disabled exclude file to keep both resumes, got %d", left.Len())
	}

	status := Describe(steps)[1]
	if status.Enabled || status.Reason != "disabled by flag" {
		t.Fatalf("unexpected exclude_file status: %+v", status)
	}
}

type failingFilter struct{}

func (failingFilter) Name() string           { return "failing" }
func (failingFilter) Disable(string)         {}
func (failingFilter) IsEnabled() bool        { return true }
func (failingFilter) Validate(*Config) error { return errors.New("bad config") }
func (failingFilter) Apply(_ context.Context, _ Deps, c *candidates.Candidates) (*candidates.Candidates, Step, error) {
	return c, Step{}, nil
}

func TestRunStopsOnValidationError(t *testing.T) {
	_, err := Run(context.Background(), nil, Deps{}, []Filter{failingFilter{}}, newCandidates("a.pdf"))
	if err == nil || err.Error() != "failing: bad config" {
		t.Fatalf("unexpected error: %v", err)
	}

	statuses := Describe([]Filter{failingFilter{}})
	if len(statuses) != 1 || !statuses[0].Enabled {
		t.Fatalf("unexpected statuses: %+v", statuses)
	}
}
