package candidates

import (
	"github.com/spigell/hh-screener/internal/scoring"
)

const (
	CandidateNameField = "Name"
	CandidatePathField = "Path"
)

type Candidates struct {
	Items []*Candidate
}

type Candidate struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Text string `json:"-"`
}

// FromDocuments wraps extracted documents, keeping their order. paths is
// parallel to docs; a missing entry leaves the candidate without a path.
func FromDocuments(docs []scoring.Document, paths []string) *Candidates {
	items := make([]*Candidate, 0, len(docs))
	for i, doc := range docs {
		candidate := &Candidate{Name: doc.Name, Text: doc.Text}
		if i < len(paths) {
			candidate.Path = paths[i]
		}
		items = append(items, candidate)
	}

	return &Candidates{Items: items}
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) Names() []string {
	names := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		names = append(names, candidate.Name)
	}

	return names
}

// Documents returns the candidates as scoring input, in order.
func (c *Candidates) Documents() []scoring.Document {
	docs := make([]scoring.Document, 0, len(c.Items))
	for _, candidate := range c.Items {
		docs = append(docs, scoring.Document{Name: candidate.Name, Text: candidate.Text})
	}

	return docs
}

func (ca *Candidate) GetStringField(name string) string {
	switch name {
	case CandidateNameField:
		return ca.Name
	case CandidatePathField:
		return ca.Path
	default:
		return ""
	}
}

// Exclude removes every candidate whose field matches one of the targets and
// returns the removed names.
func (c *Candidates) Exclude(field string, targets []string) []string {
	set := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		set[target] = struct{}{}
	}

	var excluded []string
	for idx := 0; idx < len(c.Items); {
		candidate := c.Items[idx]
		if _, ok := set[candidate.GetStringField(field)]; ok {
			c.RemoveByIndex(idx)
			excluded = append(excluded, candidate.Name)
			continue
		}
		idx++
	}

	return excluded
}

// ExcludeDuplicates keeps the first candidate of every name and returns the
// names of removed repeats.
func (c *Candidates) ExcludeDuplicates() []string {
	seen := make(map[string]struct{}, len(c.Items))

	var excluded []string
	for idx := 0; idx < len(c.Items); {
		name := c.Items[idx].Name
		if _, ok := seen[name]; ok {
			c.RemoveByIndex(idx)
			excluded = append(excluded, name)
			continue
		}
		seen[name] = struct{}{}
		idx++
	}

	return excluded
}

// RemoveByIndex removes a candidate from the list by index. Order is preserved,
// ranking ties depend on it.
func (c *Candidates) RemoveByIndex(idx int) {
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}
