// Package screening runs one screening job end to end: extraction, filtering
// and scoring. The scoring step itself is pure; this package owns the I/O and
// the logging around it.
package screening

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/hh-screener/internal/candidates"
	"github.com/spigell/hh-screener/internal/extract"
	"github.com/spigell/hh-screener/internal/filtering"
	"github.com/spigell/hh-screener/internal/logger"
	"github.com/spigell/hh-screener/internal/scoring"
)

type Config struct {
	Threshold       float64
	Workers         int
	ExcludeFile     string
	AllowDuplicates bool
	// DisabledFilters names filter steps to skip.
	DisabledFilters []string
}

type Screener struct {
	config    Config
	extractor extract.Extractor
	logger    *zap.Logger
}

func New(cfg Config, extractor extract.Extractor, log *zap.Logger) *Screener {
	if log == nil {
		log = zap.NewNop()
	}

	return &Screener{
		config:    cfg,
		extractor: extractor,
		logger:    log,
	}
}

// Request describes one screening job read from disk.
type Request struct {
	// ReferencePath is the job description file.
	ReferencePath string
	// CandidatePaths are resume files or directories holding them.
	CandidatePaths []string
	// Threshold overrides the configured threshold when set.
	Threshold *float64
}

type Result struct {
	RunID     string
	Reference string
	Ranking   *scoring.Ranking
	Skipped   []*scoring.DocumentExtractionError
}

// Run extracts all documents, filters candidates and ranks them. Candidates
// that cannot be extracted are skipped; a reference that cannot be extracted
// fails the run.
func (s *Screener) Run(ctx context.Context, req Request) (*Result, error) {
	runID := uuid.NewString()
	reference := filepath.Base(req.ReferencePath)
	log := logger.WithRunFields(s.logger, runID, reference)

	threshold := s.config.Threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if err := scoring.ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	paths, err := extract.Expand(req.CandidatePaths)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, scoring.ErrNoCandidates
	}

	collector := extract.NewCollector(s.extractor, s.config.Workers, log)

	refDocs, refSkipped, err := collector.Collect(ctx, []string{req.ReferencePath})
	if err != nil {
		return nil, err
	}
	if len(refSkipped) > 0 {
		return nil, fmt.Errorf("reference document: %w", refSkipped[0])
	}

	log.Info("extracting candidates", zap.Int("count", len(paths)))

	files, skipped, err := collector.CollectFiles(ctx, paths)
	if err != nil {
		return nil, err
	}

	docs := make([]scoring.Document, 0, len(files))
	kept := make([]string, 0, len(files))
	for _, file := range files {
		docs = append(docs, file.Document)
		kept = append(kept, file.Path)
	}

	steps := filtering.Default()
	for _, name := range s.config.DisabledFilters {
		if !filtering.DisableByName(steps, name, "disabled by config") {
			return nil, fmt.Errorf("unknown filter %q", name)
		}
	}
	for _, status := range filtering.Describe(steps) {
		log.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	filtered, err := filtering.Run(ctx, &filtering.Config{
		ExcludeFile:     s.config.ExcludeFile,
		AllowDuplicates: s.config.AllowDuplicates,
	}, filtering.Deps{Logger: log}, steps, candidates.FromDocuments(docs, kept))
	if err != nil {
		return nil, fmt.Errorf("filtering candidates: %w", err)
	}

	for _, candidate := range filtered.Items {
		log.Debug("scoring candidate", zap.String("document", candidate.Name), zap.String("path", candidate.Path))
	}

	ranking, err := scoring.ScoreDocuments(refDocs[0], filtered.Documents(), threshold)
	if err != nil {
		if errors.Is(err, scoring.ErrNoCandidates) && len(skipped) > 0 {
			return nil, fmt.Errorf("no candidates left, %d skipped: %w", len(skipped), err)
		}
		return nil, err
	}

	log.Info("ranked candidates",
		zap.Int("ranked", ranking.Len()),
		zap.Int("skipped", len(skipped)),
		zap.Int("shortlisted", len(ranking.Shortlisted())),
		zap.Float64("threshold", threshold),
		zap.String("best_match", ranking.Best.Name),
		zap.Float64("best_percent", ranking.Best.Percent),
	)

	return &Result{
		RunID:     runID,
		Reference: reference,
		Ranking:   ranking,
		Skipped:   skipped,
	}, nil
}
