// Package extract reads candidate documents from disk into plain text.
//
// Extraction runs in parallel across documents and finishes completely before
// any scoring starts. A document that cannot be decoded is skipped with a
// warning and reported back, it never fails the batch.
package extract

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/hh-screener/internal/scoring"
	"github.com/spigell/hh-screener/internal/utils"
)

const (
	defaultWorkers    = 4
	previewTextLength = 80
)

type Collector struct {
	extractor Extractor
	workers   int
	logger    *zap.Logger
}

func NewCollector(extractor Extractor, workers int, logger *zap.Logger) *Collector {
	if extractor == nil {
		extractor = FileExtractor{}
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Collector{
		extractor: extractor,
		workers:   workers,
		logger:    logger,
	}
}

// File is an extracted document together with the path it was read from.
type File struct {
	Path     string
	Document scoring.Document
}

// Collect extracts every path and returns the documents in input order along
// with the ones that were skipped. The only returned error is ctx cancellation.
func (c *Collector) Collect(ctx context.Context, paths []string) ([]scoring.Document, []*scoring.DocumentExtractionError, error) {
	files, skipped, err := c.CollectFiles(ctx, paths)
	if err != nil {
		return nil, nil, err
	}

	docs := make([]scoring.Document, 0, len(files))
	for _, file := range files {
		docs = append(docs, file.Document)
	}

	return docs, skipped, nil
}

// CollectFiles is Collect keeping the source path of every extracted document.
// Paths stay attached by position, so documents sharing a base name keep their
// own path.
func (c *Collector) CollectFiles(ctx context.Context, paths []string) ([]File, []*scoring.DocumentExtractionError, error) {
	texts := make([]string, len(paths))
	failures := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			text, err := c.extractor.Extract(gctx, path)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failures[i] = err
				return nil
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	files := make([]File, 0, len(paths))
	var skipped []*scoring.DocumentExtractionError
	for i, path := range paths {
		name := filepath.Base(path)
		if failures[i] != nil {
			extractErr := &scoring.DocumentExtractionError{Name: name, Err: failures[i]}
			c.logger.Warn("skipping document",
				zap.String("document", name),
				zap.String("path", path),
				zap.Error(failures[i]),
			)
			skipped = append(skipped, extractErr)
			continue
		}

		c.logger.Debug("extracted document",
			zap.String("document", name),
			zap.Int("length", len(texts[i])),
			zap.String("preview", utils.TruncateForLog(texts[i], previewTextLength)),
		)
		files = append(files, File{Path: path, Document: scoring.Document{Name: name, Text: texts[i]}})
	}

	return files, skipped, nil
}
