// Package importer orchestrates a perk report run: load summaries from a
// Source, filter them, and hand the survivors to each Writer.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/perkreport/internal/perk"
)

// Result describes a completed run.
type Result struct {
	RunID      string
	Scanned    int
	Kept       int
	Skipped    int
	Duplicates int
	Outputs    []string
}

// Importer runs a Source through the perk filter into a set of Writers.
type Importer struct {
	source  Source
	writers []Writer
	dedupe  bool
	logger  *zap.Logger
}

// New constructs an Importer.
//
// Precondition: source and logger must be non-nil.
// Postcondition: returns a non-nil Importer. With dedupe set, only the first
// perk of each name reaches the writers.
func New(source Source, logger *zap.Logger, dedupe bool, writers ...Writer) *Importer {
	return &Importer{source: source, writers: writers, dedupe: dedupe, logger: logger}
}

// Run loads every perk under root, drops those without a usable name, and
// writes the rest, in discovery order, to each writer.
//
// Postcondition: every writer has completed, or the first error is returned
// and no further writers run.
func (imp *Importer) Run(ctx context.Context, root string) (Result, error) {
	overall := time.Now()
	res := Result{RunID: uuid.NewString()}
	log := imp.logger.With(zap.String("run_id", res.RunID))

	t0 := time.Now()
	loaded, err := imp.source.Load(ctx, root)
	if err != nil {
		return res, fmt.Errorf("loading perks from %s: %w", root, err)
	}
	res.Scanned = len(loaded)
	log.Info("loaded perk files",
		zap.String("root", root),
		zap.Int("files", len(loaded)),
		zap.Duration("elapsed", time.Since(t0)),
	)

	catalog := perk.NewCatalog(imp.dedupe)
	for _, e := range loaded {
		if !perk.Keep(e.Summary) {
			res.Skipped++
			log.Debug("skipping perk without name", zap.String("path", e.Path))
			continue
		}
		if !catalog.Add(e.Summary) {
			res.Duplicates++
			log.Debug("skipping duplicate perk",
				zap.String("path", e.Path),
				zap.String("name", e.Summary.Name),
			)
		}
	}
	res.Kept = catalog.Len()

	perks := catalog.All()
	for _, w := range imp.writers {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		t1 := time.Now()
		if err := w.Write(perks); err != nil {
			return res, fmt.Errorf("writing %s: %w", w.Destination(), err)
		}
		res.Outputs = append(res.Outputs, w.Destination())
		log.Info("wrote perk report",
			zap.String("path", w.Destination()),
			zap.Int("perks", len(perks)),
			zap.Duration("elapsed", time.Since(t1)),
		)
	}

	log.Info("perk report complete",
		zap.Int("scanned", res.Scanned),
		zap.Int("kept", res.Kept),
		zap.Int("skipped", res.Skipped),
		zap.Int("duplicates", res.Duplicates),
		zap.Duration("total", time.Since(overall)),
	)
	return res, nil
}
