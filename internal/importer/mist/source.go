// Package mist loads perk summaries from the game's exported data layout:
//
//	Content/Mist/Data/Perks/
//	  <category>/.../<perk>.json   <- one array-of-objects record per perk
package mist

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/perkreport/internal/importer"
	"github.com/cory-johannsen/perkreport/internal/perk"
)

// DefaultExtension is the suffix of perk data files.
const DefaultExtension = ".json"

var _ importer.Source = (*Source)(nil)

// Source implements importer.Source for the Mist perk data tree.
type Source struct {
	ext    string
	logger *zap.Logger
}

// NewSource constructs a Source matching files whose name ends with ext.
// An empty ext selects DefaultExtension.
//
// Precondition: logger must be non-nil.
func NewSource(ext string, logger *zap.Logger) *Source {
	if ext == "" {
		ext = DefaultExtension
	}
	return &Source{ext: ext, logger: logger}
}

// Load walks root recursively and extracts every matching file in walk order.
// Any unreadable or unparsable file aborts the walk.
//
// Precondition: root must exist.
// Postcondition: returns one Extracted per matching file, or a non-nil error.
func (s *Source) Load(ctx context.Context, root string) ([]importer.Extracted, error) {
	var out []importer.Extracted
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), s.ext) {
			return nil
		}
		summary, err := ExtractFile(path)
		if err != nil {
			return err
		}
		s.logger.Debug("extracted perk",
			zap.String("path", path),
			zap.String("name", summary.Name),
		)
		out = append(out, importer.Extracted{Path: path, Summary: summary})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return out, nil
}

// ExtractFile reads and parses one perk data file.
//
// Postcondition: returns the file's Summary, or a non-nil error naming path.
func ExtractFile(path string) (perk.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return perk.Summary{}, fmt.Errorf("reading perk file %s: %w", path, err)
	}
	rec, err := perk.ParseRecord(data)
	if err != nil {
		return perk.Summary{}, fmt.Errorf("parsing perk file %s: %w", path, err)
	}
	return perk.Extract(rec), nil
}
