package importer

import (
	"context"

	"github.com/cory-johannsen/perkreport/internal/perk"
)

// Extracted pairs a perk Summary with the data file it was read from.
type Extracted struct {
	Path    string
	Summary perk.Summary
}

// Source discovers perk data files under a root directory and extracts one
// Summary per file.
//
// Precondition: root must exist and be readable.
// Postcondition: returns the summaries in discovery order (possibly empty),
// or a non-nil error if any file could not be read or parsed.
type Source interface {
	Load(ctx context.Context, root string) ([]Extracted, error)
}

// Writer renders the kept perks to a destination.
//
// Postcondition: the destination is fully written and closed, or a non-nil
// error is returned.
type Writer interface {
	Destination() string
	Write(perks []perk.Summary) error
}
