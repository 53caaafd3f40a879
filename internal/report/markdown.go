// Package report renders kept perk summaries into output documents.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cory-johannsen/perkreport/internal/importer"
	"github.com/cory-johannsen/perkreport/internal/perk"
)

// Title is the top-level heading of the Markdown report.
const Title = "Perk Information"

var _ importer.Writer = (*Markdown)(nil)

// Markdown writes the human-readable perk document.
type Markdown struct {
	path string
}

// NewMarkdown constructs a Markdown writer targeting path.
func NewMarkdown(path string) *Markdown { return &Markdown{path: path} }

// Destination returns the output path.
func (m *Markdown) Destination() string { return m.path }

// Write creates (or truncates) the output file and renders perks into it.
func (m *Markdown) Write(perks []perk.Summary) (err error) {
	f, err := os.Create(m.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", m.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", m.path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := RenderMarkdown(bw, perks); err != nil {
		return err
	}
	return bw.Flush()
}

// RenderMarkdown writes the report heading followed by one section per perk.
// The Ability and Points Cost lines are omitted when the field is NotAvailable.
func RenderMarkdown(w io.Writer, perks []perk.Summary) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", Title); err != nil {
		return err
	}
	for _, p := range perks {
		if err := renderPerk(w, p); err != nil {
			return err
		}
	}
	return nil
}

func renderPerk(w io.Writer, p perk.Summary) error {
	if _, err := fmt.Fprintf(w, "## %s\n**Description:** %s\n", p.Name, p.Description); err != nil {
		return err
	}
	if p.HasAbility() {
		if _, err := fmt.Fprintf(w, "**Ability:** %s\n", p.Ability); err != nil {
			return err
		}
	}
	if p.HasPointsCost() {
		if _, err := fmt.Fprintf(w, "**Points Cost:** %s\n", p.PointsCost); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
