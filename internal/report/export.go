package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/perkreport/internal/importer"
	"github.com/cory-johannsen/perkreport/internal/perk"
)

// Record is the exported form of a perk summary.
type Record struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Ability     string `json:"ability" yaml:"ability"`
	PointsCost  string `json:"points_cost" yaml:"points_cost"`
}

// Records converts summaries to export records, preserving order.
func Records(perks []perk.Summary) []Record {
	out := make([]Record, 0, len(perks))
	for _, p := range perks {
		out = append(out, Record{
			ID:          importer.NameToID(p.Name),
			Name:        p.Name,
			Description: p.Description,
			Ability:     p.Ability,
			PointsCost:  p.PointsCost,
		})
	}
	return out
}

var (
	_ importer.Writer = (*JSON)(nil)
	_ importer.Writer = (*YAML)(nil)
)

// JSON writes the perks as a JSON array, indented or compact.
type JSON struct {
	path   string
	indent bool
}

// NewJSON constructs a JSON writer targeting path.
func NewJSON(path string, indent bool) *JSON { return &JSON{path: path, indent: indent} }

// Destination returns the output path.
func (j *JSON) Destination() string { return j.path }

// Write encodes perks without HTML escaping and replaces the file at path.
func (j *JSON) Write(perks []perk.Summary) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if j.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(Records(perks)); err != nil {
		return fmt.Errorf("encoding perks: %w", err)
	}
	if err := os.WriteFile(j.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", j.path, err)
	}
	return nil
}

// YAML writes the perks as a YAML sequence.
type YAML struct {
	path string
}

// NewYAML constructs a YAML writer targeting path.
func NewYAML(path string) *YAML { return &YAML{path: path} }

// Destination returns the output path.
func (y *YAML) Destination() string { return y.path }

// Write marshals perks and replaces the file at path.
func (y *YAML) Write(perks []perk.Summary) error {
	data, err := yaml.Marshal(Records(perks))
	if err != nil {
		return fmt.Errorf("serialising perks: %w", err)
	}
	if err := os.WriteFile(y.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", y.path, err)
	}
	return nil
}
