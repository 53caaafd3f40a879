package report

import (
	"github.com/cory-johannsen/perkreport/internal/config"
	"github.com/cory-johannsen/perkreport/internal/importer"
)

// Export file names.
const (
	JSONFile    = "perks.json"
	JSONMinFile = "perks_min.json"
	YAMLFile    = "perks.yaml"
)

// FromConfig returns the Markdown writer for cfg.Output followed by one writer
// per configured export.
//
// Precondition: cfg has passed config validation.
func FromConfig(cfg config.ReportConfig) []importer.Writer {
	writers := []importer.Writer{NewMarkdown(cfg.Output)}
	for _, e := range cfg.Exports {
		switch e {
		case config.ExportJSON:
			writers = append(writers,
				NewJSON(cfg.ExportPath(JSONFile), true),
				NewJSON(cfg.ExportPath(JSONMinFile), false),
			)
		case config.ExportYAML:
			writers = append(writers, NewYAML(cfg.ExportPath(YAMLFile)))
		}
	}
	return writers
}
