package snapshot

import (
	"fmt"
	"time"

	"github.com/inkwellhq/canopy/pkg/document"
)

// FormatVersion is stamped on every export and accepted on import.
const FormatVersion = "1.0"

// Document is the persistence/import/export wrapper around an email tree.
type Document struct {
	EmailTree  *document.Node `json:"emailTree" yaml:"emailTree" mapstructure:"emailTree"`
	TestData   map[string]any `json:"testData,omitempty" yaml:"testData,omitempty" mapstructure:"testData"`
	ExportedAt string         `json:"exportedAt,omitempty" yaml:"exportedAt,omitempty" mapstructure:"exportedAt"`
	Version    string         `json:"version,omitempty" yaml:"version,omitempty" mapstructure:"version"`
}

// New wraps a tree for export, stamping the export time and format version.
func New(tree *document.Node) *Document {
	return &Document{
		EmailTree:  tree.Clone(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Version:    FormatVersion,
	}
}

// ValidationError rejects an import wholesale: the tree is never partially
// applied when the structural validator reports violations.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "snapshot rejected: " + e.Violations[0]
	}
	return fmt.Sprintf("snapshot rejected: %d structural violations", len(e.Violations))
}
