// Package cli implements the command logic behind cmd/canopy.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkwellhq/canopy/pkg/snapshot"
)

// readSnapshot loads a snapshot (or bare tree) file, picking the codec by
// extension. Validation failures surface as *snapshot.ValidationError.
func readSnapshot(path string) (*snapshot.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return snapshot.ImportYAML(data)
	default:
		return snapshot.ImportJSON(data)
	}
}

// writeSnapshot serializes the document to path, picking the codec by
// extension.
func writeSnapshot(path string, doc *snapshot.Document) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = snapshot.ExportYAML(doc)
	default:
		data, err = snapshot.ExportJSON(doc)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// documentID derives a store id from a file path: base name, extension
// stripped.
func documentID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
