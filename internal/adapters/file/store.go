package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkwellhq/canopy/pkg/ports"
	"github.com/inkwellhq/canopy/pkg/snapshot"
)

// Store implements ports.DocumentStore on the local filesystem.
// Documents live as JSON files in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".canopy/documents".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".canopy", "documents")
	}
	return &Store{BasePath: basePath}
}

// Save persists the document to a JSON file atomically: write to a temp
// file, fsync, then rename into place.
func (s *Store) Save(ctx context.Context, id string, doc *snapshot.Document) error {
	if id == "" {
		return fmt.Errorf("document id cannot be empty")
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure document directory: %w", err)
	}

	data, err := snapshot.ExportJSON(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	// Temp file in the same directory: rename is atomic only within one
	// filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+id+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path(id)); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads and decodes one document. The snapshot codec re-validates the
// tree, so hand-edited files cannot smuggle in malformed shapes.
func (s *Store) Load(ctx context.Context, id string) (*snapshot.Document, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := snapshot.ImportJSON(data)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", id, err)
	}
	return doc, nil
}

// Delete removes a document file. Missing files are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// List returns the ids of every stored document.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.BasePath, id+".json")
}

var _ ports.DocumentStore = (*Store)(nil)
