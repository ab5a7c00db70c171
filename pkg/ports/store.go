// Package ports defines the driven-side interfaces the engine's host can
// plug adapters into.
package ports

import (
	"context"
	"errors"

	"github.com/inkwellhq/canopy/pkg/snapshot"
)

// ErrDocumentNotFound is returned by stores when an id has no snapshot.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore persists email document snapshots keyed by id.
type DocumentStore interface {
	Save(ctx context.Context, id string, doc *snapshot.Document) error
	Load(ctx context.Context, id string) (*snapshot.Document, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}
