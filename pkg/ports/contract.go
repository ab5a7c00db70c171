package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/canopy/pkg/dsl"
	"github.com/inkwellhq/canopy/pkg/snapshot"
)

// RunDocumentStoreContract exercises the DocumentStore behavior every
// adapter must satisfy. Adapter tests call this with a fresh store.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	t.Helper()
	ctx := context.Background()

	doc := snapshot.New(dsl.Email().ID("root").Children(
		dsl.Head(),
		dsl.Body().Children(dsl.Section().Children(dsl.Column().ID("col"))),
	).Build())
	doc.TestData = map[string]any{"audience": "beta"}

	t.Run("Save And Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "welcome", doc))

		got, err := store.Load(ctx, "welcome")
		require.NoError(t, err)
		assert.Equal(t, "root", got.EmailTree.ID)
		assert.Equal(t, doc.EmailTree.Count(), got.EmailTree.Count())
		assert.Equal(t, "beta", got.TestData["audience"])
	})

	t.Run("Load Missing", func(t *testing.T) {
		_, err := store.Load(ctx, "ghost")
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "digest", doc))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, "welcome")
		assert.Contains(t, ids, "digest")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "digest"))
		_, err := store.Load(ctx, "digest")
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Delete Missing Is Idempotent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "ghost"))
	})
}
