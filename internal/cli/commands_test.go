package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/canopy/internal/adapters/file"
	"github.com/inkwellhq/canopy/internal/cli"
	"github.com/inkwellhq/canopy/pkg/dsl"
	"github.com/inkwellhq/canopy/pkg/snapshot"
)

func writeFixture(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func validSnapshot(t *testing.T) []byte {
	t.Helper()
	doc := snapshot.New(dsl.Email().ID("root").Children(
		dsl.Head(),
		dsl.Body().Children(dsl.Section().Children(dsl.Column().Children(dsl.Text("hey")))),
	).Build())
	data, err := snapshot.ExportJSON(doc)
	require.NoError(t, err)
	return data
}

const invalidSnapshot = `{"emailTree": {"id": "r", "type": "mjml",
	"children": [{"id": "x", "type": "mj-column"}]}}`

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()

	t.Run("Valid", func(t *testing.T) {
		path := writeFixture(t, dir, "ok.json", validSnapshot(t))
		var out bytes.Buffer
		require.NoError(t, cli.RunValidate(path, &out))
		assert.Contains(t, out.String(), "structurally valid")
	})

	t.Run("Invalid", func(t *testing.T) {
		path := writeFixture(t, dir, "bad.json", []byte(invalidSnapshot))
		var out bytes.Buffer
		err := cli.RunValidate(path, &out)
		assert.ErrorIs(t, err, cli.ErrInvalidDocument)
		assert.Contains(t, out.String(), "mj-column")
	})

	t.Run("Missing File", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, cli.RunValidate(filepath.Join(dir, "nope.json"), &out))
	})
}

func TestRunInspect(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "ok.json", validSnapshot(t))

	var out bytes.Buffer
	require.NoError(t, cli.RunInspect(path, &out))
	assert.Contains(t, out.String(), "mjml (root)")
	assert.Contains(t, out.String(), "mj-text")
}

func TestRunExportConvertsFormats(t *testing.T) {
	dir := t.TempDir()
	src := writeFixture(t, dir, "doc.json", validSnapshot(t))
	dest := filepath.Join(dir, "doc.yaml")

	require.NoError(t, cli.RunExport(src, dest, map[string]any{"plan": "pro"}))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	doc, err := snapshot.ImportYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "root", doc.EmailTree.ID)
	assert.Equal(t, "pro", doc.TestData["plan"])
	assert.Equal(t, snapshot.FormatVersion, doc.Version)
}

func TestRunImport(t *testing.T) {
	dir := t.TempDir()
	storeDir := filepath.Join(dir, "store")

	t.Run("Saves To Store", func(t *testing.T) {
		path := writeFixture(t, dir, "welcome.json", validSnapshot(t))
		var out bytes.Buffer
		require.NoError(t, cli.RunImport(context.Background(), path, storeDir, &out))

		store := file.New(storeDir)
		doc, err := store.Load(context.Background(), "welcome")
		require.NoError(t, err)
		assert.Equal(t, "root", doc.EmailTree.ID)
	})

	t.Run("Rejects Invalid Wholesale", func(t *testing.T) {
		path := writeFixture(t, dir, "broken.json", []byte(invalidSnapshot))
		var out bytes.Buffer
		err := cli.RunImport(context.Background(), path, storeDir, &out)
		assert.ErrorIs(t, err, cli.ErrInvalidDocument)

		_, err = file.New(storeDir).Load(context.Background(), "broken")
		assert.Error(t, err)
	})
}
