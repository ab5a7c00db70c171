package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/canopy/pkg/blocks"
	"github.com/inkwellhq/canopy/pkg/document"
)

func TestValidate(t *testing.T) {
	t.Run("Valid Tree", func(t *testing.T) {
		assert.Empty(t, document.Validate(newTestEmail()))
	})

	t.Run("Misplaced Social Element", func(t *testing.T) {
		tree := newTestEmail()
		stray := document.New(blocks.TagSocialElement, document.WithID("stray"))
		stray.Attributes["name"] = "facebook"
		tree, err := document.Insert(tree, "root", stray, 99)
		require.NoError(t, err)

		violations := document.Validate(tree)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], string(blocks.TagSocialElement))
		assert.Contains(t, violations[0], string(blocks.TagMJML))
		assert.Contains(t, violations[0], "mjml > mj-social-element")
	})

	t.Run("Missing Required Attribute", func(t *testing.T) {
		tree := newTestEmail()
		img := document.New(blocks.TagImage, document.WithID("img-1"))
		// Registry defaults carry no src; the hardcoded rule flags it.
		tree, err := document.Insert(tree, "col-2", img, 0)
		require.NoError(t, err)

		violations := document.Validate(tree)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], `"src"`)
		assert.Contains(t, violations[0], "mj-column > mj-image")
	})

	t.Run("Accumulates Multiple", func(t *testing.T) {
		tree := newTestEmail()
		tree, err := document.Insert(tree, "root", document.New(blocks.TagColumn, document.WithID("bad-col")), 99)
		require.NoError(t, err)
		tree, err = document.Insert(tree, "col-2", document.New(blocks.TagImage), 0)
		require.NoError(t, err)

		assert.Len(t, document.Validate(tree), 2)
	})

	t.Run("Nil Tree", func(t *testing.T) {
		assert.Empty(t, document.Validate(nil))
	})
}

func TestViolationsTyped(t *testing.T) {
	tree := newTestEmail()
	font := document.New(blocks.TagFont, document.WithID("font-1"))
	tree, err := document.Insert(tree, "head-1", font, 0)
	require.NoError(t, err)

	violations := document.Violations(tree)
	require.Len(t, violations, 2) // name and href both missing
	assert.Equal(t, "mjml > mj-head > mj-font", violations[0].Path)
	assert.Contains(t, violations[0].String(), violations[0].Path)
}
