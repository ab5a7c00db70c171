package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/canopy/pkg/blocks"
	"github.com/inkwellhq/canopy/pkg/document"
)

func newEmailWithOverrides() *document.Node {
	textDecl := document.New(blocks.TagText, document.WithID("decl-text"))
	textDecl.Attributes = blocks.AttributeBag{"color": "#336699", "font-size": "16px"}
	buttonDecl := document.New(blocks.TagButton, document.WithID("decl-button"))
	buttonDecl.Attributes = blocks.AttributeBag{"background-color": "#222222"}

	attrs := document.New(blocks.TagAttributes, document.WithID("attrs"))
	attrs.Children = []*document.Node{textDecl, buttonDecl}

	head := document.New(blocks.TagHead, document.WithID("head"))
	head.Children = []*document.Node{attrs}

	root := document.New(blocks.TagMJML, document.WithID("root"))
	root.Children = []*document.Node{head, document.New(blocks.TagBody, document.WithID("body"))}
	return root
}

func TestOverrideDefaults(t *testing.T) {
	t.Run("Keyed By Declared Type", func(t *testing.T) {
		defaults := document.OverrideDefaults(newEmailWithOverrides())

		assert.Len(t, defaults, 2)
		assert.Equal(t, "#336699", defaults[blocks.TagText]["color"])
		assert.Equal(t, "#222222", defaults[blocks.TagButton]["background-color"])
	})

	t.Run("No Attributes Block", func(t *testing.T) {
		// Head present, mj-attributes absent: empty map, not an error.
		tree := newTestEmail()
		defaults := document.OverrideDefaults(tree)
		assert.NotNil(t, defaults)
		assert.Empty(t, defaults)
	})

	t.Run("No Head", func(t *testing.T) {
		root := document.New(blocks.TagMJML)
		assert.Empty(t, document.OverrideDefaults(root))
	})

	t.Run("Detached From Source Tree", func(t *testing.T) {
		tree := newEmailWithOverrides()
		defaults := document.OverrideDefaults(tree)
		defaults[blocks.TagText]["color"] = "#000000"
		assert.Equal(t, "#336699", document.FindByID(tree, "decl-text").Attributes["color"])
	})
}

func TestEffectiveAttributes(t *testing.T) {
	overrides := document.OverrideDefaults(newEmailWithOverrides())

	t.Run("Three Tier Precedence", func(t *testing.T) {
		own := blocks.AttributeBag{"color": "#ff0000"}
		merged := document.EffectiveAttributes(blocks.TagText, own, overrides)

		// Own attribute wins over document override.
		assert.Equal(t, "#ff0000", merged["color"])
		// Document override wins over registry baseline.
		assert.Equal(t, "16px", merged["font-size"])
		// Registry baseline fills the rest.
		assert.Equal(t, "10px 25px", merged["padding"])
	})

	t.Run("Nil Inputs Are Total", func(t *testing.T) {
		merged := document.EffectiveAttributes(blocks.TagButton, nil, nil)
		assert.Equal(t, "#414141", merged["background-color"])
	})

	t.Run("Unknown Tag", func(t *testing.T) {
		merged := document.EffectiveAttributes("mj-hologram", blocks.AttributeBag{"x": 1}, overrides)
		assert.Equal(t, blocks.AttributeBag{"x": 1}, merged)
	})
}
