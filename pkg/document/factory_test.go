package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/canopy/pkg/blocks"
	"github.com/inkwellhq/canopy/pkg/document"
)

func TestNewNode(t *testing.T) {
	t.Run("Generated ID", func(t *testing.T) {
		a := document.New(blocks.TagText)
		b := document.New(blocks.TagText)
		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Registry Defaults", func(t *testing.T) {
		btn := document.New(blocks.TagButton)
		assert.Equal(t, "#414141", btn.Attributes["background-color"])
		assert.Equal(t, "3px", btn.Attributes["border-radius"])
	})

	t.Run("Container Gets Empty Children", func(t *testing.T) {
		sec := document.New(blocks.TagSection)
		assert.NotNil(t, sec.Children)
		assert.Empty(t, sec.Children)
	})

	t.Run("Leaf Has No Children", func(t *testing.T) {
		img := document.New(blocks.TagImage)
		assert.Nil(t, img.Children)
	})

	t.Run("Unknown Tag Degrades Gracefully", func(t *testing.T) {
		node := document.New("mj-hologram")
		assert.NotEmpty(t, node.ID)
		assert.Empty(t, node.Attributes)
		assert.Nil(t, node.Children)
	})
}

func TestNewNodeTextWrapping(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"Bare Fragment", "hello world", "<div>hello world</div>"},
		{"Already Markup", "<p>hi</p>", "<p>hi</p>"},
		{"Empty", "", "<div></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := document.New(blocks.TagText, document.WithContent(tt.content))
			assert.Equal(t, tt.want, node.Content)
		})
	}

	t.Run("Omitted Defaults To Empty Container", func(t *testing.T) {
		node := document.New(blocks.TagText)
		assert.Equal(t, "<div></div>", node.Content)
	})

	t.Run("Other Content Types Stay Bare", func(t *testing.T) {
		node := document.New(blocks.TagTitle, document.WithContent("Subject line"))
		assert.Equal(t, "Subject line", node.Content)
	})
}

func TestNewNodeSocialSeeding(t *testing.T) {
	social := document.New(blocks.TagSocial)

	assert.Len(t, social.Children, 3)

	names := make([]any, 0, 3)
	for _, elem := range social.Children {
		assert.Equal(t, blocks.TagSocialElement, elem.Type)
		assert.NotEmpty(t, elem.ID)
		assert.Contains(t, elem.Attributes, "background-color")
		names = append(names, elem.Attributes["name"])
	}
	assert.Equal(t, []any{"facebook", "twitter", "linkedin"}, names)
}

func TestNewNodeDocumentDefaults(t *testing.T) {
	// Document declaring text defaults via head > mj-attributes.
	decl := document.New(blocks.TagText, document.WithID("decl"))
	decl.Attributes = blocks.AttributeBag{"color": "#ff0000", "font-family": "Ubuntu"}
	attrs := document.New(blocks.TagAttributes, document.WithID("attrs"))
	attrs.Children = []*document.Node{decl}
	head := document.New(blocks.TagHead, document.WithID("head"))
	head.Children = []*document.Node{attrs}
	root := document.New(blocks.TagMJML, document.WithID("root"))
	root.Children = []*document.Node{head}

	node := document.New(blocks.TagText, document.WithDocumentDefaults(root))

	// Document override wins over registry baseline.
	assert.Equal(t, "#ff0000", node.Attributes["color"])
	// Declared keys absent from the registry are carried.
	assert.Equal(t, "Ubuntu", node.Attributes["font-family"])
	// Untouched registry defaults survive.
	assert.Equal(t, "13px", node.Attributes["font-size"])
}
