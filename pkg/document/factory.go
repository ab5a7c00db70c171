package document

import (
	"strings"

	"github.com/google/uuid"

	"github.com/inkwellhq/canopy/pkg/blocks"
)

// NewOption configures node construction.
type NewOption func(*newConfig)

type newConfig struct {
	id       string
	content  string
	defaults *Node
}

// WithID pins the new node's id instead of generating one.
func WithID(id string) NewOption {
	return func(c *newConfig) {
		c.id = id
	}
}

// WithContent sets the payload for content-bearing types.
func WithContent(content string) NewOption {
	return func(c *newConfig) {
		c.content = content
	}
}

// WithDocumentDefaults merges the document-scoped override defaults of the
// given tree into the new node's attributes.
func WithDocumentDefaults(tree *Node) NewOption {
	return func(c *newConfig) {
		c.defaults = tree
	}
}

// New constructs a node of the given type. Registry defaults are merged
// under document override defaults (overrides win); container types start
// with an empty child list; the social type is seeded with a default set of
// social elements. Unknown tags still produce a node with empty defaults so
// that forward-compatible documents degrade gracefully instead of failing.
func New(tag blocks.Tag, opts ...NewOption) *Node {
	var cfg newConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	def := blocks.Lookup(tag)

	attrs := def.DefaultAttributes.Clone()
	if attrs == nil {
		attrs = blocks.AttributeBag{}
	}
	if cfg.defaults != nil {
		for k, v := range OverrideDefaults(cfg.defaults)[tag] {
			attrs[k] = v
		}
	}

	node := &Node{
		ID:         cfg.id,
		Type:       tag,
		Attributes: attrs,
	}
	if node.ID == "" {
		node.ID = uuid.NewString()
	}

	if def.HasContent {
		node.Content = cfg.content
		if tag == blocks.TagText {
			node.Content = wrapMarkup(cfg.content)
		}
	}

	if def.CanHaveChildren {
		node.Children = []*Node{}
	}
	if tag == blocks.TagSocial {
		node.Children = seedSocialElements()
	}

	return node
}

// wrapMarkup ensures text payloads are markup-shaped. Bare fragments are
// wrapped in a container tag; an omitted payload becomes an empty container.
func wrapMarkup(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "<div></div>"
	}
	if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return content
	}
	return "<div>" + content + "</div>"
}

// Well-known networks seeded into a new social block. Fixed convenience
// defaults, not derived from the registry.
var socialSeeds = []struct {
	name  string
	color string
}{
	{"facebook", "#3b5998"},
	{"twitter", "#55acee"},
	{"linkedin", "#0077b5"},
}

func seedSocialElements() []*Node {
	children := make([]*Node, 0, len(socialSeeds))
	for _, seed := range socialSeeds {
		elem := New(blocks.TagSocialElement)
		elem.Attributes["name"] = seed.name
		elem.Attributes["background-color"] = seed.color
		children = append(children, elem)
	}
	return children
}
