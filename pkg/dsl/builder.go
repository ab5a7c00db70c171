package dsl

import (
	"github.com/inkwellhq/canopy/pkg/blocks"
	"github.com/inkwellhq/canopy/pkg/document"
)

// Builder configures one block and its subtree.
type Builder struct {
	tag      blocks.Tag
	id       string
	content  string
	attrs    blocks.AttributeBag
	children []*Builder
}

// Block starts a builder for an arbitrary tag.
func Block(tag blocks.Tag) *Builder {
	return &Builder{tag: tag}
}

// Shorthand constructors for the common layout blocks.

func Email() *Builder   { return Block(blocks.TagMJML) }
func Head() *Builder    { return Block(blocks.TagHead) }
func Body() *Builder    { return Block(blocks.TagBody) }
func Wrapper() *Builder { return Block(blocks.TagWrapper) }
func Section() *Builder { return Block(blocks.TagSection) }
func Group() *Builder   { return Block(blocks.TagGroup) }
func Column() *Builder  { return Block(blocks.TagColumn) }

func Text(content string) *Builder {
	return Block(blocks.TagText).Content(content)
}

func Button(content string) *Builder {
	return Block(blocks.TagButton).Content(content)
}

func Image(src string) *Builder {
	return Block(blocks.TagImage).Attr("src", src)
}

func Divider() *Builder { return Block(blocks.TagDivider) }

// Social returns a social block. The factory seeds it with the default
// social elements; chained Children are appended after the seeds.
func Social() *Builder {
	return Block(blocks.TagSocial)
}

// ID pins the node id instead of generating one. Useful in tests.
func (b *Builder) ID(id string) *Builder {
	b.id = id
	return b
}

// Attr sets one attribute on the node.
func (b *Builder) Attr(key string, value any) *Builder {
	if b.attrs == nil {
		b.attrs = blocks.AttributeBag{}
	}
	b.attrs[key] = value
	return b
}

// Content sets the payload for content-bearing blocks.
func (b *Builder) Content(content string) *Builder {
	b.content = content
	return b
}

// Children appends child builders in order.
func (b *Builder) Children(children ...*Builder) *Builder {
	b.children = append(b.children, children...)
	return b
}

// Build materializes the subtree through the node factory, so registry
// defaults, text wrapping and id generation all apply.
func (b *Builder) Build() *document.Node {
	var opts []document.NewOption
	if b.id != "" {
		opts = append(opts, document.WithID(b.id))
	}
	if b.content != "" {
		opts = append(opts, document.WithContent(b.content))
	}
	node := document.New(b.tag, opts...)
	for k, v := range b.attrs {
		node.Attributes[k] = v
	}
	for _, child := range b.children {
		node.Children = append(node.Children, child.Build())
	}
	return node
}
