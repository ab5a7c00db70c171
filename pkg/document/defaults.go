package document

import "github.com/inkwellhq/canopy/pkg/blocks"

// OverrideDefaults extracts the document-scoped override-defaults table
// from the conventional head → mj-attributes location. Each declaration
// node found there is recorded under the tag it declares defaults for.
// Returns an empty map when the convention path is absent at any level.
func OverrideDefaults(tree *Node) map[blocks.Tag]blocks.AttributeBag {
	defaults := map[blocks.Tag]blocks.AttributeBag{}
	head := FindFirstByType(tree, blocks.TagHead)
	if head == nil {
		return defaults
	}
	attrs := FindFirstByType(head, blocks.TagAttributes)
	if attrs == nil {
		return defaults
	}
	for _, decl := range attrs.Children {
		defaults[decl.Type] = decl.Attributes.Clone()
	}
	return defaults
}

// EffectiveAttributes produces the merged attribute set used to render or
// edit a node. Precedence, highest first: the node's own attributes, the
// document override defaults for its type, the registry baseline defaults.
func EffectiveAttributes(tag blocks.Tag, own blocks.AttributeBag, overrides map[blocks.Tag]blocks.AttributeBag) blocks.AttributeBag {
	merged := blocks.AttributeBag{}
	for k, v := range blocks.Lookup(tag).DefaultAttributes {
		merged[k] = v
	}
	for k, v := range overrides[tag] {
		merged[k] = v
	}
	for k, v := range own {
		merged[k] = v
	}
	return merged
}
