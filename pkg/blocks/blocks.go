// Package blocks defines the closed catalog of email block types.
//
// The registry is the single source of truth for what a block type may
// contain: whether it holds children, which child types it accepts, whether
// it carries a text/markup payload, and its baseline attribute defaults.
// Every other engine component (factory, mutation, validation, layout)
// consults this catalog.
package blocks

// Tag identifies a block type. The vocabulary is closed and fixed; tags
// outside it are tolerated everywhere (see Lookup) for forward
// compatibility with documents authored by newer versions.
type Tag string

// Container tags.
const (
	TagMJML       Tag = "mjml"
	TagHead       Tag = "mj-head"
	TagBody       Tag = "mj-body"
	TagWrapper    Tag = "mj-wrapper"
	TagSection    Tag = "mj-section"
	TagGroup      Tag = "mj-group"
	TagColumn     Tag = "mj-column"
	TagSocial     Tag = "mj-social"
	TagAttributes Tag = "mj-attributes"
)

// Leaf and content tags.
const (
	TagText          Tag = "mj-text"
	TagButton        Tag = "mj-button"
	TagImage         Tag = "mj-image"
	TagDivider       Tag = "mj-divider"
	TagRaw           Tag = "mj-raw"
	TagStyle         Tag = "mj-style"
	TagTitle         Tag = "mj-title"
	TagPreview       Tag = "mj-preview"
	TagSocialElement Tag = "mj-social-element"
	TagFont          Tag = "mj-font"
	TagBreakpoint    Tag = "mj-breakpoint"
)

// AttributeBag holds scalar attribute values (string, number or bool)
// keyed by attribute name. Keys are type-specific and deliberately not
// enumerated by the engine.
type AttributeBag map[string]any

// Clone returns an independent copy of the bag.
func (b AttributeBag) Clone() AttributeBag {
	if b == nil {
		return nil
	}
	out := make(AttributeBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Definition describes the structural contract of a block type.
type Definition struct {
	// CanHaveChildren reports whether nodes of this type hold an ordered
	// child list.
	CanHaveChildren bool

	// AcceptedChildren lists the child tags legal under this type.
	AcceptedChildren []Tag

	// HasContent reports whether nodes of this type carry a text/markup
	// payload.
	HasContent bool

	// DefaultAttributes are the baseline attribute values for this type.
	// Callers must treat the bag as read-only; use Clone before merging.
	DefaultAttributes AttributeBag
}

// Accepts reports whether child is a legal direct child of this type.
func (d Definition) Accepts(child Tag) bool {
	for _, t := range d.AcceptedChildren {
		if t == child {
			return true
		}
	}
	return false
}

var registry = map[Tag]Definition{
	TagMJML: {
		CanHaveChildren:  true,
		AcceptedChildren: []Tag{TagHead, TagBody},
	},
	TagHead: {
		CanHaveChildren:  true,
		AcceptedChildren: []Tag{TagAttributes, TagBreakpoint, TagFont, TagPreview, TagStyle, TagTitle},
	},
	TagBody: {
		CanHaveChildren:  true,
		AcceptedChildren: []Tag{TagWrapper, TagSection, TagRaw},
		DefaultAttributes: AttributeBag{
			"width": "600px",
		},
	},
	TagWrapper: {
		CanHaveChildren:  true,
		AcceptedChildren: []Tag{TagSection, TagRaw},
		DefaultAttributes: AttributeBag{
			"padding": "20px 0",
		},
	},
	TagSection: {
		CanHaveChildren:  true,
		AcceptedChildren: []Tag{TagColumn, TagGroup, TagRaw},
		DefaultAttributes: AttributeBag{
			"padding":           "20px 0",
			"background-repeat": "repeat",
			"text-align":        "center",
		},
	},
	TagGroup: {
		CanHaveChildren:  true,
		AcceptedChildren: []Tag{TagColumn},
		DefaultAttributes: AttributeBag{
			"direction": "ltr",
		},
	},
	TagColumn: {
		CanHaveChildren:  true,
		AcceptedChildren: []Tag{TagText, TagButton, TagImage, TagDivider, TagSocial, TagRaw},
		DefaultAttributes: AttributeBag{
			"direction":      "ltr",
			"vertical-align": "top",
		},
	},
	TagSocial: {
		CanHaveChildren:  true,
		AcceptedChildren: []Tag{TagSocialElement},
		DefaultAttributes: AttributeBag{
			"align":     "center",
			"icon-size": "20px",
			"mode":      "horizontal",
		},
	},
	TagAttributes: {
		CanHaveChildren: true,
		// Filled in by init: a declaration node may use any known tag.
	},
	TagText: {
		HasContent: true,
		DefaultAttributes: AttributeBag{
			"font-size":   "13px",
			"line-height": "1",
			"color":       "#000000",
			"padding":     "10px 25px",
			"align":       "left",
		},
	},
	TagButton: {
		HasContent: true,
		DefaultAttributes: AttributeBag{
			"background-color": "#414141",
			"color":            "#ffffff",
			"border-radius":    "3px",
			"font-size":        "13px",
			"padding":          "10px 25px",
			"align":            "center",
		},
	},
	TagImage: {
		DefaultAttributes: AttributeBag{
			"align":   "center",
			"height":  "auto",
			"padding": "10px 25px",
		},
	},
	TagDivider: {
		DefaultAttributes: AttributeBag{
			"border-color": "#000000",
			"border-style": "solid",
			"border-width": "4px",
			"padding":      "10px 25px",
		},
	},
	TagRaw: {
		HasContent: true,
	},
	TagStyle: {
		HasContent: true,
		DefaultAttributes: AttributeBag{
			"inline": false,
		},
	},
	TagTitle: {
		HasContent: true,
	},
	TagPreview: {
		HasContent: true,
	},
	TagSocialElement: {
		HasContent: true,
		DefaultAttributes: AttributeBag{
			"href":    "#",
			"padding": "4px",
		},
	},
	TagFont:       {},
	TagBreakpoint: {},
}

func init() {
	// mj-attributes hosts one declaration node per block type; the
	// declaration reuses the tag it declares defaults for.
	def := registry[TagAttributes]
	for tag := range registry {
		if tag == TagAttributes {
			continue
		}
		def.AcceptedChildren = append(def.AcceptedChildren, tag)
	}
	registry[TagAttributes] = def
}

// Lookup returns the registered definition for tag. Unknown tags yield the
// zero Definition (no children accepted, no payload, no defaults) so that
// unrecognized block types degrade gracefully instead of failing callers.
func Lookup(tag Tag) Definition {
	return registry[tag]
}

// Known reports whether tag is part of the closed vocabulary.
func Known(tag Tag) bool {
	_, ok := registry[tag]
	return ok
}

// Tags returns every tag in the catalog, in unspecified order.
func Tags() []Tag {
	out := make([]Tag, 0, len(registry))
	for tag := range registry {
		out = append(out, tag)
	}
	return out
}
