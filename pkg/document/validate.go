package document

import (
	"fmt"
	"strings"

	"github.com/inkwellhq/canopy/pkg/blocks"
)

// requiredAttributes is a small hardcoded rule set layered on top of the
// generic registry check. It is not derived from the registry.
var requiredAttributes = map[blocks.Tag][]string{
	blocks.TagImage:         {"src"},
	blocks.TagFont:          {"name", "href"},
	blocks.TagBreakpoint:    {"width"},
	blocks.TagSocialElement: {"name"},
}

// Violation describes one structural problem found by Validate.
type Violation struct {
	// Path is the root-to-node label path, e.g. "mjml > mj-body > mj-text".
	Path    string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s (at %s)", v.Message, v.Path)
}

// Validate walks the tree and returns every structural violation found:
// child types not accepted by their parent per the registry, and missing
// required attributes. An empty result means the tree is valid. Validation
// never panics and is advisory: mutation operations do not invoke it.
func Validate(tree *Node) []string {
	violations := Violations(tree)
	if len(violations) == 0 {
		return nil
	}
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.String()
	}
	return out
}

// Violations is the typed form of Validate.
func Violations(tree *Node) []Violation {
	if tree == nil {
		return nil
	}
	var acc []Violation
	descend(tree, []string{string(tree.Type)}, &acc)
	return acc
}

func descend(n *Node, path []string, acc *[]Violation) {
	for _, attr := range requiredAttributes[n.Type] {
		if _, ok := n.Attributes[attr]; !ok {
			*acc = append(*acc, Violation{
				Path:    strings.Join(path, " > "),
				Message: fmt.Sprintf("%q block is missing required attribute %q", n.Type, attr),
			})
		}
	}

	def := blocks.Lookup(n.Type)
	for _, child := range n.Children {
		childPath := append(append([]string{}, path...), string(child.Type))
		if !def.Accepts(child.Type) {
			*acc = append(*acc, Violation{
				Path:    strings.Join(childPath, " > "),
				Message: fmt.Sprintf("%q is not a valid child of %q", child.Type, n.Type),
			})
		}
		descend(child, childPath, acc)
	}
}
