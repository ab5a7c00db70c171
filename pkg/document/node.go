package document

import (
	"github.com/inkwellhq/canopy/pkg/blocks"
)

// Node is one typed element of the email document tree.
//
// Container types hold an ordered child list; content types hold an opaque
// text/markup payload instead. The root of every tree is a TagMJML node.
type Node struct {
	ID         string              `json:"id" yaml:"id" mapstructure:"id"`
	Type       blocks.Tag          `json:"type" yaml:"type" mapstructure:"type"`
	Attributes blocks.AttributeBag `json:"attributes,omitempty" yaml:"attributes,omitempty" mapstructure:"attributes"`
	Content    string              `json:"content,omitempty" yaml:"content,omitempty" mapstructure:"content"`
	Children   []*Node             `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

// Clone returns a fully independent deep copy of the subtree rooted at n.
// Mutating the copy never affects the original.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		ID:         n.ID,
		Type:       n.Type,
		Attributes: n.Attributes.Clone(),
		Content:    n.Content,
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// IsRoot reports whether n is a document root node.
func (n *Node) IsRoot() bool {
	return n != nil && n.Type == blocks.TagMJML
}

// Walk visits every node in the subtree pre-order, depth first. When fn
// returns false the node's subtree is skipped; siblings are still visited.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
