package document

import "github.com/inkwellhq/canopy/pkg/blocks"

// FindByID returns the first node with the given id, pre-order, or nil.
func FindByID(tree *Node, id string) *Node {
	var found *Node
	tree.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindFirstByType returns the first node of the given type, pre-order, or nil.
func FindFirstByType(tree *Node, tag blocks.Tag) *Node {
	var found *Node
	tree.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Type == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAllByType returns every node of the given type, pre-order, any depth.
func FindAllByType(tree *Node, tag blocks.Tag) []*Node {
	var found []*Node
	tree.Walk(func(n *Node) bool {
		if n.Type == tag {
			found = append(found, n)
		}
		return true
	})
	return found
}

// AncestorIDs returns the root-to-parent id path of the node with the given
// id. The target's own id is not included. Returns nil when id does not
// resolve to any node.
func AncestorIDs(tree *Node, id string) []string {
	if tree == nil {
		return nil
	}
	if tree.ID == id {
		return []string{}
	}
	for _, child := range tree.Children {
		if path := AncestorIDs(child, id); path != nil {
			return append([]string{tree.ID}, path...)
		}
	}
	return nil
}

// parentOf returns the direct parent of the node with the given id, or nil
// when id is the root or absent.
func parentOf(tree *Node, id string) *Node {
	var parent *Node
	tree.Walk(func(n *Node) bool {
		if parent != nil {
			return false
		}
		for _, child := range n.Children {
			if child.ID == id {
				parent = n
				return false
			}
		}
		return true
	})
	return parent
}

// IsDescendantOfType reports whether any ancestor of the node with the
// given id (the node itself excluded) has the given type.
func IsDescendantOfType(tree *Node, id string, ancestor blocks.Tag) bool {
	for _, ancestorID := range AncestorIDs(tree, id) {
		if n := FindByID(tree, ancestorID); n != nil && n.Type == ancestor {
			return true
		}
	}
	return false
}
