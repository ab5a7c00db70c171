package document

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwellhq/canopy/pkg/blocks"
)

// All mutating operations are copy-on-write: the input tree is deep-cloned
// before any change and is never observably mutated. Callers may retain
// references to prior tree versions (undo stacks) safely.

// Insert places child under the parent with the given id, returning a new
// tree. The position is clamped into [0, len(children)]; out-of-range
// positions saturate instead of erroring. No child-type legality check is
// performed here: bulk construction (e.g. from an external parser) may need
// to insert before validation. Fails with ErrNotFound only when parentID
// does not resolve.
func Insert(tree *Node, parentID string, child *Node, position int) (*Node, error) {
	next := tree.Clone()
	parent := FindByID(next, parentID)
	if parent == nil {
		return nil, fmt.Errorf("insert: parent %q: %w", parentID, ErrNotFound)
	}
	spliceIn(parent, child.Clone(), position)
	return next, nil
}

// Remove splices the node with the given id out of its parent's child list,
// returning a new tree. The root is unremovable: removing it fails with
// ErrRootRemoval. A missing id fails with ErrNotFound.
func Remove(tree *Node, id string) (*Node, error) {
	if tree.ID == id {
		return nil, fmt.Errorf("remove %q: %w", id, ErrRootRemoval)
	}
	next := tree.Clone()
	parent := parentOf(next, id)
	if parent == nil {
		return nil, fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}
	spliceOut(parent, id)
	return next, nil
}

// Move relocates the node with the given id under a new parent at the given
// position, returning a new tree. Unlike Insert, Move enforces the
// registry's accepted-child check against the destination: an illegal
// pairing fails with ErrIllegalPlacement and no partial mutation. The final
// tree shape is computed on a single clone before anything is returned, so
// a failure can never leak a tree that lost the node without placing it.
func Move(tree *Node, id, newParentID string, position int) (*Node, error) {
	node := FindByID(tree, id)
	if node == nil {
		return nil, fmt.Errorf("move %q: %w", id, ErrNotFound)
	}
	if tree.ID == id {
		return nil, fmt.Errorf("move %q: %w", id, ErrRootRemoval)
	}
	target := FindByID(tree, newParentID)
	if target == nil {
		return nil, fmt.Errorf("move: destination %q: %w", newParentID, ErrNotFound)
	}
	if !blocks.Lookup(target.Type).Accepts(node.Type) {
		return nil, fmt.Errorf("move: %q under %q: %w", node.Type, target.Type, ErrIllegalPlacement)
	}

	next := tree.Clone()
	oldParent := parentOf(next, id)
	if oldParent == nil {
		return nil, fmt.Errorf("move %q: %w", id, ErrNotFound)
	}
	moved := spliceOut(oldParent, id)

	// Resolve the destination after detaching: a destination inside the
	// moved subtree is no longer reachable and must abort the whole
	// operation rather than drop the node.
	dest := FindByID(next, newParentID)
	if dest == nil {
		return nil, fmt.Errorf("move: destination %q inside moved subtree: %w", newParentID, ErrIllegalPlacement)
	}
	spliceIn(dest, moved, position)
	return next, nil
}

// RegenerateIDs returns a deep copy of the tree with every node's id
// replaced by a freshly generated one. Structure and order are unchanged.
// Used when duplicating a subtree to avoid id collisions with the source.
func RegenerateIDs(tree *Node) *Node {
	next := tree.Clone()
	next.Walk(func(n *Node) bool {
		n.ID = uuid.NewString()
		return true
	})
	return next
}

func spliceIn(parent *Node, child *Node, position int) {
	if position < 0 {
		position = 0
	}
	if position > len(parent.Children) {
		position = len(parent.Children)
	}
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[position+1:], parent.Children[position:])
	parent.Children[position] = child
}

func spliceOut(parent *Node, id string) *Node {
	for i, child := range parent.Children {
		if child.ID == id {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return child
		}
	}
	return nil
}
