package document

import (
	"strconv"

	"github.com/inkwellhq/canopy/pkg/blocks"
)

// RedistributeGroupColumns sets each column directly under the given group
// to an equal share of the available width (100 / count percent), returning
// a new tree. Equivalent clone is returned when the group does not exist,
// is not a group, or has no column children.
func RedistributeGroupColumns(tree *Node, groupID string) *Node {
	next := tree.Clone()
	group := FindByID(next, groupID)
	if group != nil && group.Type == blocks.TagGroup {
		redistributeColumns(group)
	}
	return next
}

// RedistributeAfterMove recomputes equal column widths after a structural
// move. No-op clone unless the moved node is itself a column. When source
// and target parents differ, the source parent's remaining columns are
// recomputed first; the target parent's columns (the moved one included)
// are recomputed unconditionally. The recomputation is idempotent derived
// state: manually-set unequal widths do not survive a move.
func RedistributeAfterMove(tree *Node, movedID, sourceParentID, targetParentID string) *Node {
	next := tree.Clone()
	moved := FindByID(next, movedID)
	if moved == nil || moved.Type != blocks.TagColumn {
		return next
	}

	if sourceParentID != targetParentID {
		if source := FindByID(next, sourceParentID); source != nil {
			switch source.Type {
			case blocks.TagSection, blocks.TagGroup:
				redistributeColumns(source)
			}
		}
	}
	if target := FindByID(next, targetParentID); target != nil {
		switch target.Type {
		case blocks.TagSection, blocks.TagGroup:
			redistributeColumns(target)
		}
	}
	return next
}

// ResetAttributeReferences walks every node and replaces attribute values
// equal to match with replacement, returning a new tree. Used to clean up
// font-family references when a font declaration is retracted, but the
// traversal is not font-specific.
func ResetAttributeReferences(tree *Node, match any, attribute string, replacement any) *Node {
	next := tree.Clone()
	next.Walk(func(n *Node) bool {
		if v, ok := n.Attributes[attribute]; ok && v == match {
			n.Attributes[attribute] = replacement
		}
		return true
	})
	return next
}

func redistributeColumns(parent *Node) {
	var columns []*Node
	for _, child := range parent.Children {
		if child.Type == blocks.TagColumn {
			columns = append(columns, child)
		}
	}
	if len(columns) == 0 {
		return
	}
	width := strconv.FormatFloat(100/float64(len(columns)), 'f', -1, 64) + "%"
	for _, col := range columns {
		if col.Attributes == nil {
			col.Attributes = blocks.AttributeBag{}
		}
		col.Attributes["width"] = width
	}
}
