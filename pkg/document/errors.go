package document

import "errors"

var (
	// ErrNotFound signals that a referenced node id does not resolve to
	// any node in the tree.
	ErrNotFound = errors.New("node not found")

	// ErrRootRemoval signals an attempt to remove the document root.
	ErrRootRemoval = errors.New("root node cannot be removed")

	// ErrIllegalPlacement signals that a moved node's type is not accepted
	// by the destination parent.
	ErrIllegalPlacement = errors.New("block type not accepted by destination parent")
)
