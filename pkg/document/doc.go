// Package document implements the email document tree: the node model and
// the copy-on-write operations that keep a tree well-formed under
// interactive editing.
//
// Every mutating operation deep-clones its input and returns a brand-new
// tree; the input is never touched. The engine is synchronous, in-memory
// and side-effect free, which makes prior tree versions safe to retain for
// undo/redo.
package document
