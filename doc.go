/*
Package canopy is the document tree engine behind an email-marketing
editor: the in-memory model of a composable MJML-like email layout and the
operations that keep that tree well-formed under interactive editing.

The engine is a library. It never renders markup and never talks to the
network; an external compiler consumes trees it produces, and an external
parser produces trees it validates.

# Concept

An email is a single rooted tree of typed blocks. The block catalog
(pkg/blocks) is closed: for every tag it declares which children are legal,
whether the block carries a payload, and its baseline attribute defaults.
Every mutating operation (pkg/document) is copy-on-write: the input tree is
deep-cloned and never touched, so hosts can keep prior versions for
undo/redo without aliasing hazards.

# Usage

	package main

	import (
		"fmt"

		"github.com/inkwellhq/canopy"
		"github.com/inkwellhq/canopy/pkg/blocks"
		"github.com/inkwellhq/canopy/pkg/document"
	)

	func main() {
		eng := canopy.New()

		// Start from the canonical skeleton.
		tree := eng.NewEmailDocument()

		// Add a text block to the first column.
		column := document.FindFirstByType(tree, blocks.TagColumn)
		text := eng.NewNode(blocks.TagText, tree)
		tree, err := eng.Insert(tree, column.ID, text, 0)
		if err != nil {
			panic(err)
		}

		// Validate before handing the tree to the compiler.
		for _, violation := range eng.Validate(tree) {
			fmt.Println(violation)
		}
	}

Import/export goes through pkg/snapshot; persistence adapters implement
pkg/ports.DocumentStore.
*/
package canopy
