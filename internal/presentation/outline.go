// Package presentation renders trees and validation reports for humans.
package presentation

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/inkwellhq/canopy/pkg/blocks"
	"github.com/inkwellhq/canopy/pkg/document"
)

// Outline produces an indented text outline of the tree: one line per
// node with its tag, id and a short payload/child summary.
func Outline(tree *document.Node) string {
	var sb strings.Builder
	writeOutline(&sb, tree, 0)
	return sb.String()
}

func writeOutline(sb *strings.Builder, n *document.Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(string(n.Type))
	sb.WriteString(" (")
	sb.WriteString(n.ID)
	sb.WriteString(")")

	def := blocks.Lookup(n.Type)
	switch {
	case def.HasContent && n.Content != "":
		sb.WriteString(fmt.Sprintf(" %q", truncate(n.Content, 32)))
	case len(n.Children) > 0:
		sb.WriteString(fmt.Sprintf(" [%d children]", len(n.Children)))
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		writeOutline(sb, child, depth+1)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// ValidationReport renders validator output for the terminal, coloring
// through termenv when the output profile supports it.
func ValidationReport(violations []string) string {
	profile := termenv.ColorProfile()
	var sb strings.Builder

	if len(violations) == 0 {
		ok := termenv.String("✔ document is structurally valid").Foreground(profile.Color("2"))
		sb.WriteString(ok.String())
		sb.WriteString("\n")
		return sb.String()
	}

	header := termenv.String(fmt.Sprintf("✘ %d violation(s) found", len(violations))).
		Foreground(profile.Color("1")).Bold()
	sb.WriteString(header.String())
	sb.WriteString("\n")
	for i, v := range violations {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, v))
	}
	return sb.String()
}
