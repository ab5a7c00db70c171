package canopy

import (
	"log/slog"

	"github.com/inkwellhq/canopy/internal/logging"
	"github.com/inkwellhq/canopy/pkg/blocks"
	"github.com/inkwellhq/canopy/pkg/document"
	"github.com/inkwellhq/canopy/pkg/dsl"
	"github.com/inkwellhq/canopy/pkg/observability"
)

// Version is the library version, reported by the CLI.
const Version = "0.3.0"

// Engine is the high-level entry point for the Canopy library. It wraps the
// pkg/document operations with logging and metrics instrumentation; the
// underlying packages stay usable directly for hosts that want no
// instrumentation at all.
type Engine struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New initializes a new Canopy Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// NewEmailDocument returns the starter skeleton every new email begins
// with: a root with an empty head and a body holding one section with a
// single column.
func (e *Engine) NewEmailDocument() *document.Node {
	return dsl.Email().Children(
		dsl.Head(),
		dsl.Body().Children(
			dsl.Section().Children(dsl.Column()),
		),
	).Build()
}

// NewNode constructs a block of the given type, resolving defaults against
// tree's document overrides when tree is non-nil.
func (e *Engine) NewNode(tag blocks.Tag, tree *document.Node) *document.Node {
	if tree == nil {
		return document.New(tag)
	}
	return document.New(tag, document.WithDocumentDefaults(tree))
}

// Insert places child under parentID at the given position. See
// document.Insert for the clamping and failure contract.
func (e *Engine) Insert(tree *document.Node, parentID string, child *document.Node, position int) (*document.Node, error) {
	next, err := document.Insert(tree, parentID, child, position)
	e.observe("insert", tree, err)
	return next, err
}

// Remove splices the node with the given id out of the tree.
func (e *Engine) Remove(tree *document.Node, id string) (*document.Node, error) {
	next, err := document.Remove(tree, id)
	e.observe("remove", tree, err)
	return next, err
}

// Move relocates a node under a new parent, enforcing registry legality.
func (e *Engine) Move(tree *document.Node, id, newParentID string, position int) (*document.Node, error) {
	next, err := document.Move(tree, id, newParentID, position)
	e.observe("move", tree, err)
	return next, err
}

// Duplicate deep-copies the subtree with the given id, regenerates every id
// in the copy, and inserts it right after the original.
func (e *Engine) Duplicate(tree *document.Node, id string) (*document.Node, error) {
	node := document.FindByID(tree, id)
	if node == nil {
		e.observe("duplicate", tree, document.ErrNotFound)
		return nil, document.ErrNotFound
	}
	parent := document.FindByID(tree, parentID(tree, id))
	if parent == nil {
		e.observe("duplicate", tree, document.ErrRootRemoval)
		return nil, document.ErrRootRemoval
	}

	copyTree := document.RegenerateIDs(node)
	position := len(parent.Children)
	for i, child := range parent.Children {
		if child.ID == id {
			position = i + 1
			break
		}
	}
	next, err := document.Insert(tree, parent.ID, copyTree, position)
	e.observe("duplicate", tree, err)
	return next, err
}

// Validate reports every structural violation in the tree.
func (e *Engine) Validate(tree *document.Node) []string {
	violations := document.Validate(tree)
	if e.metrics != nil {
		e.metrics.Violations.Add(float64(len(violations)))
	}
	e.observe("validate", tree, nil)
	if len(violations) > 0 {
		e.logger.Warn("tree has structural violations", "count", len(violations))
	}
	return violations
}

// EffectiveAttributes returns the three-tier merged attribute set for the
// node with the given id, or nil when the id does not resolve.
func (e *Engine) EffectiveAttributes(tree *document.Node, id string) blocks.AttributeBag {
	node := document.FindByID(tree, id)
	if node == nil {
		return nil
	}
	return document.EffectiveAttributes(node.Type, node.Attributes, document.OverrideDefaults(tree))
}

// RedistributeGroupColumns recomputes equal column widths under a group.
func (e *Engine) RedistributeGroupColumns(tree *document.Node, groupID string) *document.Node {
	next := document.RedistributeGroupColumns(tree, groupID)
	e.observe("redistribute_group", tree, nil)
	return next
}

// RedistributeAfterMove recomputes column widths after a structural move.
func (e *Engine) RedistributeAfterMove(tree *document.Node, movedID, sourceParentID, targetParentID string) *document.Node {
	next := document.RedistributeAfterMove(tree, movedID, sourceParentID, targetParentID)
	e.observe("redistribute_move", tree, nil)
	return next
}

// ResetAttributeReferences rewrites matching attribute values tree-wide,
// e.g. clearing font-family references after a font declaration is removed.
func (e *Engine) ResetAttributeReferences(tree *document.Node, match any, attribute string, replacement any) *document.Node {
	next := document.ResetAttributeReferences(tree, match, attribute, replacement)
	e.observe("reset_references", tree, nil)
	return next
}

func (e *Engine) observe(op string, tree *document.Node, err error) {
	if e.metrics != nil {
		e.metrics.Observe(op, err)
		if tree != nil {
			e.metrics.TreeSize.Observe(float64(tree.Count()))
		}
	}
	if err != nil {
		e.logger.Debug("engine operation failed", "op", op, "err", err)
	}
}

func parentID(tree *document.Node, id string) string {
	path := document.AncestorIDs(tree, id)
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}
