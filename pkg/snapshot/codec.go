package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/inkwellhq/canopy/pkg/document"
)

// ErrNoTree signals that the payload held neither a wrapper with an
// emailTree nor a bare tree.
var ErrNoTree = errors.New("snapshot contains no email tree")

// ImportJSON decodes and validates a JSON snapshot. The payload may be the
// wrapper object or a bare tree; either way the tree must pass the
// structural validator or the whole import is rejected.
func ImportJSON(data []byte) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return FromMap(raw)
}

// ImportYAML is ImportJSON for YAML payloads.
func ImportYAML(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return FromMap(raw)
}

// FromMap builds a validated Document from a generic decoded payload.
// A map carrying an "emailTree" key is treated as the wrapper; a map
// carrying a block "type" is treated as a bare tree.
func FromMap(raw map[string]any) (*Document, error) {
	var doc Document

	switch {
	case raw["emailTree"] != nil:
		if err := decode(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode snapshot wrapper: %w", err)
		}
	case raw["type"] != nil:
		var tree document.Node
		if err := decode(raw, &tree); err != nil {
			return nil, fmt.Errorf("decode bare tree: %w", err)
		}
		doc.EmailTree = &tree
	default:
		return nil, ErrNoTree
	}

	if doc.EmailTree == nil {
		return nil, ErrNoTree
	}
	if !doc.EmailTree.IsRoot() {
		return nil, fmt.Errorf("snapshot root is %q, want %q", doc.EmailTree.Type, "mjml")
	}
	if violations := document.Validate(doc.EmailTree); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return &doc, nil
}

// ExportJSON serializes the document as pretty-printed JSON.
func ExportJSON(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ExportYAML serializes the document as YAML.
func ExportYAML(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

func decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
