package store

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/offertio/dokgen/pkg/document"
)

// The template's wire shape is defined by its JSON codec, including the typed
// decoding of block content. YAML persistence reuses that codec by bridging
// through a generic document: YAML bytes become a plain value tree, the tree
// becomes JSON, and the JSON codec does the typed work. Encoding runs the
// same bridge in reverse.

func encodeTemplate(template document.Template) ([]byte, error) {
	raw, err := json.Marshal(template)
	if err != nil {
		return nil, fmt.Errorf("store: encode template %q: %w", template.ID, err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("store: encode template %q: %w", template.ID, err)
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("store: encode template %q: %w", template.ID, err)
	}
	return out, nil
}

func decodeTemplate(data []byte) (document.Template, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return document.Template{}, fmt.Errorf("store: decode template: %w", err)
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return document.Template{}, fmt.Errorf("store: decode template: %w", err)
	}
	var template document.Template
	if err := json.Unmarshal(raw, &template); err != nil {
		return document.Template{}, fmt.Errorf("store: decode template: %w", err)
	}
	return template, nil
}
