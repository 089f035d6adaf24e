// Package theme builds fxcss stylesheets from declarative YAML documents.
//
// A theme names a color palette and a list of rules. Rule property values
// may reference palette entries by name and derive shades with lighten()
// and darken():
//
//	name: dark
//	colors:
//	  primary: "#4682B4"
//	  surface: "#1E1E1EFF"
//	rules:
//	  - class: button
//	    target: region
//	    properties:
//	      background-color: primary
//	      padding: 8px
//	  - class: button
//	    pseudo: hover
//	    target: region
//	    properties:
//	      background-color: lighten(primary, 0.2)
package theme

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Document is a parsed theme.
type Document struct {
	// Name identifies the theme; used in generated file comments.
	Name string `koanf:"name"`
	// Colors is the named palette rule values may reference.
	Colors map[string]string `koanf:"colors"`
	// Rules are the stylesheet rules, rendered in order.
	Rules []Rule `koanf:"rules"`
}

// Rule describes one stylesheet rule.
type Rule struct {
	// Class is the style class name, without the leading dot. Exactly one
	// of Class and Selector must be set.
	Class string `koanf:"class"`
	// Pseudo optionally narrows the class rule to a pseudo-class state.
	Pseudo string `koanf:"pseudo"`
	// Selector is a raw selector, for rules beyond simple class names.
	Selector string `koanf:"selector"`
	// Target is the styled node kind: node, region, pane, shape or text.
	// Defaults to node.
	Target string `koanf:"target"`
	// Properties maps style property names to value expressions.
	Properties map[string]string `koanf:"properties"`
}

// Load reads and parses a theme file.
func Load(path string) (*Document, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading theme %s: %w", path, err)
	}
	return unmarshal(k)
}

// Parse parses a theme document from raw YAML.
func Parse(data []byte) (*Document, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Document, error) {
	var doc Document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling theme: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("theme has no name")
	}
	return &doc, nil
}
