package fxcss

import "sort"

// knownProperties is the set of property names the styler setters emit.
// Custom properties are not listed; verification tooling treats unknown
// -fx- names as errors.
var knownProperties = map[string]bool{
	"-fx-opacity":             true,
	"-fx-rotate":              true,
	"-fx-effect":              true,
	"-fx-cursor":              true,
	"visibility":              true,
	"-fx-background-color":    true,
	"-fx-background-radius":   true,
	"-fx-background-image":    true,
	"-fx-background-position": true,
	"-fx-background-repeat":   true,
	"-fx-background-size":     true,
	"-fx-border-color":        true,
	"-fx-border-style":        true,
	"-fx-border-width":        true,
	"-fx-border-radius":       true,
	"-fx-padding":             true,
	"-fx-shape":               true,
	"-fx-scale-shape":         true,
	"-fx-position-shape":      true,
	"-fx-fill":                true,
	"-fx-smooth":              true,
	"-fx-stroke":              true,
	"-fx-stroke-type":         true,
	"-fx-stroke-width":        true,
	"-fx-stroke-dash-array":   true,
	"-fx-stroke-dash-offset":  true,
	"-fx-stroke-line-cap":     true,
	"-fx-stroke-line-join":    true,
	"-fx-stroke-miter-limit":  true,
	"-fx-font-family":         true,
	"-fx-font-size":           true,
	"-fx-font-weight":         true,
	"-fx-font-style":          true,
	"-fx-font-smoothing-type": true,
	"-fx-underline":           true,
	"-fx-strikethrough":       true,
	"-fx-text-alignment":      true,
	"-fx-text-origin":         true,
}

// KnownProperty reports whether name is a property the library's setters
// emit.
func KnownProperty(name string) bool {
	return knownProperties[name]
}

// PropertyNames returns the sorted list of property names the library's
// setters emit.
func PropertyNames() []string {
	names := make([]string, 0, len(knownProperties))
	for name := range knownProperties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
