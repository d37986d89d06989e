package builder

import (
	"fmt"
	"sort"
)

// Element is the declarative description of a DOM subtree.
type Element struct {
	// Tag is the element name. Empty means a fragment: no markup of its
	// own, children spliced inline, and all bindings ignored.
	Tag string

	// Attrs are static attributes, emitted as quoted, entity-escaped
	// text. A nil value means "not present" and is skipped; empty
	// strings, zeros and false are emitted.
	Attrs map[string]any

	// Props are dynamic property bindings, passed through to the engine
	// unescaped. nil values are skipped.
	Props map[string]any

	// Events are event handler bindings. nil values are skipped.
	Events map[string]any

	// Directives are opaque engine tokens bound inside the opening tag
	// with no attribute name of their own.
	Directives []any

	// Children are nested nodes: *Element, *template.Result, or plain
	// text strings. Anything else is coerced to text.
	Children []any
}

// Fragment returns a tagless element that splices its children inline
// without wrapping markup.
func Fragment(children ...any) *Element {
	return &Element{Children: children}
}

// sortedKeys returns the map keys in sorted order. Go map iteration is
// unordered, so attribute and binding emission sorts for deterministic
// output.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// attrText converts a static attribute value to its text form.
func attrText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
