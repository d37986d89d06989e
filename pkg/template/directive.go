package template

import (
	"sort"
	"strings"
)

// Directive is an opaque dynamic token bound inside an element's opening
// tag with no attribute name of its own. The renderer invokes Attr() and
// splices the returned text into the tag verbatim.
type Directive interface {
	// Attr returns the attribute text to emit, or "" for nothing.
	Attr() string
}

// classMap renders a class attribute from a set of toggled class names.
type classMap struct {
	classes map[string]bool
}

// ClassMap returns a directive that renders a class attribute containing
// every map key whose value is true, in sorted order.
func ClassMap(classes map[string]bool) Directive {
	return &classMap{classes: classes}
}

// Attr implements Directive.
func (c *classMap) Attr() string {
	names := make([]string, 0, len(c.classes))
	for name, on := range c.classes {
		if on {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return `class="` + escapeAttr(strings.Join(names, " ")) + `"`
}

// styleMap renders a style attribute from a property map.
type styleMap struct {
	styles map[string]string
}

// StyleMap returns a directive that renders a style attribute with the
// given CSS properties, in sorted order.
func StyleMap(styles map[string]string) Directive {
	return &styleMap{styles: styles}
}

// Attr implements Directive.
func (s *styleMap) Attr() string {
	if len(s.styles) == 0 {
		return ""
	}
	props := make([]string, 0, len(s.styles))
	for name, value := range s.styles {
		props = append(props, name+": "+value)
	}
	sort.Strings(props)
	return `style="` + escapeAttr(strings.Join(props, "; ")) + `"`
}

// boolAttr renders a valueless attribute when its condition holds.
type boolAttr struct {
	name string
	on   bool
}

// BoolAttr returns a directive that emits the bare attribute name when on
// is true and nothing otherwise (disabled, checked, etc.).
func BoolAttr(name string, on bool) Directive {
	return &boolAttr{name: name, on: on}
}

// Attr implements Directive.
func (b *boolAttr) Attr() string {
	if !b.on {
		return ""
	}
	return b.name
}
