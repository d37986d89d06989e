package builder

import (
	"fmt"

	"github.com/mizushino/lit-builder/pkg/template"
)

// acc accumulates the fragment and value lists of a template under
// construction. The last fragment is the open one currently being
// appended to.
type acc struct {
	strings []string
	values  []any
}

// newAcc returns an accumulator initialized to ([""], []).
func newAcc() *acc {
	return &acc{strings: []string{""}}
}

// text appends literal text to the open fragment.
func (a *acc) text(s string) {
	a.strings[len(a.strings)-1] += s
}

// value pushes a dynamic value and opens a fresh fragment. The engine's
// binding contract requires every value to be immediately followed by a
// fragment boundary; two values are never adjacent in the output.
func (a *acc) value(v any) {
	a.values = append(a.values, v)
	a.strings = append(a.strings, "")
}

// Build compiles one or more nodes into a tagged-template Result, exactly
// as if the emitted fragments and values had been written as the literal
// and interpolated segments of a single template literal.
//
// Each call allocates its own accumulator pair; concurrent calls are safe
// without locking.
func Build(nodes ...any) *template.Result {
	a := newAcc()
	for _, node := range nodes {
		compile(node, a)
	}
	return template.Html(a.strings, a.values)
}

// compile walks one node depth-first into the accumulators.
//
// Node kinds, in precedence order: plain text, precompiled fragment,
// tagless fragment element, tagged element. Anything else is coerced to
// text; the compiler accepts any shape reachable from the data model and
// never fails.
func compile(node any, a *acc) {
	switch v := node.(type) {
	case nil:
		// Ignore nil (allows conditional children).
	case string:
		// Verbatim: the engine applies the same escaping it would to
		// literal text in a hand-written template.
		a.text(v)
	case *template.Result:
		// Precompiled fragment: bound as a dynamic value so the engine
		// splices it directly, bypassing the text-escaping path.
		a.value(v)
	case *Element:
		compileElement(v, a)
	case Element:
		compileElement(&v, a)
	case []any:
		for _, child := range v {
			compile(child, a)
		}
	case []*Element:
		for _, child := range v {
			compile(child, a)
		}
	default:
		a.text(fmt.Sprint(v))
	}
}

// compileElement emits one element descriptor.
func compileElement(el *Element, a *acc) {
	if el == nil {
		return
	}

	if el.Tag == "" {
		// Fragment: no markup of its own. Attrs, props, events and
		// directives are meaningless without a tag and are ignored.
		for _, child := range el.Children {
			compile(child, a)
		}
		return
	}

	tag := Sanitize(el.Tag)
	a.text("<" + tag)

	for _, key := range sortedKeys(el.Attrs) {
		value := el.Attrs[key]
		if value == nil {
			continue
		}
		a.text(` ` + Sanitize(key) + `="` + escapeAttr(attrText(value)) + `"`)
	}

	for _, key := range sortedKeys(el.Props) {
		value := el.Props[key]
		if value == nil {
			continue
		}
		a.text(" ." + Sanitize(key) + "=")
		a.value(value)
	}

	for _, key := range sortedKeys(el.Events) {
		value := el.Events[key]
		if value == nil {
			continue
		}
		a.text(" @" + Sanitize(key) + "=")
		a.value(value)
	}

	for _, directive := range el.Directives {
		a.text(" ")
		a.value(directive)
	}

	a.text(">")

	for _, child := range el.Children {
		compile(child, a)
	}

	a.text("</" + tag + ">")
}
