// Package template is the tagged-template engine consumed by the builder.
//
// A compiled template is a Result: an ordered list of static HTML fragments
// and an ordered list of dynamic values, where every value is anchored
// immediately after the fragment at the same index. The single structural
// contract is:
//
//	len(Strings) == len(Values) + 1
//
// Result is the explicit discriminant for precompiled fragments: a nested
// *Result embedded as a dynamic value is spliced into its binding position
// verbatim, bypassing text escaping.
//
// # Rendering
//
// Renderer interleaves the two lists into HTML:
//
//	res := template.Html([]string{"<p>", "</p>"}, []any{"hi"})
//	r := template.NewRenderer(template.RendererConfig{})
//	html, err := r.RenderToString(res)
//
// Binding positions are classified from the static text preceding each
// value:
//
//   - node position: nested results spliced, everything else escaped text
//   - ".name=" inside a tag: property, reflected as a plain attribute
//   - "@name=" inside a tag: event, emitted as a data-on-* marker with a
//     hydration ID; handlers are collected via GetHandlers()
//   - bare position inside a tag: directive, rendered via the Directive
//     interface
//
// # Security
//
// Node-position text is escaped by default. Raw markup only enters the
// output through static fragments and nested results, both of which are
// produced by the compiler, never by interpolated data.
package template
