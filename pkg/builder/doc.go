// Package builder compiles declarative element descriptors into tagged
// templates.
//
// An Element describes a DOM subtree as plain data: a tag name, static
// attributes, dynamic property and event bindings, directives, and
// children. Build walks the tree depth-first and emits the
// (fragments, values) pair the template engine consumes:
//
//	res := builder.Build(&builder.Element{
//	    Tag:   "button",
//	    Attrs: map[string]any{"class": "primary"},
//	    Events: map[string]any{"click": onClick},
//	    Children: []any{"Save"},
//	})
//	html, err := template.NewRenderer(template.RendererConfig{}).RenderToString(res)
//
// The compiler is a mechanical transformation, not a validator. Tag names
// and attribute keys are filtered to [A-Za-z0-9-_], attribute values are
// entity-escaped, and everything else passes through untouched. Malformed
// input produces degenerate markup (an all-symbolic tag compiles to
// "<></>"); any resulting failure surfaces in the engine's parser, not
// here. The compiler raises no errors of its own.
//
// Property, event and directive values are never escaped: they travel as
// out-of-band dynamic values, each immediately followed by a fragment
// boundary, so len(Strings) == len(Values)+1 holds for every output.
//
// # Serialization
//
// Descriptor trees can be reconstructed from JSON or YAML via DecodeJSON,
// DecodeYAML and DecodeFile. Only tag, attributes, plain-valued
// properties and children survive round-tripping; events and directives
// carry live callables and opaque engine tokens, which have no serialized
// form and are ignored when present in input. This is a caller contract,
// not a runtime check.
package builder
