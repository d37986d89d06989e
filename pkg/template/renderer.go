package template

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// DisableHydrationIDs turns off data-hid assignment for event
	// bindings. Handlers are then not collected.
	DisableHydrationIDs bool
}

// Renderer consumes compiled Results and produces HTML.
type Renderer struct {
	config     RendererConfig
	hidCounter uint32
	handlers   map[string]any
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{
		config:   config,
		handlers: make(map[string]any),
	}
}

// RenderToString renders a Result to a complete HTML string.
func (r *Renderer) RenderToString(res *Result) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, res); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render streams a Result to the given writer.
func (r *Renderer) Render(w io.Writer, res *Result) error {
	return r.renderResult(w, res, &walkState{})
}

// GetHandlers returns the event handler registry collected during
// rendering. The map keys are in the format "hid_oneventname"
// (e.g., "h1_onclick").
func (r *Renderer) GetHandlers() map[string]any {
	return r.handlers
}

// Reset resets the renderer state for reuse.
// This clears the HID counter and handler registry.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(map[string]any)
}

// walkState tracks the markup position while fragments and values are
// interleaved.
type walkState struct {
	inTag   bool   // between '<' and '>' of a tag
	elemHID string // hydration ID assigned to the current element, if any
}

// scan advances the position state over a static fragment.
// Escaped text never contains raw angle brackets, so a flat character
// scan is sufficient.
func (st *walkState) scan(chunk string) {
	for i := 0; i < len(chunk); i++ {
		switch chunk[i] {
		case '<':
			st.inTag = true
			st.elemHID = ""
		case '>':
			st.inTag = false
		}
	}
}

// bindKind classifies a binding position.
type bindKind int

const (
	bindNone bindKind = iota
	bindAttr
	bindProp
	bindEvent
)

// isIdentChar reports whether c may appear in a sanitized identifier.
func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}

// trailingMarker parses a binding marker from the tail of an in-tag
// fragment ending in '='. It returns the attribute name, the binding kind,
// and the offset at which the marker (including any '.' or '@' prefix)
// begins. A fragment with no identifier before the '=' yields bindNone.
func trailingMarker(chunk string) (name string, kind bindKind, cut int) {
	end := len(chunk) - 1 // position of '='
	start := end
	for start > 0 && isIdentChar(chunk[start-1]) {
		start--
	}
	if start == end {
		return "", bindNone, 0
	}
	name = chunk[start:end]
	kind = bindAttr
	cut = start
	if start > 0 {
		switch chunk[start-1] {
		case '.':
			kind = bindProp
			cut = start - 1
		case '@':
			kind = bindEvent
			cut = start - 1
		}
	}
	return name, kind, cut
}

// renderResult interleaves a Result's fragments and values into w.
func (r *Renderer) renderResult(w io.Writer, res *Result, st *walkState) error {
	if len(res.Strings) != len(res.Values)+1 {
		return fmt.Errorf("template: malformed result: %d fragments for %d values",
			len(res.Strings), len(res.Values))
	}

	for i, value := range res.Values {
		chunk := res.Strings[i]
		next := *st
		next.scan(chunk)

		if !next.inTag {
			// Node position.
			if _, err := io.WriteString(w, chunk); err != nil {
				return err
			}
			*st = next
			if err := r.renderNodeValue(w, value, st); err != nil {
				return err
			}
			continue
		}

		if strings.HasSuffix(chunk, "=") {
			name, kind, cut := trailingMarker(chunk)
			if kind != bindNone {
				if _, err := io.WriteString(w, chunk[:cut]); err != nil {
					return err
				}
				*st = next
				var err error
				switch kind {
				case bindProp, bindAttr:
					err = r.renderAttrValue(w, name, value)
				case bindEvent:
					err = r.renderEventValue(w, name, value, st)
				}
				if err != nil {
					return err
				}
				continue
			}
		}

		// Directive position: a bare binding inside the opening tag.
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		*st = next
		if err := r.renderDirective(w, value); err != nil {
			return err
		}
	}

	last := res.Strings[len(res.Strings)-1]
	if _, err := io.WriteString(w, last); err != nil {
		return err
	}
	st.scan(last)
	return nil
}

// renderNodeValue renders a value bound between elements.
func (r *Renderer) renderNodeValue(w io.Writer, value any, st *walkState) error {
	switch v := value.(type) {
	case nil:
		return nil
	case *Result:
		// Precompiled fragment: splice, bypassing the escaping path.
		return r.renderResult(w, v, st)
	case []any:
		for _, item := range v {
			if err := r.renderNodeValue(w, item, st); err != nil {
				return err
			}
		}
		return nil
	case string:
		_, err := io.WriteString(w, escapeHTML(v))
		return err
	case Directive:
		// Directives are meaningful only inside an opening tag.
		return nil
	default:
		_, err := io.WriteString(w, escapeHTML(attrToString(v)))
		return err
	}
}

// renderAttrValue reflects a property or attribute binding as a plain
// attribute. nil means "not present" and emits nothing.
func (r *Renderer) renderAttrValue(w io.Writer, name string, value any) error {
	if value == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, `%s="%s"`, name, escapeAttr(attrToString(value)))
	return err
}

// renderEventValue emits a client binding marker for an event handler and
// registers the handler under the element's hydration ID.
func (r *Renderer) renderEventValue(w io.Writer, name string, value any, st *walkState) error {
	if value == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, `data-on-%s="true"`, name); err != nil {
		return err
	}
	if r.config.DisableHydrationIDs {
		return nil
	}
	if st.elemHID == "" {
		st.elemHID = r.nextHID()
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, st.elemHID); err != nil {
			return err
		}
	}
	r.handlers[st.elemHID+"_on"+name] = value
	return nil
}

// renderDirective splices a directive's attribute text into the tag.
// Values that are neither directives nor strings are dropped.
func (r *Renderer) renderDirective(w io.Writer, value any) error {
	switch v := value.(type) {
	case Directive:
		_, err := io.WriteString(w, v.Attr())
		return err
	case string:
		_, err := io.WriteString(w, v)
		return err
	default:
		return nil
	}
}

// nextHID generates the next sequential hydration ID.
func (r *Renderer) nextHID() string {
	r.hidCounter++
	return fmt.Sprintf("h%d", r.hidCounter)
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
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
