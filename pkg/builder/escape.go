package builder

import "strings"

// escapeAttr escapes a static attribute value for embedding in template
// text. The escape set is fixed: < > & and the double quote. Dynamic
// values never pass through here; they are carried out-of-band and reach
// the engine unescaped.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
