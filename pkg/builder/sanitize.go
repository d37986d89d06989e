package builder

import "strings"

// Sanitize filters a raw string down to the identifier character set
// [A-Za-z0-9-_], preserving the order of the remaining characters. Every
// other character is silently dropped, not escaped, so distinct inputs
// can collapse to the same identifier ("a<b" and "ab" sanitize
// identically). Pure, total, idempotent.
//
// Sanitize is applied to tag names and attribute, property and event keys
// before they are embedded in emitted markup. It is never used for text
// content or attribute values; those are entity-escaped instead, a
// distinct and non-interchangeable transformation.
func Sanitize(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' || c == '-' || c == '_' {
			buf.WriteByte(c)
		}
	}

	return buf.String()
}
