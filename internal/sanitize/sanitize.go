// server/internal/sanitize/sanitize.go

// Package sanitize strips HTML from untrusted input values. It is a
// defense-in-depth XSS guard applied before validation and binding, not a
// replacement for output encoding at the rendering boundary.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	scriptTag = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	htmlTag   = regexp.MustCompile(`<[^>]*>`)
)

// String removes script elements including their content, strips every
// remaining HTML tag, and trims surrounding whitespace.
func String(s string) string {
	s = scriptTag.ReplaceAllString(s, "")
	s = htmlTag.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Value walks a decoded JSON value and sanitizes every string it contains.
// Maps and slices are rewritten in place where possible; the cleaned value
// is returned.
func Value(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return String(val)
	case map[string]interface{}:
		for k, item := range val {
			val[k] = Value(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = Value(item)
		}
		return val
	default:
		return v
	}
}
