package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"script tag with payload", `hello <script>alert(1)</script>world`, "hello world"},
		{"script tag case insensitive", `<SCRIPT src="x.js"></SCRIPT>safe`, "safe"},
		{"plain html stripped", `<b>bold</b> and <i>italic</i>`, "bold and italic"},
		{"unclosed tag stripped", `text <img src=x onerror=alert(1)`, "text <img src=x onerror=alert(1)"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"clean text untouched", "just a normal message", "just a normal message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.input))
		})
	}
}

func TestValueRecurses(t *testing.T) {
	input := map[string]interface{}{
		"name": "<script>alert(1)</script>Priya",
		"nested": map[string]interface{}{
			"bio": "<b>hi</b>",
		},
		"tags":  []interface{}{"<i>one</i>", "two"},
		"count": float64(3),
	}

	out := Value(input).(map[string]interface{})
	assert.Equal(t, "Priya", out["name"])
	assert.Equal(t, "hi", out["nested"].(map[string]interface{})["bio"])
	assert.Equal(t, "one", out["tags"].([]interface{})[0])
	assert.Equal(t, float64(3), out["count"])
}

func TestStringNeverContainsScriptTag(t *testing.T) {
	out := String(`<script>alert(1)</script>`)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert(1)")
}
