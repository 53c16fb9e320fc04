// server/internal/api/middleware/sanitize.go
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"sanjivani-agritech-api-server/internal/sanitize"

	"github.com/gin-gonic/gin"
)

// SanitizeRequest strips HTML from every string in the JSON body, the query
// string and the path parameters before handlers bind them. Non-JSON bodies
// pass through untouched.
func SanitizeRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		sanitizeBody(c)
		sanitizeQuery(c)
		sanitizeParams(c)
		c.Next()
	}
}

func sanitizeBody(c *gin.Context) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return
	}
	contentType := c.ContentType()
	if contentType != "" && contentType != "application/json" {
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Malformed JSON is left for the binder to reject.
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	cleaned, err := json.Marshal(sanitize.Value(decoded))
	if err != nil {
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(cleaned))
	c.Request.ContentLength = int64(len(cleaned))
}

func sanitizeQuery(c *gin.Context) {
	query := c.Request.URL.Query()
	changed := false
	for key, values := range query {
		for i, v := range values {
			clean := sanitize.String(v)
			if clean != v {
				values[i] = clean
				changed = true
			}
		}
		query[key] = values
	}
	if changed {
		c.Request.URL.RawQuery = query.Encode()
	}
}

func sanitizeParams(c *gin.Context) {
	for i, p := range c.Params {
		c.Params[i].Value = sanitize.String(p.Value)
	}
}
