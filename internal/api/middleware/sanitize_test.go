package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRequestStripsScriptFromBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeRequest())

	var seen map[string]interface{}
	r.POST("/echo", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&seen))
		c.JSON(http.StatusOK, seen)
	})

	body := `{"message":"<script>alert(1)</script>hello","nested":{"note":"<b>x</b>"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", seen["message"])
	assert.Equal(t, "x", seen["nested"].(map[string]interface{})["note"])
}

func TestSanitizeRequestCleansQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeRequest())
	r.GET("/q", func(c *gin.Context) {
		c.String(http.StatusOK, c.Query("search"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/q?search=%3Cscript%3Ealert(1)%3C%2Fscript%3Eplanter", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "planter", w.Body.String())
}

func TestSanitizeRequestLeavesMalformedJSONForBinder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeRequest())
	r.POST("/echo", func(c *gin.Context) {
		var v map[string]interface{}
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, v)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"broken`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeRequestPreservesNonStringValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeRequest())
	r.POST("/echo", func(c *gin.Context) {
		raw, _ := c.GetRawData()
		c.Data(http.StatusOK, "application/json", raw)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"count":5,"active":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, float64(5), out["count"])
	assert.Equal(t, true, out["active"])
}
