package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ginContextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 20},
		{"page=2&limit=10", 2, 10},
		{"page=0&limit=-5", 1, 20},
		{"page=abc&limit=xyz", 1, 20},
		{"limit=5000", 1, 100},
	}

	for _, tt := range tests {
		c := ginContextWithQuery(tt.query)
		page, limit := parsePagination(c)
		assert.Equal(t, tt.wantPage, page, "query %q", tt.query)
		assert.Equal(t, tt.wantLimit, limit, "query %q", tt.query)
	}
}

func TestBuildPagination(t *testing.T) {
	p := buildPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, int64(3), p.Pages)

	p = buildPagination(1, 20, 0)
	assert.Equal(t, int64(0), p.Pages)

	p = buildPagination(1, 20, 40)
	assert.Equal(t, int64(2), p.Pages)
}

func TestIsObjectIDHex(t *testing.T) {
	assert.True(t, isObjectIDHex("64a1f0c2e4b0a1b2c3d4e5f6"))
	assert.True(t, isObjectIDHex("64A1F0C2E4B0A1B2C3D4E5F6"))
	assert.False(t, isObjectIDHex("seed-planter-3000"))
	assert.False(t, isObjectIDHex("64a1f0c2e4b0a1b2c3d4e5f"))   // 23 chars
	assert.False(t, isObjectIDHex("64a1f0c2e4b0a1b2c3d4e5f6a")) // 25 chars
	assert.False(t, isObjectIDHex(""))
}
