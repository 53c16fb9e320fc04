package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type bookingForm struct {
	Name          string `json:"name" binding:"required,min=2,max=100,letterspace"`
	Phone         string `json:"phone" binding:"required,min=10,max=15,phonefmt"`
	PreferredDate string `json:"preferredDate" binding:"omitempty,notpastdate"`
}

func newValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	r := gin.New()
	r.POST("/book", func(c *gin.Context) {
		var form bookingForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLetterspaceRule(t *testing.T) {
	r := newValidationRouter()

	w := postJSON(r, `{"name":"Priya Sharma","phone":"+91 98765 43210"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, `{"name":"R0b0t","phone":"+91 98765 43210"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "letterspace")
}

func TestPhoneFormatRule(t *testing.T) {
	r := newValidationRouter()

	w := postJSON(r, `{"name":"Priya Sharma","phone":"not a phone#"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, `{"name":"Priya Sharma","phone":"(020) 1234-5678"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotPastDateRule(t *testing.T) {
	r := newValidationRouter()

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	w := postJSON(r, `{"name":"Priya Sharma","phone":"+91 98765 43210","preferredDate":"`+yesterday+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "notpastdate")

	today := time.Now().Format("2006-01-02")
	w = postJSON(r, `{"name":"Priya Sharma","phone":"+91 98765 43210","preferredDate":"`+today+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	w = postJSON(r, `{"name":"Priya Sharma","phone":"+91 98765 43210","preferredDate":"`+tomorrow+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotPastDateRejectsGarbage(t *testing.T) {
	r := newValidationRouter()
	w := postJSON(r, `{"name":"Priya Sharma","phone":"+91 98765 43210","preferredDate":"not-a-date"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
