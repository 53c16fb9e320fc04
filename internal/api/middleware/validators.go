// server/internal/api/middleware/validators.go
package middleware

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	letterSpacePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phonePattern       = regexp.MustCompile(`^[\+]?[0-9\s\-\(\)]+$`)
)

// RegisterValidators installs the custom binding rules the public write
// endpoints use. Call once before the router handles traffic.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report violations under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("letterspace", func(fl validator.FieldLevel) bool {
		return letterSpacePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("phonefmt", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	// notpastdate accepts "2006-01-02" or RFC 3339 and rejects dates before
	// the current calendar day (time of day zeroed for the comparison).
	v.RegisterValidation("notpastdate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		date, err := ParseDate(value)
		if err != nil {
			return false
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		return !day.Before(today)
	})
}

// ParseDate accepts the two date shapes the frontend sends.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
