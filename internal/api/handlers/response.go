// server/internal/api/handlers/response.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// Envelope is the uniform response wrapper every endpoint returns.
type Envelope struct {
	Success    bool         `json:"success"`
	Data       interface{}  `json:"data,omitempty"`
	Message    string       `json:"message,omitempty"`
	Error      string       `json:"error,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// Pagination describes the page of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// FieldError names one violated constraint of a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

func respondUpdated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

func respondList(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Pagination: &p})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Error: message})
}

func respondNotFound(c *gin.Context, what string) {
	respondError(c, http.StatusNotFound, what+" not found")
}

// requireDB guards store-backed handlers when the boot-time connection
// failed and the handle is nil. Responds 503 and returns false so the
// server keeps answering while the store is away.
func requireDB(c *gin.Context, db *mongo.Database) bool {
	if db == nil {
		respondError(c, http.StatusServiceUnavailable, "Database not available")
		return false
	}
	return true
}

// respondBindError turns a ShouldBindJSON failure into a 400 envelope. A
// validator failure lists every violated field at once; anything else (bad
// JSON, wrong types) becomes a single error string.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrors,
		})
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please provide a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "letterspace":
		return fmt.Sprintf("%s can only contain letters and spaces", fe.Field())
	case "phonefmt":
		return "Please provide a valid phone number"
	case "notpastdate":
		return fmt.Sprintf("%s cannot be in the past", fe.Field())
	case "gte":
		return fmt.Sprintf("%s cannot be negative", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
