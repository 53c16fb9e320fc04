// server/internal/api/handlers/health_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"sanjivani-agritech-api-server/internal/database"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	DB  *database.MongoDB
	Env string
}

// Health is the basic "server is up" check.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Server is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.Env,
	})
}

// Ready reports whether the service can serve traffic: 503 until the store
// connection is established and answering pings.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.DB == nil || h.DB.Ping(context.Background()) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success":   false,
			"message":   "Service not ready - database disconnected",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Service is ready",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Live is the liveness probe; it answers as long as the process runs.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Service is alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
