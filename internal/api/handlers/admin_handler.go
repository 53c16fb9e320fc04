// server/internal/api/handlers/admin_handler.go
package handlers

import (
	"net/http"

	"sanjivani-agritech-api-server/config"
	"sanjivani-agritech-api-server/internal/api/middleware"
	"sanjivani-agritech-api-server/internal/auth"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Cfg config.Config
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminUser struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Login authenticates the single environment-configured admin account and
// issues a JWT, returned in the body and set as an httpOnly cookie. Logout
// is stateless; an issued token stays valid until its natural expiry.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if h.Cfg.Admin.Email == "" || h.Cfg.Admin.Password == "" {
		respondError(c, http.StatusInternalServerError, "Admin credentials not configured")
		return
	}

	if req.Email != h.Cfg.Admin.Email || !auth.CheckAdminPassword(req.Password, h.Cfg.Admin.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	ttl := auth.ParseTTL(h.Cfg.JWT.Expire)
	token, err := auth.GenerateToken([]byte(h.Cfg.JWT.Secret), "admin", "admin", ttl)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, int(ttl.Seconds()), "/", "", h.Cfg.IsProduction(), true)

	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Login successful",
		Data: gin.H{
			"token": token,
			"user": AdminUser{
				ID:    "admin",
				Role:  "admin",
				Email: h.Cfg.Admin.Email,
			},
		},
	})
}

// Logout clears the auth cookie by expiring it. There is no server-side
// revocation list.
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.Cfg.IsProduction(), true)
	respondMessage(c, "Logged out successfully")
}

// Me returns the authenticated admin principal.
func (h *AdminHandler) Me(c *gin.Context) {
	respondOK(c, gin.H{
		"user": AdminUser{
			ID:    c.GetString(middleware.ContextUserID),
			Role:  c.GetString(middleware.ContextUserRole),
			Email: h.Cfg.Admin.Email,
		},
	})
}
