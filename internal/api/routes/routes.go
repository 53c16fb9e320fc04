// server/internal/api/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"sanjivani-agritech-api-server/config"
	"sanjivani-agritech-api-server/internal/api/handlers"
	"sanjivani-agritech-api-server/internal/api/middleware"
	"sanjivani-agritech-api-server/internal/database"
	"sanjivani-agritech-api-server/internal/socket"
	"sanjivani-agritech-api-server/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every dependency into the route tree. The store handle
// may be nil when the boot-time connection failed; resource routes then fail
// individually while health and liveness keep answering.
func SetupRouter(
	cfg config.Config,
	db *database.MongoDB,
	uploader *storage.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	middleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(corsMiddleware(cfg))

	jwtSecret := []byte(cfg.JWT.Secret)

	mongoDatabase := db.DatabaseOrNil()

	productHandler := &handlers.ProductHandler{DB: mongoDatabase}
	teamHandler := &handlers.TeamHandler{DB: mongoDatabase}
	projectHandler := &handlers.ProjectHandler{DB: mongoDatabase}
	contactHandler := &handlers.ContactHandler{DB: mongoDatabase, Hub: wsHub}
	bookingHandler := &handlers.BookingHandler{DB: mongoDatabase, Hub: wsHub}
	adminHandler := &handlers.AdminHandler{Cfg: cfg}
	healthHandler := &handlers.HealthHandler{DB: db, Env: cfg.Server.Env}
	uploadHandler := &handlers.UploadHandler{Uploader: uploader}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	api := router.Group("/api")
	api.Use(middleware.RateLimit(100, 15*time.Minute, "Too many requests from this IP, please try again later."))
	api.Use(middleware.SanitizeRequest())
	{
		// Health probes, no auth
		api.GET("/health", healthHandler.Health)
		api.GET("/health/ready", healthHandler.Ready)
		api.GET("/health/live", healthHandler.Live)

		// Public reads
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/team", teamHandler.ListTeamMembers)
		api.GET("/team/:id", teamHandler.GetTeamMember)
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:id", projectHandler.GetProject)

		// Public writes (lead capture)
		api.POST("/contact", contactHandler.SubmitContact)
		api.POST("/bookings", bookingHandler.SubmitBooking)

		// Admin authentication
		adminAuth := api.Group("/admin")
		{
			adminAuth.POST("/login",
				middleware.RateLimit(5, 15*time.Minute, "Too many login attempts, please try again later."),
				adminHandler.Login)
			adminAuth.POST("/logout", adminHandler.Logout)
		}

		// Admin-only routes
		admin := api.Group("/")
		admin.Use(middleware.Authenticate(jwtSecret))
		admin.Use(middleware.Authorize("admin"))
		{
			admin.GET("/admin/me", adminHandler.Me)
			admin.GET("/admin/ws", webSocketHandler.ServeWS)
			admin.POST("/admin/uploads", uploadHandler.UploadImage)

			admin.POST("/products", productHandler.CreateProduct)
			admin.PUT("/products/:id", productHandler.UpdateProduct)
			admin.DELETE("/products/:id", productHandler.DeleteProduct)

			admin.POST("/team", teamHandler.CreateTeamMember)
			admin.PUT("/team/:id", teamHandler.UpdateTeamMember)
			admin.DELETE("/team/:id", teamHandler.DeleteTeamMember)

			admin.POST("/projects", projectHandler.CreateProject)
			admin.PUT("/projects/:id", projectHandler.UpdateProject)
			admin.DELETE("/projects/:id", projectHandler.DeleteProject)

			admin.GET("/contact", contactHandler.ListContacts)
			admin.GET("/contact/:id", contactHandler.GetContact)
			admin.PUT("/contact/:id", contactHandler.UpdateContact)
			admin.DELETE("/contact/:id", contactHandler.DeleteContact)

			admin.GET("/bookings", bookingHandler.ListBookings)
			admin.GET("/bookings/:id", bookingHandler.GetBooking)
			admin.PUT("/bookings/:id", bookingHandler.UpdateBooking)
			admin.DELETE("/bookings/:id", bookingHandler.DeleteBooking)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Route not found",
		})
	})

	return router
}

// corsMiddleware builds the allow-list from the configured frontend and
// admin origins plus the fixed local dev entries. Outside production every
// origin is accepted.
func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.IsProduction() {
		origins := []string{
			"http://localhost:5173",
			"http://localhost:3000",
			"http://127.0.0.1:5173",
			"http://127.0.0.1:3000",
		}
		if cfg.CORS.FrontendURL != "" {
			origins = append(origins, cfg.CORS.FrontendURL)
		}
		if cfg.CORS.AdminURL != "" {
			origins = append(origins, cfg.CORS.AdminURL)
		}
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}
