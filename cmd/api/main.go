// server/cmd/api/main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sanjivani-agritech-api-server/config"
	"sanjivani-agritech-api-server/internal/api/routes"
	"sanjivani-agritech-api-server/internal/database"
	"sanjivani-agritech-api-server/internal/socket"
	"sanjivani-agritech-api-server/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load .env (optional) and configuration
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be configured")
	}

	// 2. Connect to MongoDB. A failed connection leaves the server running
	// degraded; resource operations fail until the store comes back.
	db, err := database.Connect(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Printf("MongoDB connection failed: %v", err)
		log.Println("Server will continue running, but database operations will fail until the connection is established")
	} else if err := database.EnsureIndexes(db.Database); err != nil {
		log.Printf("Failed to ensure indexes: %v", err)
	}

	// 3. Image storage is optional; the upload endpoint answers 503 without it.
	var uploader *storage.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = storage.NewUploader(cfg.S3)
		if err != nil {
			log.Printf("Failed to initialize S3 uploader: %v", err)
		}
	}

	// 4. Admin dashboard notification hub
	wsHub := socket.NewHub()

	// 5. Close the store connection on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		if err := db.Close(); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		} else {
			log.Println("MongoDB connection closed through app termination")
		}
		os.Exit(0)
	}()

	// 6. Wire everything into the router and start serving
	router := routes.SetupRouter(cfg, db, uploader, wsHub)

	log.Printf("Starting API server on port %s (%s)", cfg.Server.Port, cfg.Server.Env)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
