package main

import (
	"context"
	"log"

	"estimating-portal-backend/internal/api/routes"
	"estimating-portal-backend/internal/config"
	"estimating-portal-backend/internal/database"
	"estimating-portal-backend/internal/sheets"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "estimating-portal-backend/docs" // This is needed for swag
)

//	@title			Estimating Portal Backend API
//	@version		1.0
//	@description	Backend API for the construction-estimating dashboard: takeoff configuration, grid generation and version management against per-project workbooks.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database. The relational store is the fallback chain, not
	// the primary, so a failed migration is fatal but a slow database is
	// tolerated at runtime.
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize the document-service client
	client, err := sheets.NewClient(context.Background(), cfg.GoogleCredentialsFile)
	if err != nil {
		logrus.Fatal("Failed to initialize sheets client:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, client)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
