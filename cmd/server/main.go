package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forumhub/forum-hub-backend/docs"
	"github.com/forumhub/forum-hub-backend/internal/database"
	"github.com/forumhub/forum-hub-backend/internal/router"
	"github.com/forumhub/forum-hub-backend/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Forum Hub API
// @version 1.0
// @description Forum backend with JWT authentication: topics, answers, solutions
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter `Bearer ` followed by your JWT token (e.g. "Bearer <token>")

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	docs.SwaggerInfo.Host = getEnv("API_HOST", "localhost:8080")

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Initialize database connection
	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize router
	r := router.SetupRouter(db)

	// Configure HTTP server
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
