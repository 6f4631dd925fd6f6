package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"milesconnect-ml/internal/api/handlers"
	"milesconnect-ml/internal/api/middleware"
	"milesconnect-ml/internal/inference"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development reads settings from .env; a missing file is fine.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8000"
	}

	modelDir := os.Getenv("MODEL_DIR")
	if modelDir == "" {
		modelDir = "./models"
	}
	log.Printf("Loading model artifacts from %s", modelDir)

	// Missing or corrupt artifacts are logged and skipped; the matching
	// endpoints answer 503 until the artifact is fixed.
	registry := inference.LoadRegistry(modelDir)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(corsOrigins()))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(registry)
	driverHandler := handlers.NewDriverHandler(registry)
	maintenanceHandler := handlers.NewMaintenanceHandler(registry)
	demandHandler := handlers.NewDemandHandler(registry)

	router.GET("/health", healthHandler.Check)

	api := router.Group("/api/ml")
	{
		api.POST("/driver-score", driverHandler.Score)
		api.POST("/driver-score/batch", driverHandler.ScoreBatch)
		api.POST("/maintenance-prediction", maintenanceHandler.Predict)
		api.POST("/demand-forecast", demandHandler.Forecast)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting ML API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func corsOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		parts := strings.Split(env, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return []string{"http://localhost:3000", "http://localhost:3001"}
}
