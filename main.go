package main

import (
	"cafeapi/auth"
	"cafeapi/config"
	"cafeapi/controller"
	"cafeapi/database"
	"cafeapi/metrics"
	"cafeapi/route"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// Set Gin mode
	if cfg.Debug {
		log.Println("Running in debug mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	log.Println("CORS configured")

	m := metrics.New()
	router.Use(m.Middleware())
	router.GET("/metrics", m.Handler())

	route.CafeRoutes(router, controller.NewCafeController(db), auth.APIKey{
		Plain: cfg.APIKey,
		Hash:  cfg.APIKeyHash,
	})
	log.Println("Routes configured successfully")

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
