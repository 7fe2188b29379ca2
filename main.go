package main

import (
	"log"
	"net/http"
	"os"

	"gourmet-slice-web/api"
	"gourmet-slice-web/config"
	"gourmet-slice-web/handlers"
	"gourmet-slice-web/routes"
	"gourmet-slice-web/session"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Durable session storage (bearer token + cart survive restarts)
	store, err := session.NewStore(cfg.SessionDB)
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}
	sessions := session.NewManager(store, cfg.SessionCookie)

	client := api.New(cfg.APIBaseURL)
	h := handlers.New(client, sessions)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Gourmet Slice Web",
			"api":     cfg.APIBaseURL,
		})
	})

	// Register all screens
	routes.SetupRoutes(r, h, sessions)

	// Start server
	log.Printf("🍕 Gourmet Slice web running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
