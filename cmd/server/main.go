package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitquest/habit-tree-api/internal/config"
	"github.com/habitquest/habit-tree-api/internal/database"
	"github.com/habitquest/habit-tree-api/internal/handlers"
	"github.com/habitquest/habit-tree-api/internal/middleware"
	"github.com/habitquest/habit-tree-api/internal/repository"
	"github.com/habitquest/habit-tree-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the habit catalog
	if err := database.SeedHabitNodes(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed habit catalog: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	habitRepo := repository.NewHabitRepository(database.GetDB())
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	habitService := services.NewHabitService(habitRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	habitHandler := handlers.NewHabitHandler(habitService)

	// Initialize Gin router
	r := gin.Default()

	// Liveness endpoint
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend server is running!")
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Habit routes (protected)
		habits := api.Group("/habits")
		habits.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			habits.GET("", habitHandler.ListHabits)
			habits.GET("/tree", habitHandler.GetTree)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
