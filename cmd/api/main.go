package main

import (
	"fmt"
	"net/http"
	"os"

	"dango/internal/config"
	"dango/internal/database"
	"dango/internal/handlers"
	"dango/internal/logger"
	"dango/internal/middleware"
	"dango/internal/services"
	"dango/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "dango/internal/docs" // Import swagger docs
)

// @title           Dango Tracker API
// @version         1.0
// @description     Dango Tracker is a personal finance, journal, and to-do tracking application.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	entryService := services.NewEntryService(db)
	journalService := services.NewJournalService(db)
	categoryService := services.NewCategoryService(db)
	todoService := services.NewTodoService(db)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	entryHandler := handlers.NewEntryHandler(entryService)
	journalHandler := handlers.NewJournalHandler(journalService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	todoHandler := handlers.NewTodoHandler(todoService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/sign-up", authHandler.SignUp)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Dashboard
	protected.GET("/dashboard", dashboardHandler.GetSummary)

	// Financial entry routes
	entries := protected.Group("/entries")
	entries.POST("", entryHandler.CreateEntry)
	entries.GET("", entryHandler.GetUserEntries)
	entries.GET("/daily", entryHandler.GetDailySummary)
	entries.DELETE("/:id", entryHandler.DeleteEntry)

	// Journal routes
	journal := protected.Group("/journal")
	journal.POST("", journalHandler.CreateEntry)
	journal.GET("", journalHandler.GetUserEntries)
	journal.GET("/:id", journalHandler.GetEntryByID)
	journal.PATCH("/:id", journalHandler.UpdateEntry)
	journal.DELETE("/:id", journalHandler.DeleteEntry)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// To-do routes
	todos := protected.Group("/todos")
	todos.POST("", todoHandler.CreateTodo)
	todos.GET("", todoHandler.GetUserTodos)
	todos.PATCH("/:id", todoHandler.UpdateTodo)
	todos.DELETE("/:id", todoHandler.DeleteTodo)

	log.Infof("Starting Dango Tracker backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
