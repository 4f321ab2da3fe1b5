package main

import (
	"log"
	"net/http"
	"os"

	"github.com/maharit108/Coffee-Talk-API/config"
	"github.com/maharit108/Coffee-Talk-API/handlers"
	"github.com/maharit108/Coffee-Talk-API/middleware"
	"github.com/maharit108/Coffee-Talk-API/repositories"
	"github.com/maharit108/Coffee-Talk-API/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Auth routes (public)
	router.POST("/sign-up", authHandler.SignUp)
	router.POST("/sign-in", authHandler.SignIn)

	// Public article listing
	router.GET("/articles", articleHandler.ListArticles)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PATCH("/change-password", authHandler.ChangePassword)

		protected.GET("/articles/:authorId", articleHandler.ListArticlesByAuthor)
		protected.POST("/article", articleHandler.CreateArticle)
		protected.PATCH("/article/:id", articleHandler.EditArticle)
		protected.PATCH("/articleVote/:id", articleHandler.VoteArticle)
		protected.DELETE("/article/:id", articleHandler.DeleteArticle)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
