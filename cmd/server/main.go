package main

import (
	"fmt"
	"log"
	"net/http"

	"hitbox/backend/internal/auth"
	"hitbox/backend/internal/catalog"
	"hitbox/backend/internal/config"
	"hitbox/backend/internal/database"
	"hitbox/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "hitbox/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Hitbox API
// @version         1.0
// @description     This is the API for the Hitbox game cataloguing service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey TokenAuth
// @in header
// @name x-auth-token
func main() {
	cfg := config.AppConfig

	// Connect to the database
	database.Connect(cfg.DatabaseURL)

	// Wire the external catalogs
	tokens := catalog.NewTokenManager(cfg.TwitchClientID, cfg.TwitchClientSecret)
	handler.Init(
		catalog.NewClient(cfg.TwitchClientID, tokens),
		catalog.NewRAWGClient(cfg.RAWGAPIKey),
	)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
			authRoutes.POST("/logout", auth.AuthMiddleware(), handler.LogoutUser)
			authRoutes.GET("/me", auth.AuthMiddleware(), handler.GetMe)
			authRoutes.PUT("/me", auth.AuthMiddleware(), handler.UpdateMe)
		}

		// Game browse/detail (public, viewer context optional)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.OptionalAuthMiddleware())
		{
			gameRoutes.GET("", handler.BrowseGames)
			gameRoutes.GET("/:id", handler.GetGameByID)
		}

		// Review routes
		reviewRoutes := apiV1.Group("/reviews")
		{
			reviewRoutes.POST("", auth.AuthMiddleware(), handler.CreateReview)
			reviewRoutes.GET("/game/:gameId", handler.GetGameReviews)
		}

		// List routes
		listRoutes := apiV1.Group("/lists")
		{
			listRoutes.GET("", auth.AuthMiddleware(), handler.GetMyLists)
			listRoutes.POST("", auth.AuthMiddleware(), handler.CreateList)
			listRoutes.GET("/:id", handler.GetList)
			listRoutes.POST("/:id/add", auth.AuthMiddleware(), handler.AddGameToList)
			listRoutes.DELETE("/:id", auth.AuthMiddleware(), handler.DeleteList)
			listRoutes.DELETE("/:id/games/:gameId", auth.AuthMiddleware(), handler.RemoveGameFromList)
		}

		// Game status routes (all protected)
		statusRoutes := apiV1.Group("/game-status")
		statusRoutes.Use(auth.AuthMiddleware())
		{
			statusRoutes.GET("", handler.GetMyStatuses)
			statusRoutes.POST("", handler.SetGameStatus)
			statusRoutes.GET("/counts", handler.GetStatusCounts)
			statusRoutes.GET("/game/:gameId", handler.GetGameStatus)
			statusRoutes.DELETE("/:gameId", handler.DeleteGameStatus)
		}

		// Comment routes
		commentRoutes := apiV1.Group("/comments")
		{
			commentRoutes.GET("/list/:listId", handler.GetListComments)
			commentRoutes.GET("/list/:listId/events", handler.StreamListComments)
			commentRoutes.POST("/list/:listId", auth.AuthMiddleware(), handler.CreateComment)
			commentRoutes.DELETE("/:commentId", auth.AuthMiddleware(), handler.DeleteComment)
		}

		// User routes (public profiles and member listing)
		userRoutes := apiV1.Group("/users")
		{
			userRoutes.GET("", handler.GetMembers)
			userRoutes.GET("/:username", handler.GetUserByUsername)
			userRoutes.GET("/:username/reviews", handler.GetUserReviews)
			userRoutes.GET("/:username/lists", handler.GetUserLists)
		}

		// Global stats
		apiV1.GET("/stats", handler.GetStats)
	}

	addr := ":" + cfg.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(addr))
}
