package router

import (
	"time"

	"github.com/forumhub/forum-hub-backend/internal/handlers"
	"github.com/forumhub/forum-hub-backend/internal/middleware"
	"github.com/forumhub/forum-hub-backend/internal/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with the forum routes
func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Location", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create services
	authService := auth.NewAuthService(db)

	// Create middleware with services
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(authService)

	// Create handlers
	authHandler := handlers.NewAuthHandler(authService)
	topicHandler := handlers.NewTopicHandler(db)
	answerHandler := handlers.NewAnswerHandler(db)
	courseHandler := handlers.NewCourseHandler(db)
	reportHandler := handlers.NewReportHandler(db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Public routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Protected routes
		protected := api.Group("")
		protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			topics := protected.Group("/topics")
			{
				topics.POST("", topicHandler.CreateTopic)
				topics.GET("", topicHandler.GetTopics)
				topics.GET("/export", reportHandler.ExportTopics)
				topics.GET("/:id", topicHandler.GetTopicByID)
				topics.PUT("/:id", topicHandler.UpdateTopic)
				topics.DELETE("/:id", topicHandler.DeleteTopic)
				topics.GET("/:id/answers", topicHandler.GetTopicAnswers)
			}

			answers := protected.Group("/answers")
			{
				answers.POST("", answerHandler.CreateAnswer)
				answers.PUT("/:id", answerHandler.UpdateAnswer)
				answers.DELETE("/:id", answerHandler.DeleteAnswer)
				answers.PATCH("/:id/solution", answerHandler.MarkSolution)
			}

			courses := protected.Group("/courses")
			{
				courses.POST("", courseHandler.CreateCourse)
				courses.GET("", courseHandler.GetCourses)
			}
		}
	}

	return r
}
