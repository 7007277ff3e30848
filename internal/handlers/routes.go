package handlers

import (
	"net/http"
	"time"

	"body-echo-api/internal/middleware"
	"body-echo-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	EchoService services.EchoService
	Logger      *logrus.Logger
	Version     string
}

// SetupRoutes configures all routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	echoHandler := NewEchoHandler(config.EchoService, config.Logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "body-echo-api",
			"version":   config.Version,
			"timestamp": time.Now().UTC(),
		})
	})

	// API Gateway forwards any path to the function, so the root answers too
	router.POST("/", echoHandler.Echo)
	router.POST("/echo", echoHandler.Echo)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, logger *logrus.Logger) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler(logger))
}
