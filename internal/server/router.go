package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/bloomlms/bloom-backend/internal/handlers"
	"github.com/bloomlms/bloom-backend/internal/middleware"
)

type RouterConfig struct {
	AllowedOrigins []string
	GraphQLHandler *handlers.GraphQLHandler
	RequestLog     *middleware.RequestLogMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("bloom-backend"))
	if cfg.RequestLog != nil {
		router.Use(cfg.RequestLog.Handle())
	}

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/", handlers.Root)
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/graphql", cfg.GraphQLHandler.Serve)

	return router
}
