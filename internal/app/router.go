package app

import (
	"github.com/gin-gonic/gin"

	"github.com/bloomlms/bloom-backend/internal/middleware"
	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, h Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		GraphQLHandler: h.GraphQL,
		RequestLog:     middleware.NewRequestLogMiddleware(log),
	})
}
