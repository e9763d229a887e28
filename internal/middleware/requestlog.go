package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
)

type RequestLogMiddleware struct {
	log *logger.Logger
}

func NewRequestLogMiddleware(log *logger.Logger) *RequestLogMiddleware {
	middlewareLog := log.With("middleware", "RequestLogMiddleware")
	return &RequestLogMiddleware{log: middlewareLog}
}

func (rl *RequestLogMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rl.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
