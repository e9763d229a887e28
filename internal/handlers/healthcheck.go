package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Root is the liveness acknowledgment served at /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Bloom backend is running!"})
}
