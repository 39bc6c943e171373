package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response. The service is stateless —
// there is nothing external to probe beyond the process itself.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
