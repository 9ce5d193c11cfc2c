package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recover turns a panic into a JSON 500 and logs it with the request id.
func Recover() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.Printf("panic rid=%s: %v", GetRequestID(c), rec)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
}
