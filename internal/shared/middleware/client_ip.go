package middleware

import (
	"github.com/gin-gonic/gin"

	"blogpost-backend/internal/shared/utils"
)

const ContextKeyClientIP = "client_ip"

// ClientIPMiddleware resolves the caller address once per request; the
// rate limiter and the request logger both read it from the gin context.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyClientIP, utils.ExtractClientIP(c))
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString(ContextKeyClientIP); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c)
}
