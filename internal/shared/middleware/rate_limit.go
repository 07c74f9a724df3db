package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blogpost-backend/internal/infrastructure/ratelimit"
	"blogpost-backend/internal/shared/response"
)

const MsgTooManyRequests = "Too many requests, please try again later."

// RateLimit rejects a client with 429 once it exceeds its window budget.
// Counter store failures let the request through.
func RateLimit(store ratelimit.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := store.Hit(c.Request.Context(), clientIP(c))
		if err != nil {
			log.Ctx(c.Request.Context()).Warn().Err(err).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed {
			retryAfter := int(time.Until(res.ResetAt).Round(time.Second).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Abort(c, http.StatusTooManyRequests, MsgTooManyRequests)
			return
		}

		c.Next()
	}
}
