package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blogpost-backend/internal/shared/response"
)

const MsgInternalError = "Unsuccessful: Something went wrong! Please try again later."

// Recovery turns a panic in any handler into a 500 so one bad request never
// takes the process down.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(ContextKeyRequestID)).
					Interface("error", err).
					Msg("Panic recovered")

				response.Abort(c, http.StatusInternalServerError, MsgInternalError)
			}
		}()

		c.Next()
	}
}
