package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blogpost-backend/internal/shared/response"
	"blogpost-backend/pkg/jwt"
)

const (
	// ContextKeyUsername is the gin key holding the verified token subject
	ContextKeyUsername = "username"

	MsgTokenMissing     = "Error: Auth Token Not Found"
	MsgTokenInvalid     = "Error: Token Invalid or Expired"
	MsgSecretMissing    = "Error: Unconfigured JWT Secret"
	MsgAuthInternalFail = "Unsuccessful: Something went wrong! Please try again later."
)

type usernameCtxKey struct{}

// TokenVerifier is the part of *jwt.Manager the gate needs
type TokenVerifier interface {
	Configured() bool
	Verify(token string) (*jwt.Claims, error)
}

// UsernameFromContext returns the identity attached by AuthMiddleware
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameCtxKey{}).(string)
	return username, ok
}

// bearerToken extracts <token> from "Bearer <token>"
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware gates mutating routes. Order of checks:
// missing token 401, missing secret 500, failed verification 403.
// Any valid token authorizes any route it is placed in front of.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, MsgTokenMissing)
			return
		}

		if !tokens.Configured() {
			log.Ctx(c.Request.Context()).Error().Msg("JWT secret is not configured")
			response.Abort(c, http.StatusInternalServerError, MsgSecretMissing)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrSecretNotConfigured):
				response.Abort(c, http.StatusInternalServerError, MsgSecretMissing)
			case errors.Is(err, jwt.ErrInvalidToken):
				response.Abort(c, http.StatusForbidden, MsgTokenInvalid)
			default:
				log.Ctx(c.Request.Context()).Error().Err(err).Msg("Token verification failed")
				response.Abort(c, http.StatusInternalServerError, MsgAuthInternalFail)
			}
			return
		}

		c.Set(ContextKeyUsername, claims.Username)
		ctx := context.WithValue(c.Request.Context(), usernameCtxKey{}, claims.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
