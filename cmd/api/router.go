package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blogpost-backend/internal/shared/middleware"
	"blogpost-backend/internal/shared/response"
	"blogpost-backend/pkg/container"
)

const (
	MsgRouteNotFound = "Error: Route not found"
	MsgHealthy       = "Success: Service is healthy"
	MsgUnhealthy     = "Unsuccessful: Service is unhealthy"
)

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(c.RateLimiter),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, http.StatusNotFound, MsgRouteNotFound)
	})

	router.GET("/health", healthCheckHandler(c))
	router.POST("/login", c.AuthHandler.Login)

	setupPostRoutes(router, c)

	return router
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(router *gin.Engine, c *container.Container) {
	posts := router.Group("/posts")
	{
		// Public
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.Get)

		// Any valid token
		protected := posts.Group("")
		protected.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			protected.POST("", c.PostHandler.Create)
			protected.PUT("/:id", c.PostHandler.Update)
			protected.DELETE("/:id", c.PostHandler.Delete)
		}
	}
}

func healthCheckHandler(checker healthChecker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := checker.HealthCheck(ctx.Request.Context()); err != nil {
			log.Ctx(ctx.Request.Context()).Warn().Err(err).Msg("Health check failed")
			response.Error(ctx, http.StatusServiceUnavailable, MsgUnhealthy)
			return
		}
		response.Success(ctx, http.StatusOK, MsgHealthy, nil)
	}
}
