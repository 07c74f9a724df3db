package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogpost-backend/internal/config"
	authHandler "blogpost-backend/internal/domains/auth/handler"
	authService "blogpost-backend/internal/domains/auth/service"
	postHandler "blogpost-backend/internal/domains/post/handler"
	postRepo "blogpost-backend/internal/domains/post/repository"
	postService "blogpost-backend/internal/domains/post/service"
	"blogpost-backend/internal/infrastructure/cache"
	"blogpost-backend/internal/infrastructure/database"
	"blogpost-backend/internal/infrastructure/ratelimit"
	"blogpost-backend/pkg/jwt"
	"blogpost-backend/pkg/logger"
)

var ErrDatabaseNotConnected = errors.New("database not connected")

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything is built once at
// startup and shared by all requests.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Redis       *cache.RedisClient // nil when counters live in memory
	JWTManager  *jwt.Manager
	RateLimiter ratelimit.Store

	// Repositories
	PostRepo postRepo.RepositoryInterface

	// Services
	PostService postService.ServiceInterface
	AuthService authService.ServiceInterface

	// Handlers
	PostHandler *postHandler.PostHandler
	AuthHandler *authHandler.AuthHandler
}

// NewContainer loads configuration, connects the store and the optional
// Redis, then wires the domain layers. A bad config or an unreachable
// database stops startup; an unreachable Redis only downgrades the limiter.
func NewContainer(ctx context.Context) (*Container, error) {
	logger.Info("Initializing DI container", nil)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c := &Container{Config: cfg, DB: db}
	c.RateLimiter = c.initRateLimiter(connectCtx)

	c.Assemble(postRepo.NewPostgresRepository(db.Pool))

	logger.Info("DI container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// initRateLimiter prefers shared Redis counters and falls back to the
// in-process store when REDIS_HOST is empty or Redis does not answer.
func (c *Container) initRateLimiter(ctx context.Context) ratelimit.Store {
	rl := c.Config.RateLimit

	if c.Config.Redis.Host == "" {
		logger.Info("Rate limiter using in-memory counters", nil)
		return ratelimit.NewMemoryStore(rl.Max, rl.Window)
	}

	rc := cache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		logger.Warn("Redis unavailable, rate limiter using in-memory counters", map[string]interface{}{
			"host":  c.Config.Redis.Host,
			"error": err.Error(),
		})
		_ = rc.Close()
		return ratelimit.NewMemoryStore(rl.Max, rl.Window)
	}

	c.Redis = rc
	return ratelimit.NewRedisStore(rc.Client, rl.Max, rl.Window)
}

// Assemble wires token manager, services and handlers on top of a post
// repository. Config must be set. RateLimiter defaults to in-memory.
func (c *Container) Assemble(repo postRepo.RepositoryInterface) {
	cfg := c.Config

	if c.JWTManager == nil {
		c.JWTManager = jwt.NewManager(cfg.JWT.Secret, jwt.WithExpiry(cfg.JWT.Expiry))
	}
	if c.RateLimiter == nil {
		c.RateLimiter = ratelimit.NewMemoryStore(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	c.PostRepo = repo
	c.PostService = postService.NewPostService(c.PostRepo)
	c.AuthService = authService.NewAuthService(cfg.Admin, c.JWTManager)

	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

// HealthCheck reports whether the post store answers
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.DB == nil {
		return ErrDatabaseNotConnected
	}
	return c.DB.HealthCheck(ctx)
}

func (c *Container) Cleanup() {
	logger.Info("Cleaning up container resources", nil)

	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}
}
