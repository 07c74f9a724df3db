package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpost-backend/internal/infrastructure/ratelimit"
)

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		l := log.Ctx(c.Request.Context())
		assert.NotEqual(t, zerolog.Disabled, l.GetLevel())
		c.String(http.StatusOK, c.GetString(ContextKeyRequestID))
	})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec = serve(r, req)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestClientIPMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(ClientIPMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextKeyClientIP))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.5:1234"
	assert.Equal(t, "203.0.113.5", serve(r, req).Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Unsuccessful: Something went wrong! Please try again later."}`, rec.Body.String())
}

func TestLogger_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Logger())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORS(t *testing.T) {
	reached := false
	r := gin.New()
	r.Use(CORS())
	r.GET("/posts", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	r.OPTIONS("/posts", func(c *gin.Context) {
		reached = true
	})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/posts", nil))
	assert.True(t, reached)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	reached = false
	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Access-Control-Request-Headers", "authorization")
	rec = serve(r, req)
	assert.False(t, reached)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "authorization", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

type failingStore struct{}

func (failingStore) Hit(ctx context.Context, key string) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("connection refused")
}

func limitedRouter(store ratelimit.Store) *gin.Engine {
	r := gin.New()
	r.Use(ClientIPMiddleware(), RateLimit(store))
	r.GET("/posts", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func fromIP(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.RemoteAddr = ip + ":5000"
	return req
}

func TestRateLimit(t *testing.T) {
	r := limitedRouter(ratelimit.NewMemoryStore(2, time.Hour))

	rec := serve(r, fromIP("203.0.113.1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = serve(r, fromIP("203.0.113.1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = serve(r, fromIP("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Too many requests, please try again later."}`, rec.Body.String())

	retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retryAfter, 1)
	assert.LessOrEqual(t, retryAfter, 3600)

	// another client has its own budget
	rec = serve(r, fromIP("203.0.113.2"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_StoreFailureAllows(t *testing.T) {
	rec := serve(limitedRouter(failingStore{}), fromIP("203.0.113.1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
