package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func runGuard(t *testing.T, client *redis.Client, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if authenticated {
		router.Use(func(c *gin.Context) {
			c.Set(UserIDKey, uuid.New())
			c.Next()
		})
	}
	router.Use(SubmitGuard(client, time.Second, zap.NewNop()))
	router.POST("/submit", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitGuard_NilClientPassesThrough(t *testing.T) {
	rec := runGuard(t, nil, true)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubmitGuard_UnauthenticatedPassesThrough(t *testing.T) {
	rec := runGuard(t, nil, false)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubmitGuard_RedisDownPassesThrough(t *testing.T) {
	// Unreachable redis: SetNX errors and the guard steps aside
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	defer client.Close()

	rec := runGuard(t, client, true)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
