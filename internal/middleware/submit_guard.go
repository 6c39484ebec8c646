package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/dondr1/lastminparty/internal/response"
)

// SubmitGuard returns a middleware that rejects concurrent duplicate
// submissions of the same mutation by the same user. The first request
// claims a short-lived redis key; a second request arriving before the
// first finishes gets a 409. The key is released when the handler returns,
// with the TTL as a backstop against crashed requests.
//
// Without a redis client the guard passes everything through, leaving the
// database unique constraints as the only protection.
func SubmitGuard(client *redis.Client, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("submit:%s:%s:%s", userID.String(), c.Request.Method, c.FullPath())
		ctx := c.Request.Context()

		acquired, err := client.SetNX(ctx, key, "1", ttl).Result()
		if err != nil {
			// Redis being down must not block submissions
			logger.Warn("Submit guard unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.SendError(c, http.StatusConflict, response.ErrCodeAlreadyExists, "Request is already being processed")
			c.Abort()
			return
		}

		defer func() {
			if err := client.Del(ctx, key).Err(); err != nil {
				logger.Warn("Submit guard release failed", zap.String("key", key), zap.Error(err))
			}
		}()

		c.Next()
	}
}
