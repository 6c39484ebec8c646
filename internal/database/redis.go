package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/dondr1/lastminparty/internal/config"
)

// NewRedis creates a redis client from config. A redis:// URL takes
// precedence over host/port fields.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	var client *redis.Client

	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
