package config

import (
	"context"
	"log"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis parses redisURL, opens a client and pings it.
// The caller decides whether a failure is fatal.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("REDIS_URL not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid REDIS_URL")
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := client.Ping(pingCtx).Result()
	if err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}
	log.Println("✅ Connected to Redis:", res)
	return client, nil
}
