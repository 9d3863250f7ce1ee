package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"weather-recorder/internal/config"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis parses the URL and pings until the server answers or attempts run out.
func ConnectRedis(ctx context.Context, cfg *config.Config, attempts uint) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	err = retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return client.Ping(pingCtx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(time.Second),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("Attempt %d: Redis not reachable: %v", n+1, err)
		}),
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	log.Println("Redis connected successfully")
	return client, nil
}
