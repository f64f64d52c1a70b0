package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"storerating/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const (
	servicePrefix = "store_rating."

	defaultLockout = 15 * time.Minute
)

type Client struct {
	cfg     config.RedisConfig
	client  *redis.Client
	lockout time.Duration
}

// New connects to redis and pings it. lockout is how long failed login
// attempts are remembered; zero means the default 15 minutes.
func New(ctx context.Context, cfg config.RedisConfig, lockout time.Duration) (*Client, error) {
	if lockout <= 0 {
		lockout = defaultLockout
	}
	client := &Client{
		cfg:     cfg,
		lockout: lockout,
	}

	client.client = redis.NewClient(&redis.Options{
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if _, err := client.client.Ping(ctx).Result(); err != nil {
		_ = client.client.Close()
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
