package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/go-redis/redis/v8"
)

const loginAttemptsPrefix = "login_attempts:"

func loginKey(email string) string {
	return servicePrefix + loginAttemptsPrefix + strings.ToLower(strings.TrimSpace(email))
}

// FailedLogin counts a failed attempt. INCR and EXPIRE run in one
// MULTI/EXEC so the counter never outlives the lockout window; the window
// restarts with every failure.
func (c *Client) FailedLogin(ctx context.Context, email string) (int64, error) {
	key := loginKey(email)

	var attempts *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		attempts = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, c.lockout)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return attempts.Val(), nil
}

// IsLocked reports whether the email reached max failed attempts within the
// current window. max <= 0 disables the lock.
func (c *Client) IsLocked(ctx context.Context, email string, max int) (bool, error) {
	if max <= 0 {
		return false, nil
	}

	attempts, err := c.client.Get(ctx, loginKey(email)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return attempts >= int64(max), nil
}

func (c *Client) ResetLogin(ctx context.Context, email string) error {
	return c.client.Del(ctx, loginKey(email)).Err()
}
