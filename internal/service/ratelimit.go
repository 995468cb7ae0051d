package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit acquires a per-user action lock for the given window.
// A nil client disables limiting.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, userNo uint, action string, limit time.Duration) (bool, error) {
	if rdb == nil || limit <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:user:%d:%s", userNo, action)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// ClearRateLimit releases a previously acquired lock, used when the guarded
// operation fails and the user should be allowed to retry immediately.
func ClearRateLimit(ctx context.Context, rdb *redis.Client, userNo uint, action string) error {
	if rdb == nil {
		return nil
	}
	key := fmt.Sprintf("rate_limit:user:%d:%s", userNo, action)
	_, err := rdb.Del(ctx, key).Result()
	return err
}
