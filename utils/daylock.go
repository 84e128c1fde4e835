package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrAgendaBusy = errors.New("another booking for this day is in progress")

const dayLockTTL = 5 * time.Second

// WithDayLock serializes agenda writes for one account and day so two
// sessions cannot pass the overlap check against the same stale snapshot and
// both persist. When rdb is nil the lock degrades to a direct call and the
// race documented for single-writer use remains open.
func WithDayLock(ctx context.Context, rdb *redis.Client, userID uuid.UUID, day string, fn func(ctx context.Context) error) error {
	if rdb == nil {
		return fn(ctx)
	}

	key := fmt.Sprintf("lock:agenda:%s:%s", userID.String(), day)
	token := uuid.NewString()

	ok, err := rdb.SetNX(ctx, key, token, dayLockTTL).Result()
	if err != nil {
		return fmt.Errorf("acquire agenda lock: %w", err)
	}
	if !ok {
		return ErrAgendaBusy
	}

	defer func() {
		_, _ = releaseScript.Run(ctx, rdb, []string{key}, token).Result()
	}()

	lockCtx, cancel := context.WithTimeout(ctx, dayLockTTL)
	defer cancel()

	return fn(lockCtx)
}

// releaseScript deletes the lock only when still held by this token.
var releaseScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)
