package locking

import (
	"context"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v8"
)

// LockerRedis is a type of LockerInterface backed by redis, for multi instance deployments
type LockerRedis struct {
	locker *redislock.Client
}

// NewLockerRedis builds a new LockerRedis instance
func NewLockerRedis(redisClient *redis.Client) *LockerRedis {
	return &LockerRedis{
		locker: redislock.New(redisClient),
	}
}

// Acquire acquires a lock
func (l *LockerRedis) Acquire(ctx context.Context, key string, ttl time.Duration, tryOnlyOnce bool) (LockInterface, error) {
	options := &redislock.Options{}

	if !tryOnlyOnce {
		options.RetryStrategy = redislock.LinearBackoff(500 * time.Millisecond)

		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, time.Now().Add(time.Minute))
		defer cancel()
	}

	obtain, err := l.locker.Obtain(ctx, key, ttl, options)
	if err != nil {
		if err == redislock.ErrNotObtained {
			return nil, ErrLockHeld
		}
		return nil, err
	}

	return &LockRedis{
		lock: obtain,
	}, nil
}

// LockRedis is a redis implementation of a LockInterface
type LockRedis struct {
	lock *redislock.Lock
}

// Key returns the key the lock was acquired for
func (l *LockRedis) Key() string {
	return l.lock.Key()
}

// Release releases a LockRedis
func (l *LockRedis) Release(ctx context.Context) error {
	return l.lock.Release(ctx)
}
