package locking

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrLockHeld is returned when a lock is already held and the caller asked to try only once
var ErrLockHeld = errors.New("lock is already held")

// LockerInterface represents a Locker
type LockerInterface interface {
	Acquire(ctx context.Context, key string, ttl time.Duration, tryOnlyOnce bool) (LockInterface, error)
}

// LockInterface represents a Lock
type LockInterface interface {
	Key() string
	Release(ctx context.Context) error
}
