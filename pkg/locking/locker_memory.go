package locking

import (
	"context"
	"sync"
	"time"
)

// LockerMemory is a process local type of LockerInterface, used in development and tests
type LockerMemory struct {
	mutex sync.Mutex
	locks map[string]chan struct{}
}

// NewLockerMemory builds a new LockerMemory instance
func NewLockerMemory() *LockerMemory {
	return &LockerMemory{
		locks: make(map[string]chan struct{}),
	}
}

func (l *LockerMemory) getLock(key string) chan struct{} {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	lock, ok := l.locks[key]
	if !ok {
		lock = make(chan struct{}, 1)
		l.locks[key] = lock
	}

	return lock
}

// Acquire acquires a LockInterface
func (l *LockerMemory) Acquire(ctx context.Context, key string, _ time.Duration, tryOnlyOnce bool) (LockInterface, error) {
	lock := l.getLock(key)

	if tryOnlyOnce {
		select {
		case lock <- struct{}{}:
		default:
			return nil, ErrLockHeld
		}
	} else {
		select {
		case lock <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return &LockMemory{
		key: key,
		release: func() {
			<-lock
		},
	}, nil
}

// LockMemory is a memory implementation of a LockInterface
type LockMemory struct {
	key     string
	release func()
}

// Key returns the key the lock was acquired for
func (l *LockMemory) Key() string {
	return l.key
}

// Release releases a LockMemory
func (l *LockMemory) Release(_ context.Context) error {
	l.release()
	return nil
}
