package locking

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestLockerMemory_TryOnlyOnce(t *testing.T) {
	locker := NewLockerMemory()
	ctx := context.Background()

	lock, err := locker.Acquire(ctx, "a", time.Minute, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lock.Key() != "a" {
		t.Errorf("got key %q, want %q", lock.Key(), "a")
	}

	_, err = locker.Acquire(ctx, "a", time.Minute, true)
	if !errors.Is(err, ErrLockHeld) {
		t.Fatalf("got %v, want ErrLockHeld", err)
	}

	// Another key is unaffected
	other, err := locker.Acquire(ctx, "b", time.Minute, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = other.Release(ctx)

	err = lock.Release(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Released keys can be acquired again
	lock, err = locker.Acquire(ctx, "a", time.Minute, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = lock.Release(ctx)
}

func TestLockerMemory_WaitsForRelease(t *testing.T) {
	locker := NewLockerMemory()
	ctx := context.Background()

	lock, err := locker.Acquire(ctx, "a", time.Minute, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		second, err := locker.Acquire(ctx, "a", time.Minute, false)
		if err == nil {
			_ = second.Release(ctx)
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("the second acquire should block while the lock is held")
	case <-time.After(50 * time.Millisecond):
	}

	_ = lock.Release(ctx)

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("the second acquire should proceed after release")
	}
}

func TestLockerMemory_ContextCancellation(t *testing.T) {
	locker := NewLockerMemory()

	lock, err := locker.Acquire(context.Background(), "a", time.Minute, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer lock.Release(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Acquire(ctx, "a", time.Minute, false)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context.DeadlineExceeded", err)
	}
}
