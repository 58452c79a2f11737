package scheduling

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// PlanCacheInterface caches the latest generated plan per user so the API can
// serve it without recomputation
type PlanCacheInterface interface {
	Add(ctx context.Context, userID string, plan *Plan) error
	Invalidate(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*Plan, error)
}

// PlanCacheMemory is an in-process PlanCacheInterface
type PlanCacheMemory struct {
	Cache *lru.Cache
}

// NewPlanCacheMemory initializes a new PlanCacheMemory
func NewPlanCacheMemory(size int) (*PlanCacheMemory, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &PlanCacheMemory{
		Cache: cache,
	}, nil
}

// Add stores the latest plan of a user
func (c *PlanCacheMemory) Add(_ context.Context, userID string, plan *Plan) error {
	_ = c.Cache.Add(userID, plan)
	return nil
}

// Invalidate removes a user's cached plan
func (c *PlanCacheMemory) Invalidate(_ context.Context, userID string) error {
	c.Cache.Remove(userID)
	return nil
}

// Get retrieves a user's cached plan
func (c *PlanCacheMemory) Get(_ context.Context, userID string) (*Plan, error) {
	result, ok := c.Cache.Get(userID)
	if !ok {
		return nil, fmt.Errorf("could not find a plan for user %s in the cache", userID)
	}

	plan, ok := result.(*Plan)
	if !ok {
		return nil, fmt.Errorf("cache entry for user %s was not a plan", userID)
	}

	return plan, nil
}
