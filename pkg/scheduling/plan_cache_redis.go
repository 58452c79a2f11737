package scheduling

import (
	"context"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
)

// PlanCacheRedis is a redis backed PlanCacheInterface for multi instance deployments
type PlanCacheRedis struct {
	Cache *cache.Cache
}

// NewPlanCacheRedis initializes a new PlanCacheRedis
func NewPlanCacheRedis(redisClient *redis.Client) *PlanCacheRedis {
	return &PlanCacheRedis{
		Cache: cache.New(&cache.Options{
			Redis: redisClient,
		}),
	}
}

func planCacheKey(userID string) string {
	return "plan:latest:" + userID
}

// Add stores the latest plan of a user
func (c *PlanCacheRedis) Add(ctx context.Context, userID string, plan *Plan) error {
	return c.Cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   planCacheKey(userID),
		Value: plan,
		TTL:   time.Hour * 24,
	})
}

// Invalidate removes a user's cached plan
func (c *PlanCacheRedis) Invalidate(ctx context.Context, userID string) error {
	return c.Cache.Delete(ctx, planCacheKey(userID))
}

// Get retrieves a user's cached plan
func (c *PlanCacheRedis) Get(ctx context.Context, userID string) (*Plan, error) {
	var plan Plan

	err := c.Cache.Get(ctx, planCacheKey(userID), &plan)
	if err != nil {
		return nil, err
	}

	return &plan, nil
}
