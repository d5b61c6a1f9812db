package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/models"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
}

func NewRedisCache() *redisCache {
	c := config.Get()
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisUrl(),
		Username: c.Clients.Redis.Username,
		Password: c.Clients.Redis.Password,
		DB:       c.Clients.Redis.DB,
	})
	return &redisCache{
		client: client,
	}
}

// resolutionKey constructs the cache key for host resolution caching
func resolutionKey(host string) string {
	return fmt.Sprintf("resolve:%v", host)
}

func (c *redisCache) get(ctx context.Context, key string) ([]byte, error) {
	cmd := c.client.Get(ctx, key)
	if errors.Is(cmd.Err(), redis.Nil) {
		return nil, NotFound
	}
	return cmd.Bytes()
}

func (c *redisCache) GetResolvedBusiness(ctx context.Context, host string) (*models.Business, error) {
	buf, err := c.get(ctx, resolutionKey(host))
	if err != nil {
		if errors.Is(err, NotFound) {
			return nil, NotFound
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var business models.Business
	if err = json.Unmarshal(buf, &business); err != nil {
		return nil, fmt.Errorf("redis unmarshal error: %w", err)
	}
	return &business, nil
}

func (c *redisCache) SetResolvedBusiness(ctx context.Context, host string, business *models.Business) error {
	buf, err := json.Marshal(business)
	if err != nil {
		return fmt.Errorf("unable to marshal business: %w", err)
	}
	if err = c.client.Set(ctx, resolutionKey(host), buf, config.Get().Clients.Redis.Expiration).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

func (c *redisCache) DeleteResolvedBusiness(ctx context.Context, host string) error {
	if err := c.client.Del(ctx, resolutionKey(host)).Err(); err != nil {
		return fmt.Errorf("redis delete error: %w", err)
	}
	return nil
}
