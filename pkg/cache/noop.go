package cache

import (
	"context"

	"github.com/storefront-services/storefront-backend/pkg/models"
)

// A noop cache doesn't actually cache anything, but provides an implementation
// of the caching interface
type noOpCache struct {
}

func NewNoOpCache() *noOpCache {
	return &noOpCache{}
}

func (c *noOpCache) GetResolvedBusiness(ctx context.Context, host string) (*models.Business, error) {
	return nil, NotFound
}

func (c *noOpCache) SetResolvedBusiness(ctx context.Context, host string, business *models.Business) error {
	return nil
}

func (c *noOpCache) DeleteResolvedBusiness(ctx context.Context, host string) error {
	return nil
}
