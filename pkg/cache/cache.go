// Package cache provides the host-resolution cache consulted on every
// tenant request.
package cache

import (
	"context"
	"errors"

	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/models"

	"github.com/rs/zerolog/log"
)

var NotFound = errors.New("not found in cache")

type Cache interface {
	// GetResolvedBusiness returns the business previously resolved for
	// host, or NotFound.
	GetResolvedBusiness(ctx context.Context, host string) (*models.Business, error)
	SetResolvedBusiness(ctx context.Context, host string, business *models.Business) error
	DeleteResolvedBusiness(ctx context.Context, host string) error
}

func Initialize() Cache {
	if config.Get().Clients.Redis.Host != "" {
		return NewRedisCache()
	} else {
		log.Logger.Warn().Msg("No application cache in use")
		return NewNoOpCache()
	}
}
