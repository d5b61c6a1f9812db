// Package tenancy maps inbound hostnames to businesses and manages the
// custom-domain lifecycle. It is the single canonical implementation of both;
// every handler and middleware routes through it.
package tenancy

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/storefront-services/storefront-backend/pkg/cache"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/models"
	"github.com/storefront-services/storefront-backend/pkg/utils"

	"github.com/rs/zerolog/log"
)

// Config is the routing configuration, constructed once at startup from
// pkg/config and passed in rather than read ad hoc.
type Config struct {
	RootDomain string
	ServerIP   string
	DevMode    bool
}

// Resolution is the outcome of a host lookup: either the platform itself or
// exactly one active business.
type Resolution struct {
	Platform bool
	Business *models.Business
}

// PlatformPublicPaths are the only paths served on the platform root domain
// without a resolved tenant.
var PlatformPublicPaths = []string{
	"/",
	"/signup",
	"/login",
	"/api/storefront/v1/signup",
	"/api/storefront/v1/login",
}

// PlatformPathAllowed reports whether path may be served on a platform-domain
// request; anything else is redirected to the platform root.
func PlatformPathAllowed(path string) bool {
	trimmed := strings.TrimSuffix(path, "/")
	if trimmed == "" {
		trimmed = "/"
	}
	return utils.Contains(PlatformPublicPaths, trimmed)
}

var portSuffixRegex = regexp.MustCompile(`:\d+$`)

// StripPort removes a trailing :port from a Host header value.
func StripPort(host string) string {
	return portSuffixRegex.ReplaceAllString(host, "")
}

// SubdomainCandidate extracts the leftmost label from host. A host with no
// dot has no usable candidate and must fail closed.
func SubdomainCandidate(host string) (string, bool) {
	idx := strings.Index(host, ".")
	if idx <= 0 {
		return "", false
	}
	return host[:idx], true
}

type Resolver struct {
	config Config
	dao    dao.BusinessDao
	cache  cache.Cache
}

func NewResolver(config Config, businessDao dao.BusinessDao, cache cache.Cache) *Resolver {
	return &Resolver{config: config, dao: businessDao, cache: cache}
}

// IsPlatformHost reports whether the (already port-stripped) host addresses
// the platform root rather than a tenant. In dev mode any host containing
// "localhost" counts as the platform root.
func (r *Resolver) IsPlatformHost(host string) bool {
	if host == r.config.RootDomain {
		return true
	}
	if r.config.DevMode && strings.Contains(host, "localhost") {
		return true
	}
	return false
}

// Resolve maps a raw Host header to the platform or one active business.
// A host matching no custom domain and no subdomain resolves to NotFound;
// there is no fallback tenant.
func (r *Resolver) Resolve(ctx context.Context, host string) (Resolution, error) {
	stripped := strings.ToLower(StripPort(strings.TrimSpace(host)))
	if stripped == "" {
		return Resolution{}, &ce.DaoError{NotFound: true, Message: "Business not found"}
	}

	if r.IsPlatformHost(stripped) {
		return Resolution{Platform: true}, nil
	}

	if business, err := r.cache.GetResolvedBusiness(ctx, stripped); err == nil {
		return Resolution{Business: business}, nil
	} else if !errors.Is(err, cache.NotFound) {
		log.Warn().Err(err).Msgf("Error reading resolution cache for %v", stripped)
	}

	business, err := r.lookup(ctx, stripped)
	if err != nil {
		return Resolution{}, err
	}

	if err := r.cache.SetResolvedBusiness(ctx, stripped, business); err != nil {
		log.Warn().Err(err).Msgf("Error writing resolution cache for %v", stripped)
	}
	return Resolution{Business: business}, nil
}

func (r *Resolver) lookup(ctx context.Context, host string) (*models.Business, error) {
	// Custom domain takes precedence over subdomain extraction.
	business, err := r.dao.FetchByCustomDomain(ctx, host)
	if err == nil {
		return eligible(business)
	}
	if !isNotFound(err) {
		return nil, err
	}

	candidate, ok := SubdomainCandidate(host)
	if !ok {
		return nil, &ce.DaoError{NotFound: true, Message: "Business not found"}
	}
	business, err = r.dao.FetchBySubdomain(ctx, candidate)
	if err != nil {
		return nil, err
	}
	return eligible(business)
}

// eligible filters out suspended and closed businesses; the resolver only
// ever returns active ones.
func eligible(business models.Business) (*models.Business, error) {
	if business.Status != models.BusinessStatusActive {
		return nil, &ce.DaoError{NotFound: true, Message: "Business not found"}
	}
	return &business, nil
}

func isNotFound(err error) bool {
	var daoError *ce.DaoError
	if errors.As(err, &daoError) {
		return daoError.NotFound
	}
	return false
}
