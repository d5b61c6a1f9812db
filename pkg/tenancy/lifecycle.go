package tenancy

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/cache"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/event"
	"github.com/storefront-services/storefront-backend/pkg/models"

	"github.com/rs/zerolog/log"
)

// domainRegex accepts dotted lowercase labels with a letters-only TLD. It
// rejects scheme prefixes, ports, paths and bare labels.
var domainRegex = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// ValidDomain reports whether domain is an acceptable custom domain string.
func ValidDomain(domain string) bool {
	if len(domain) > 253 {
		return false
	}
	return domainRegex.MatchString(domain)
}

// Lifecycle drives the custom-domain state machine
// (none -> pending_dns -> active) and answers the edge router's allow check.
type Lifecycle struct {
	config   Config
	dao      *dao.DaoRegistry
	ips      IPResolver
	cache    cache.Cache
	producer event.Producer
}

func NewLifecycle(config Config, daoReg *dao.DaoRegistry, ips IPResolver, cache cache.Cache, producer event.Producer) *Lifecycle {
	return &Lifecycle{
		config:   config,
		dao:      daoReg,
		ips:      ips,
		cache:    cache,
		producer: producer,
	}
}

// Attach submits domain as the business's custom domain and queues it for
// DNS verification. Re-attaching the business's current domain is a no-op
// success. Another business owning the domain is a conflict; the database
// unique index is the arbiter when two businesses race for the same string.
func (l *Lifecycle) Attach(ctx context.Context, businessUUID string, domain string) (api.AttachDomainResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(domain))
	if !ValidDomain(normalized) {
		return api.AttachDomainResponse{}, &ce.DaoError{BadValidation: true, Message: "Invalid domain format"}
	}

	business, err := l.dao.Business.FetchModel(ctx, businessUUID)
	if err != nil {
		return api.AttachDomainResponse{}, err
	}

	if business.CustomDomain != nil && *business.CustomDomain == normalized {
		return api.AttachDomainResponse{
			Success: true,
			Domain:  normalized,
			Status:  string(business.DomainStatus),
		}, nil
	}

	owner, err := l.dao.Business.FetchByCustomDomain(ctx, normalized)
	if err == nil && owner.UUID != businessUUID {
		return api.AttachDomainResponse{}, &ce.DaoError{AlreadyExists: true, Message: "Domain already claimed by another business"}
	}
	if err != nil && !isNotFound(err) {
		return api.AttachDomainResponse{}, err
	}

	if err := l.dao.Business.SetCustomDomain(ctx, businessUUID, &normalized, models.DomainStatusPendingDNS); err != nil {
		return api.AttachDomainResponse{}, err
	}
	// A pending entry can survive a disconnect; don't queue the same domain twice.
	pending, err := l.dao.DomainQueue.PendingExists(ctx, businessUUID, normalized)
	if err != nil {
		return api.AttachDomainResponse{}, err
	}
	if !pending {
		if _, err := l.dao.DomainQueue.Append(ctx, businessUUID, normalized); err != nil {
			return api.AttachDomainResponse{}, err
		}
	}
	l.invalidate(ctx, business, normalized)

	return api.AttachDomainResponse{
		Success: true,
		Domain:  normalized,
		Status:  string(models.DomainStatusPendingDNS),
	}, nil
}

// Verify performs exactly one DNS resolution for domain and activates it when
// the platform server address is among the answers. A DNS miss is a
// reportable outcome, not an error; the caller polls by re-submitting.
func (l *Lifecycle) Verify(ctx context.Context, businessUUID string, domain string) (api.VerifyDomainResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(domain))

	business, err := l.dao.Business.FetchModel(ctx, businessUUID)
	if err != nil {
		return api.VerifyDomainResponse{}, err
	}
	if business.CustomDomain == nil || *business.CustomDomain != normalized {
		return api.VerifyDomainResponse{}, &ce.DaoError{NotFound: true, Message: "Domain is not attached to this business"}
	}

	addresses, err := l.ips.LookupHost(ctx, normalized)
	if err != nil {
		return api.VerifyDomainResponse{
			Verified: false,
			Message:  fmt.Sprintf("DNS lookup for %s failed: %v. DNS changes can take up to 48 hours to propagate.", normalized, err),
		}, nil
	}

	if !containsAddress(addresses, l.config.ServerIP) {
		return api.VerifyDomainResponse{
			Verified: false,
			Message: fmt.Sprintf("%s resolves to [%s], expected %s. DNS changes can take up to 48 hours to propagate.",
				normalized, strings.Join(addresses, ", "), l.config.ServerIP),
		}, nil
	}

	if business.DomainStatus != models.DomainStatusActive {
		if err := l.dao.Business.SetDomainStatus(ctx, businessUUID, models.DomainStatusActive); err != nil {
			return api.VerifyDomainResponse{}, err
		}
		l.producer.SendNotification(event.DomainActivated, event.DomainPayload{
			BusinessUUID: businessUUID,
			Domain:       normalized,
		})
	}
	if err := l.dao.DomainQueue.Complete(ctx, businessUUID, normalized); err != nil {
		return api.VerifyDomainResponse{}, err
	}
	l.invalidate(ctx, business, normalized)

	return api.VerifyDomainResponse{
		Verified: true,
		Message:  fmt.Sprintf("%s is verified and active.", normalized),
	}, nil
}

// Disconnect removes the custom domain and resets the state machine to none.
// Queue entries stay behind as the audit trail.
func (l *Lifecycle) Disconnect(ctx context.Context, businessUUID string) error {
	business, err := l.dao.Business.FetchModel(ctx, businessUUID)
	if err != nil {
		return err
	}
	if err := l.dao.Business.SetCustomDomain(ctx, businessUUID, nil, models.DomainStatusNone); err != nil {
		return err
	}
	l.invalidate(ctx, business, "")
	return nil
}

// RoutingAllowed is the edge proxy's allow/deny check. Subdomains of the
// platform root are allowed whenever the business exists; custom domains
// additionally require an active domain status. Lookup errors deny.
func (l *Lifecycle) RoutingAllowed(ctx context.Context, domain string) bool {
	normalized := strings.ToLower(StripPort(strings.TrimSpace(domain)))
	if normalized == "" {
		return false
	}
	if normalized == l.config.RootDomain {
		return true
	}

	if suffix := "." + l.config.RootDomain; strings.HasSuffix(normalized, suffix) {
		subdomain := strings.TrimSuffix(normalized, suffix)
		if subdomain == "" || strings.Contains(subdomain, ".") {
			return false
		}
		if _, err := l.dao.Business.FetchBySubdomain(ctx, subdomain); err != nil {
			if !isNotFound(err) {
				log.Error().Err(err).Msgf("Routing check failed for subdomain %v", subdomain)
			}
			return false
		}
		return true
	}

	business, err := l.dao.Business.FetchByCustomDomain(ctx, normalized)
	if err != nil {
		if !isNotFound(err) {
			log.Error().Err(err).Msgf("Routing check failed for domain %v", normalized)
		}
		return false
	}
	return business.DomainStatus == models.DomainStatusActive
}

func (l *Lifecycle) invalidate(ctx context.Context, business models.Business, domain string) {
	hosts := []string{}
	if domain != "" {
		hosts = append(hosts, domain)
	}
	if business.CustomDomain != nil {
		hosts = append(hosts, *business.CustomDomain)
	}
	hosts = append(hosts, business.Subdomain+"."+l.config.RootDomain)
	for _, host := range hosts {
		if err := l.cache.DeleteResolvedBusiness(ctx, host); err != nil && !errors.Is(err, cache.NotFound) {
			log.Warn().Err(err).Msgf("Error invalidating resolution cache for %v", host)
		}
	}
}

func containsAddress(addresses []string, expected string) bool {
	for _, address := range addresses {
		if address == expected {
			return true
		}
	}
	return false
}
