package tenancy

import (
	"context"
	"net"
	"time"
)

// IPResolver answers "which addresses does this name resolve to". The
// production implementation is the system resolver; tests substitute a stub.
type IPResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

type netResolver struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// NewIPResolver returns an IPResolver backed by the system DNS resolver with
// a bounded per-lookup timeout.
func NewIPResolver(timeout time.Duration) IPResolver {
	return &netResolver{resolver: net.DefaultResolver, timeout: timeout}
}

func (n *netResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	return n.resolver.LookupHost(ctx, host)
}
