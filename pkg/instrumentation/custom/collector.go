package custom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	"github.com/storefront-services/storefront-backend/pkg/instrumentation"
	"github.com/storefront-services/storefront-backend/pkg/models"
	"gorm.io/gorm"
)

const tickerDelay = 30 // in seconds

// Collector periodically refreshes the database backed gauges.
type Collector struct {
	context context.Context
	metrics *instrumentation.Metrics
	dao     dao.MetricsDao
}

func NewCollector(context context.Context, metrics *instrumentation.Metrics, db *gorm.DB) *Collector {
	if context == nil {
		return nil
	}
	if metrics == nil {
		return nil
	}
	if db == nil {
		return nil
	}
	return &Collector{
		context: context,
		metrics: metrics,
		dao:     dao.GetMetricsDao(db),
	}
}

func (c *Collector) iterate() {
	ctx := c.context
	c.metrics.BusinessesTotal.Set(float64(c.dao.BusinessesCount(ctx)))
	c.metrics.DiscountCodesTotal.Set(float64(c.dao.DiscountCodesCount(ctx)))

	pending := c.dao.CustomDomainsCount(ctx, models.DomainStatusPendingDNS)
	c.metrics.CustomDomainsTotal.With(prometheus.Labels{"status": string(models.DomainStatusPendingDNS)}).Set(float64(pending))
	active := c.dao.CustomDomainsCount(ctx, models.DomainStatusActive)
	c.metrics.CustomDomainsTotal.With(prometheus.Labels{"status": string(models.DomainStatusActive)}).Set(float64(active))
}

func (c *Collector) Run() {
	log.Info().Msg("Starting metrics collector go routine")
	ticker := time.NewTicker(tickerDelay * time.Second)
	for {
		select {
		case <-ticker.C:
			c.iterate()
		case <-c.context.Done():
			log.Info().Msg("Stopping metrics collector go routine")
			ticker.Stop()
			return
		}
	}
}
