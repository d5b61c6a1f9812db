package custom

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/storefront-services/storefront-backend/pkg/dao"
	"github.com/storefront-services/storefront-backend/pkg/instrumentation"
	"github.com/storefront-services/storefront-backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := instrumentation.NewMetrics(reg)
	db := &gorm.DB{}

	c := NewCollector(context.Background(), metrics, db)
	assert.NotNil(t, c)

	// Forcing nil Context
	//nolint:staticcheck
	c = NewCollector(nil, metrics, db)
	assert.Nil(t, c)

	c = NewCollector(context.Background(), nil, db)
	assert.Nil(t, c)

	c = NewCollector(context.Background(), metrics, nil)
	assert.Nil(t, c)
}

func TestIterate(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := instrumentation.NewMetrics(reg)
	ctx := context.Background()

	mockDao := dao.NewMockMetricsDao(t)
	mockDao.On("BusinessesCount", ctx).Return(12)
	mockDao.On("DiscountCodesCount", ctx).Return(40)
	mockDao.On("CustomDomainsCount", ctx, models.DomainStatusPendingDNS).Return(3)
	mockDao.On("CustomDomainsCount", ctx, models.DomainStatusActive).Return(7)

	c := &Collector{context: ctx, metrics: metrics, dao: mockDao}
	require.NotPanics(t, func() { c.iterate() })

	gathered, err := reg.Gather()
	require.NoError(t, err)
	names := []string{}
	for _, mf := range gathered {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "storefront_businesses_total")
	assert.Contains(t, names, "storefront_custom_domains_total")
}
