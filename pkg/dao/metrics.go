package dao

import (
	"context"

	"github.com/storefront-services/storefront-backend/pkg/models"
	"gorm.io/gorm"
)

type MetricsDao interface {
	BusinessesCount(ctx context.Context) int
	CustomDomainsCount(ctx context.Context, status models.DomainStatus) int
	DiscountCodesCount(ctx context.Context) int
}

type metricsDaoImpl struct {
	db *gorm.DB
}

func GetMetricsDao(db *gorm.DB) MetricsDao {
	if db == nil {
		return nil
	}
	return metricsDaoImpl{
		db: db,
	}
}

func (d metricsDaoImpl) BusinessesCount(ctx context.Context) int {
	// select COUNT(*) from businesses ;
	var output int64 = -1
	d.db.WithContext(ctx).
		Model(&models.Business{}).
		Count(&output)
	return int(output)
}

func (d metricsDaoImpl) CustomDomainsCount(ctx context.Context, status models.DomainStatus) int {
	// select COUNT(*) from businesses where custom_domain is not null and domain_status = ? ;
	var output int64 = -1
	d.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("custom_domain is not null").
		Where("domain_status = ?", status).
		Count(&output)
	return int(output)
}

func (d metricsDaoImpl) DiscountCodesCount(ctx context.Context) int {
	// select COUNT(*) from discount_codes ;
	var output int64 = -1
	d.db.WithContext(ctx).
		Model(&models.DiscountCode{}).
		Count(&output)
	return int(output)
}
