package dao

import (
	"context"

	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/models"

	"gorm.io/gorm"
)

type domainQueueDaoImpl struct {
	db *gorm.DB
}

func GetDomainQueueDao(db *gorm.DB) DomainQueueDao {
	return domainQueueDaoImpl{db: db}
}

func domainQueueModelToApi(model models.DomainQueueEntry, resp *api.DomainQueueEntryResponse) {
	resp.UUID = model.UUID
	resp.Domain = model.Domain
	resp.Status = string(model.Status)
	resp.CreatedAt = model.CreatedAt
}

func (d domainQueueDaoImpl) Append(ctx context.Context, businessUUID string, domain string) (api.DomainQueueEntryResponse, error) {
	entry := models.DomainQueueEntry{
		Domain:       domain,
		BusinessUUID: businessUUID,
		Status:       models.DomainQueuePending,
	}
	if err := d.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return api.DomainQueueEntryResponse{}, DBErrorToApi(err, "Domain queue entry", nil)
	}
	var resp api.DomainQueueEntryResponse
	domainQueueModelToApi(entry, &resp)
	return resp, nil
}

func (d domainQueueDaoImpl) PendingExists(ctx context.Context, businessUUID string, domain string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.DomainQueueEntry{}).
		Where("business_uuid = ? AND domain = ? AND status = ?", businessUUID, domain, models.DomainQueuePending).
		Count(&count).Error
	if err != nil {
		return false, DBErrorToApi(err, "Domain queue entry", nil)
	}
	return count > 0, nil
}

// Complete marks the pending entries for (businessUUID, domain) completed.
// Entries are never deleted, the queue is the audit trail.
func (d domainQueueDaoImpl) Complete(ctx context.Context, businessUUID string, domain string) error {
	result := d.db.WithContext(ctx).Model(&models.DomainQueueEntry{}).
		Where("business_uuid = ? AND domain = ? AND status = ?", businessUUID, domain, models.DomainQueuePending).
		Update("status", models.DomainQueueCompleted)
	if result.Error != nil {
		return DBErrorToApi(result.Error, "Domain queue entry", nil)
	}
	return nil
}

func (d domainQueueDaoImpl) List(ctx context.Context, businessUUID string, paginationData api.PaginationData) (api.DomainQueueCollectionResponse, int64, error) {
	var total int64
	entries := make([]models.DomainQueueEntry, 0)

	filteredDB := d.db.WithContext(ctx).Model(&models.DomainQueueEntry{}).
		Where("business_uuid = ?", businessUUID)
	if err := filteredDB.Count(&total).Error; err != nil {
		return api.DomainQueueCollectionResponse{}, 0, DBErrorToApi(err, "Domain queue entry", nil)
	}
	if err := filteredDB.Order("created_at desc").
		Limit(paginationData.Limit).
		Offset(paginationData.Offset).
		Find(&entries).Error; err != nil {
		return api.DomainQueueCollectionResponse{}, 0, DBErrorToApi(err, "Domain queue entry", nil)
	}

	responses := make([]api.DomainQueueEntryResponse, len(entries))
	for i := range entries {
		domainQueueModelToApi(entries[i], &responses[i])
	}
	return api.DomainQueueCollectionResponse{Data: responses}, total, nil
}
