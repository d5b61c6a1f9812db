package dao

import (
	"context"

	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/models"

	"gorm.io/gorm"
)

type businessDaoImpl struct {
	db *gorm.DB
}

func GetBusinessDao(db *gorm.DB) BusinessDao {
	return businessDaoImpl{db: db}
}

func businessModelToApi(model models.Business, resp *api.BusinessResponse) {
	resp.UUID = model.UUID
	resp.Name = model.Name
	resp.Subdomain = model.Subdomain
	resp.CustomDomain = model.CustomDomain
	resp.DomainStatus = string(model.DomainStatus)
	resp.Status = string(model.Status)
	resp.Template = model.Template
}

func (b businessDaoImpl) Create(ctx context.Context, business *models.Business) (api.BusinessResponse, error) {
	if err := b.db.WithContext(ctx).Create(business).Error; err != nil {
		return api.BusinessResponse{}, DBErrorToApi(err, "Business", nil)
	}
	var created api.BusinessResponse
	businessModelToApi(*business, &created)
	return created, nil
}

func (b businessDaoImpl) Fetch(ctx context.Context, uuid string) (api.BusinessResponse, error) {
	model, err := b.FetchModel(ctx, uuid)
	if err != nil {
		return api.BusinessResponse{}, err
	}
	var resp api.BusinessResponse
	businessModelToApi(model, &resp)
	return resp, nil
}

func (b businessDaoImpl) FetchModel(ctx context.Context, uuid string) (models.Business, error) {
	var found models.Business
	if err := b.db.WithContext(ctx).Where("uuid = ?", uuid).First(&found).Error; err != nil {
		return models.Business{}, DBErrorToApi(err, "Business", &uuid)
	}
	return found, nil
}

func (b businessDaoImpl) FetchBySubdomain(ctx context.Context, subdomain string) (models.Business, error) {
	var found models.Business
	if err := b.db.WithContext(ctx).Where("subdomain = ?", subdomain).First(&found).Error; err != nil {
		return models.Business{}, DBErrorToApi(err, "Business", nil)
	}
	return found, nil
}

func (b businessDaoImpl) FetchByCustomDomain(ctx context.Context, domain string) (models.Business, error) {
	var found models.Business
	if err := b.db.WithContext(ctx).Where("custom_domain = ?", domain).First(&found).Error; err != nil {
		return models.Business{}, DBErrorToApi(err, "Business", nil)
	}
	return found, nil
}

func (b businessDaoImpl) List(ctx context.Context, paginationData api.PaginationData) (api.BusinessCollectionResponse, int64, error) {
	var totalBusinesses int64
	businesses := make([]models.Business, 0)

	filteredDB := b.db.WithContext(ctx).Model(&models.Business{})
	if err := filteredDB.Count(&totalBusinesses).Error; err != nil {
		return api.BusinessCollectionResponse{}, 0, DBErrorToApi(err, "Business", nil)
	}
	if err := filteredDB.Order("created_at asc").
		Limit(paginationData.Limit).
		Offset(paginationData.Offset).
		Find(&businesses).Error; err != nil {
		return api.BusinessCollectionResponse{}, 0, DBErrorToApi(err, "Business", nil)
	}

	responses := make([]api.BusinessResponse, len(businesses))
	for i := range businesses {
		businessModelToApi(businesses[i], &responses[i])
	}
	return api.BusinessCollectionResponse{Data: responses}, totalBusinesses, nil
}

func (b businessDaoImpl) Update(ctx context.Context, uuid string, request api.BusinessUpdateRequest) error {
	model, err := b.FetchModel(ctx, uuid)
	if err != nil {
		return err
	}
	if request.Name != nil {
		model.Name = *request.Name
	}
	if request.Template != nil {
		model.Template = *request.Template
	}
	if model.Name == "" {
		return DBErrorToApi(models.Error{Message: "Name cannot be blank.", Validation: true}, "Business", &uuid)
	}

	result := b.db.WithContext(ctx).Model(&models.Business{}).
		Where("uuid = ?", uuid).
		Updates(model.MapForUpdate())
	if result.Error != nil {
		return DBErrorToApi(result.Error, "Business", &uuid)
	}
	return nil
}

func (b businessDaoImpl) SetCustomDomain(ctx context.Context, uuid string, domain *string, status models.DomainStatus) error {
	result := b.db.WithContext(ctx).Model(&models.Business{}).
		Where("uuid = ?", uuid).
		Updates(map[string]interface{}{"custom_domain": domain, "domain_status": status})
	if result.Error != nil {
		return DBErrorToApi(result.Error, "Business", &uuid)
	}
	if result.RowsAffected == 0 {
		return DBErrorToApi(gorm.ErrRecordNotFound, "Business", &uuid)
	}
	return nil
}

func (b businessDaoImpl) SetDomainStatus(ctx context.Context, uuid string, status models.DomainStatus) error {
	result := b.db.WithContext(ctx).Model(&models.Business{}).
		Where("uuid = ?", uuid).
		Update("domain_status", status)
	if result.Error != nil {
		return DBErrorToApi(result.Error, "Business", &uuid)
	}
	if result.RowsAffected == 0 {
		return DBErrorToApi(gorm.ErrRecordNotFound, "Business", &uuid)
	}
	return nil
}
