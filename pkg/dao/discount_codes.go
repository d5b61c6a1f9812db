package dao

import (
	"context"
	"strings"

	"github.com/storefront-services/storefront-backend/pkg/api"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/models"

	"gorm.io/gorm"
)

type discountCodeDaoImpl struct {
	db *gorm.DB
}

func GetDiscountCodeDao(db *gorm.DB) DiscountCodeDao {
	return discountCodeDaoImpl{db: db}
}

func discountCodeModelToApi(model models.DiscountCode, resp *api.DiscountCodeResponse) {
	resp.UUID = model.UUID
	resp.Code = model.Code
	resp.Type = string(model.Type)
	resp.Value = model.Value
	resp.Active = model.Active
	resp.UsageLimit = model.UsageLimit
	resp.UsageCount = model.UsageCount
	resp.MinPurchaseCents = model.MinPurchaseCents
	resp.MaxDiscountCents = model.MaxDiscountCents
	resp.StartsAt = model.StartsAt
	resp.ExpiresAt = model.ExpiresAt
}

func discountCodeApiToModel(request api.DiscountCodeRequest, model *models.DiscountCode) {
	if request.Code != nil {
		model.Code = *request.Code
	}
	if request.Type != nil {
		model.Type = models.DiscountType(*request.Type)
	}
	if request.Value != nil {
		model.Value = *request.Value
	}
	if request.Active != nil {
		model.Active = *request.Active
	}
	model.UsageLimit = request.UsageLimit
	model.MinPurchaseCents = request.MinPurchaseCents
	model.MaxDiscountCents = request.MaxDiscountCents
	model.StartsAt = request.StartsAt
	model.ExpiresAt = request.ExpiresAt
}

func (d discountCodeDaoImpl) Create(ctx context.Context, businessUUID string, request api.DiscountCodeRequest) (api.DiscountCodeResponse, error) {
	model := models.DiscountCode{BusinessUUID: businessUUID, Active: true}
	discountCodeApiToModel(request, &model)

	if err := d.db.WithContext(ctx).Create(&model).Error; err != nil {
		return api.DiscountCodeResponse{}, DBErrorToApi(err, "Discount code", nil)
	}
	var created api.DiscountCodeResponse
	discountCodeModelToApi(model, &created)
	return created, nil
}

func (d discountCodeDaoImpl) fetchModel(ctx context.Context, businessUUID string, uuid string) (models.DiscountCode, error) {
	var found models.DiscountCode
	err := d.db.WithContext(ctx).
		Where("business_uuid = ? AND uuid = ?", businessUUID, uuid).
		First(&found).Error
	if err != nil {
		return models.DiscountCode{}, DBErrorToApi(err, "Discount code", &uuid)
	}
	return found, nil
}

func (d discountCodeDaoImpl) Fetch(ctx context.Context, businessUUID string, uuid string) (api.DiscountCodeResponse, error) {
	model, err := d.fetchModel(ctx, businessUUID, uuid)
	if err != nil {
		return api.DiscountCodeResponse{}, err
	}
	var resp api.DiscountCodeResponse
	discountCodeModelToApi(model, &resp)
	return resp, nil
}

func (d discountCodeDaoImpl) FetchByCode(ctx context.Context, businessUUID string, code string) (models.DiscountCode, error) {
	var found models.DiscountCode
	normalized := strings.ToUpper(strings.TrimSpace(code))
	err := d.db.WithContext(ctx).
		Where("business_uuid = ? AND code = ?", businessUUID, normalized).
		First(&found).Error
	if err != nil {
		return models.DiscountCode{}, DBErrorToApi(err, "Discount code", nil)
	}
	return found, nil
}

func (d discountCodeDaoImpl) List(ctx context.Context, businessUUID string, paginationData api.PaginationData) (api.DiscountCodeCollectionResponse, int64, error) {
	var total int64
	codes := make([]models.DiscountCode, 0)

	filteredDB := d.db.WithContext(ctx).Model(&models.DiscountCode{}).
		Where("business_uuid = ?", businessUUID)
	if err := filteredDB.Count(&total).Error; err != nil {
		return api.DiscountCodeCollectionResponse{}, 0, DBErrorToApi(err, "Discount code", nil)
	}
	if err := filteredDB.Order("created_at asc").
		Limit(paginationData.Limit).
		Offset(paginationData.Offset).
		Find(&codes).Error; err != nil {
		return api.DiscountCodeCollectionResponse{}, 0, DBErrorToApi(err, "Discount code", nil)
	}

	responses := make([]api.DiscountCodeResponse, len(codes))
	for i := range codes {
		discountCodeModelToApi(codes[i], &responses[i])
	}
	return api.DiscountCodeCollectionResponse{Data: responses}, total, nil
}

func (d discountCodeDaoImpl) Update(ctx context.Context, businessUUID string, uuid string, request api.DiscountCodeRequest) error {
	model, err := d.fetchModel(ctx, businessUUID, uuid)
	if err != nil {
		return err
	}
	discountCodeApiToModel(request, &model)
	if err := model.BeforeUpdate(nil); err != nil {
		return DBErrorToApi(err, "Discount code", &uuid)
	}

	result := d.db.WithContext(ctx).Model(&models.DiscountCode{}).
		Where("business_uuid = ? AND uuid = ?", businessUUID, uuid).
		Updates(model.MapForUpdate())
	if result.Error != nil {
		return DBErrorToApi(result.Error, "Discount code", &uuid)
	}
	return nil
}

func (d discountCodeDaoImpl) Delete(ctx context.Context, businessUUID string, uuid string) error {
	if _, err := d.fetchModel(ctx, businessUUID, uuid); err != nil {
		return err
	}
	result := d.db.WithContext(ctx).
		Where("business_uuid = ? AND uuid = ?", businessUUID, uuid).
		Delete(&models.DiscountCode{})
	if result.Error != nil {
		return DBErrorToApi(result.Error, "Discount code", &uuid)
	}
	return nil
}

// IncrementUsage bumps usage_count iff the cap has room. The guard runs in
// the database so concurrent redemptions cannot push past the limit.
func (d discountCodeDaoImpl) IncrementUsage(ctx context.Context, businessUUID string, code string) error {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	result := d.db.WithContext(ctx).Model(&models.DiscountCode{}).
		Where("business_uuid = ? AND code = ?", businessUUID, normalized).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		Update("usage_count", gorm.Expr("usage_count + 1"))
	if result.Error != nil {
		return DBErrorToApi(result.Error, "Discount code", nil)
	}
	if result.RowsAffected == 0 {
		return &ce.DaoError{NotFound: true, Message: "Discount code not found or usage limit reached"}
	}
	return nil
}
