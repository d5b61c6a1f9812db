package dao

import (
	"context"

	"github.com/storefront-services/storefront-backend/pkg/api"
	"github.com/storefront-services/storefront-backend/pkg/models"

	"gorm.io/gorm"
)

type DaoRegistry struct {
	Business     BusinessDao
	DomainQueue  DomainQueueDao
	DiscountCode DiscountCodeDao
}

func GetDaoRegistry(db *gorm.DB) *DaoRegistry {
	reg := DaoRegistry{
		Business:     businessDaoImpl{db: db},
		DomainQueue:  domainQueueDaoImpl{db: db},
		DiscountCode: discountCodeDaoImpl{db: db},
	}
	return &reg
}

type BusinessDao interface {
	Create(ctx context.Context, business *models.Business) (api.BusinessResponse, error)
	Fetch(ctx context.Context, uuid string) (api.BusinessResponse, error)
	FetchModel(ctx context.Context, uuid string) (models.Business, error)
	FetchBySubdomain(ctx context.Context, subdomain string) (models.Business, error)
	FetchByCustomDomain(ctx context.Context, domain string) (models.Business, error)
	List(ctx context.Context, paginationData api.PaginationData) (api.BusinessCollectionResponse, int64, error)
	Update(ctx context.Context, uuid string, request api.BusinessUpdateRequest) error
	SetCustomDomain(ctx context.Context, uuid string, domain *string, status models.DomainStatus) error
	SetDomainStatus(ctx context.Context, uuid string, status models.DomainStatus) error
}

type DomainQueueDao interface {
	Append(ctx context.Context, businessUUID string, domain string) (api.DomainQueueEntryResponse, error)
	PendingExists(ctx context.Context, businessUUID string, domain string) (bool, error)
	Complete(ctx context.Context, businessUUID string, domain string) error
	List(ctx context.Context, businessUUID string, paginationData api.PaginationData) (api.DomainQueueCollectionResponse, int64, error)
}

type DiscountCodeDao interface {
	Create(ctx context.Context, businessUUID string, request api.DiscountCodeRequest) (api.DiscountCodeResponse, error)
	Fetch(ctx context.Context, businessUUID string, uuid string) (api.DiscountCodeResponse, error)
	FetchByCode(ctx context.Context, businessUUID string, code string) (models.DiscountCode, error)
	List(ctx context.Context, businessUUID string, paginationData api.PaginationData) (api.DiscountCodeCollectionResponse, int64, error)
	Update(ctx context.Context, businessUUID string, uuid string, request api.DiscountCodeRequest) error
	Delete(ctx context.Context, businessUUID string, uuid string) error
	IncrementUsage(ctx context.Context, businessUUID string, code string) error
}
