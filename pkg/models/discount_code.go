package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const TableNameDiscountCode = "discount_codes"

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// DiscountCode belongs to exactly one business. Code is stored upper-cased
// and is unique per business. Value is percentage points for percentage
// codes and cents for fixed codes.
type DiscountCode struct {
	Base
	BusinessUUID     string       `json:"business_uuid" gorm:"not null;uniqueIndex:idx_discount_codes_business_code"`
	Code             string       `json:"code" gorm:"not null;uniqueIndex:idx_discount_codes_business_code"`
	Type             DiscountType `json:"type" gorm:"not null"`
	Value            int64        `json:"value" gorm:"not null"`
	Active           bool         `json:"active" gorm:"not null;default:true"`
	UsageLimit       *int64       `json:"usage_limit"`
	UsageCount       int64        `json:"usage_count" gorm:"not null;default:0"`
	MinPurchaseCents *int64       `json:"min_purchase_cents"`
	MaxDiscountCents *int64       `json:"max_discount_cents"`
	StartsAt         *time.Time   `json:"starts_at"`
	ExpiresAt        *time.Time   `json:"expires_at"`
}

func (d *DiscountCode) TableName() string {
	return TableNameDiscountCode
}

func (d *DiscountCode) BeforeCreate(db *gorm.DB) (err error) {
	if err = d.Base.BeforeCreate(db); err != nil {
		return err
	}
	return d.validate()
}

func (d *DiscountCode) BeforeUpdate(db *gorm.DB) (err error) {
	return d.validate()
}

func (d *DiscountCode) validate() error {
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	if d.Code == "" {
		return Error{Message: "Code cannot be blank.", Validation: true}
	}
	if d.BusinessUUID == "" {
		return Error{Message: "Business UUID cannot be blank.", Validation: true}
	}
	if !d.Type.Valid() {
		return Error{Message: "Type must be percentage or fixed.", Validation: true}
	}
	if d.Value <= 0 {
		return Error{Message: "Value must be greater than zero.", Validation: true}
	}
	if d.Type == DiscountTypePercentage && d.Value > 100 {
		return Error{Message: "Percentage value cannot exceed 100.", Validation: true}
	}
	if d.UsageLimit != nil && *d.UsageLimit < 0 {
		return Error{Message: "Usage limit cannot be negative.", Validation: true}
	}
	return nil
}

// MapForUpdate lists the user changeable fields of a discount code.
// UsageCount is excluded; it only moves through the guarded increment.
func (d *DiscountCode) MapForUpdate() map[string]interface{} {
	forUpdate := make(map[string]interface{})
	forUpdate["code"] = d.Code
	forUpdate["type"] = d.Type
	forUpdate["value"] = d.Value
	forUpdate["active"] = d.Active
	forUpdate["usage_limit"] = d.UsageLimit
	forUpdate["min_purchase_cents"] = d.MinPurchaseCents
	forUpdate["max_discount_cents"] = d.MaxDiscountCents
	forUpdate["starts_at"] = d.StartsAt
	forUpdate["expires_at"] = d.ExpiresAt
	return forUpdate
}
