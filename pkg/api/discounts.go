package api

import "time"

type DiscountCodeRequest struct {
	Code             *string    `json:"code"`
	Type             *string    `json:"type"`
	Value            *int64     `json:"value"`
	Active           *bool      `json:"active"`
	UsageLimit       *int64     `json:"usage_limit"`
	MinPurchaseCents *int64     `json:"min_purchase_cents"`
	MaxDiscountCents *int64     `json:"max_discount_cents"`
	StartsAt         *time.Time `json:"starts_at"`
	ExpiresAt        *time.Time `json:"expires_at"`
}

type DiscountCodeResponse struct {
	UUID             string     `json:"uuid" readonly:"true"`
	Code             string     `json:"code"`
	Type             string     `json:"type"`
	Value            int64      `json:"value"`
	Active           bool       `json:"active"`
	UsageLimit       *int64     `json:"usage_limit"`
	UsageCount       int64      `json:"usage_count"`
	MinPurchaseCents *int64     `json:"min_purchase_cents"`
	MaxDiscountCents *int64     `json:"max_discount_cents"`
	StartsAt         *time.Time `json:"starts_at"`
	ExpiresAt        *time.Time `json:"expires_at"`
}

type DiscountCodeCollectionResponse struct {
	Data  []DiscountCodeResponse `json:"data"`
	Meta  ResponseMetadata       `json:"meta"`
	Links Links                  `json:"links"`
}

func (d *DiscountCodeCollectionResponse) SetMetadata(meta ResponseMetadata, links Links) {
	d.Meta = meta
	d.Links = links
}

type RedeemDiscountRequest struct {
	Code         string `json:"code"`
	BusinessUUID string `json:"business_uuid"`
}

type ValidateDiscountRequest struct {
	Code           string `json:"code"`
	BusinessUUID   string `json:"business_uuid"`
	CartTotalCents int64  `json:"cart_total"`
}

// AppliedDiscount is the public slice of a discount code plus the computed,
// clamped amount for the cart it was validated against.
type AppliedDiscount struct {
	Code           string `json:"code"`
	Type           string `json:"type"`
	Value          int64  `json:"value"`
	DiscountAmount int64  `json:"discount_amount"`
}

type ValidateDiscountResponse struct {
	Valid    bool             `json:"valid"`
	Discount *AppliedDiscount `json:"discount,omitempty"`
	Error    string           `json:"error,omitempty"`
}
