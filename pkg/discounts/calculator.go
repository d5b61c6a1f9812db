// Package discounts implements discount code validation and amount
// calculation. Validation applies an ordered sequence of business rules
// so clients always receive the most specific rejection reason, and the
// computed amount is bounded by the code's cap and the cart total.
package discounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/storefront-services/storefront-backend/pkg/dao"
	ce "github.com/storefront-services/storefront-backend/pkg/errors"
	"github.com/storefront-services/storefront-backend/pkg/models"
)

// Reason identifies why a discount code was rejected.
type Reason string

const (
	ReasonNotFound             Reason = "not_found"
	ReasonInactive             Reason = "inactive"
	ReasonNotYetValid          Reason = "not_yet_valid"
	ReasonExpired              Reason = "expired"
	ReasonUsageLimitReached    Reason = "usage_limit_reached"
	ReasonBelowMinimumPurchase Reason = "below_minimum_purchase"
)

// Result is the outcome of validating a discount code against a cart.
// When OK is true, Amount holds the discount in cents and Code the
// matched code; otherwise Reason and Message describe the rejection.
type Result struct {
	OK      bool
	Reason  Reason
	Message string
	Amount  int64
	Code    *models.DiscountCode
}

type Calculator struct {
	dao *dao.DaoRegistry
}

func NewCalculator(daoReg *dao.DaoRegistry) *Calculator {
	return &Calculator{dao: daoReg}
}

// Validate checks a discount code for a business against a cart total.
// The error return is reserved for infrastructure failures; business
// rejections are reported through the Result.
func (c *Calculator) Validate(ctx context.Context, businessUUID string, code string, cartTotalCents int64) (Result, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	discount, err := c.dao.DiscountCode.FetchByCode(ctx, businessUUID, normalized)
	if err != nil {
		daoError := &ce.DaoError{}
		if errors.As(err, &daoError) && daoError.NotFound {
			return rejection(ReasonNotFound, "Discount code not found"), nil
		}
		return Result{}, err
	}

	if !discount.Active {
		return rejection(ReasonInactive, "Discount code is not active"), nil
	}

	now := time.Now()
	if discount.StartsAt != nil && now.Before(*discount.StartsAt) {
		return rejection(ReasonNotYetValid, "Discount code is not yet valid"), nil
	}
	if discount.ExpiresAt != nil && now.After(*discount.ExpiresAt) {
		return rejection(ReasonExpired, "Discount code has expired"), nil
	}
	if discount.UsageLimit != nil && discount.UsageCount >= *discount.UsageLimit {
		return rejection(ReasonUsageLimitReached, "Discount code usage limit reached"), nil
	}
	if discount.MinPurchaseCents != nil && cartTotalCents < *discount.MinPurchaseCents {
		message := fmt.Sprintf("Minimum purchase of $%.2f required", float64(*discount.MinPurchaseCents)/100)
		return rejection(ReasonBelowMinimumPurchase, message), nil
	}

	return Result{
		OK:     true,
		Amount: Amount(&discount, cartTotalCents),
		Code:   &discount,
	}, nil
}

// Amount computes the discount in cents for a cart total. Percentage
// values round half away from zero. The result never exceeds the code's
// maximum discount or the cart total.
func Amount(discount *models.DiscountCode, cartTotalCents int64) int64 {
	var amount int64
	switch discount.Type {
	case models.DiscountTypePercentage:
		amount = (cartTotalCents*discount.Value + 50) / 100
	case models.DiscountTypeFixed:
		amount = discount.Value
	}

	if discount.MaxDiscountCents != nil && amount > *discount.MaxDiscountCents {
		amount = *discount.MaxDiscountCents
	}
	if amount > cartTotalCents {
		amount = cartTotalCents
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}

// Redeem records one use of a discount code. The underlying update is
// guarded so concurrent redemptions cannot exceed the usage limit.
func (c *Calculator) Redeem(ctx context.Context, businessUUID string, code string) error {
	return c.dao.DiscountCode.IncrementUsage(ctx, businessUUID, code)
}

func rejection(reason Reason, message string) Result {
	return Result{OK: false, Reason: reason, Message: message}
}
