package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountCodeBeforeCreate(t *testing.T) {
	code := DiscountCode{
		BusinessUUID: "b-1",
		Code:         "  summer10 ",
		Type:         DiscountTypePercentage,
		Value:        10,
	}
	err := code.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "SUMMER10", code.Code)
	assert.NotEmpty(t, code.UUID)

	badType := DiscountCode{BusinessUUID: "b-1", Code: "X", Type: "flat", Value: 100}
	assert.Error(t, badType.BeforeCreate(nil))

	overPercent := DiscountCode{BusinessUUID: "b-1", Code: "X", Type: DiscountTypePercentage, Value: 150}
	assert.Error(t, overPercent.BeforeCreate(nil))

	zeroValue := DiscountCode{BusinessUUID: "b-1", Code: "X", Type: DiscountTypeFixed, Value: 0}
	assert.Error(t, zeroValue.BeforeCreate(nil))

	blankCode := DiscountCode{BusinessUUID: "b-1", Code: "   ", Type: DiscountTypeFixed, Value: 100}
	assert.Error(t, blankCode.BeforeCreate(nil))
}

func TestDiscountCodeMapForUpdate(t *testing.T) {
	code := DiscountCode{
		BusinessUUID: "b-1",
		Code:         "WELCOME",
		Type:         DiscountTypeFixed,
		Value:        500,
		Active:       true,
	}
	forUpdate := code.MapForUpdate()
	assert.Equal(t, "WELCOME", forUpdate["code"])
	assert.NotContains(t, forUpdate, "usage_count")
	assert.NotContains(t, forUpdate, "business_uuid")
}
