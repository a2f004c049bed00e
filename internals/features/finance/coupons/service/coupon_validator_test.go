// file: internals/features/finance/coupons/service/coupon_validator_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	couponModel "schoolhub_backend/internals/features/finance/coupons/model"
)

func activeCoupon(dt couponModel.DiscountType, value int64) couponModel.Coupon {
	return couponModel.Coupon{
		CouponCode:          "TEST10",
		CouponDiscountType:  dt,
		CouponDiscountValue: value,
		CouponMaxUses:       5,
		CouponUsedCount:     0,
		CouponExpiryDate:    time.Now().Add(24 * time.Hour),
		CouponIsActive:      true,
	}
}

func TestNormalizeCode(t *testing.T) {
	code, err := NormalizeCode("  early-bird_24 ")
	require.NoError(t, err)
	assert.Equal(t, "EARLY-BIRD_24", code)

	for _, bad := range []string{"", "ab", "has space", "toolongtoolongtoolong2024", "bad!"} {
		_, err := NormalizeCode(bad)
		assert.Errorf(t, err, "code=%q", bad)
	}
}

func TestEvaluate_Percentage(t *testing.T) {
	now := time.Now()
	cp := activeCoupon(couponModel.DiscountTypePercentage, 10)

	v := Evaluate(cp, 50_000_00, now)
	require.True(t, v.Valid)
	assert.Equal(t, int64(5_000_00), v.DiscountAmountKobo)

	// integer kobo math truncates
	v = Evaluate(cp, 999, now)
	require.True(t, v.Valid)
	assert.Equal(t, int64(99), v.DiscountAmountKobo)

	// a value pushed past 100 can never discount more than the balance
	over := activeCoupon(couponModel.DiscountTypePercentage, 150)
	v = Evaluate(over, 10_000_00, now)
	require.True(t, v.Valid)
	assert.Equal(t, int64(10_000_00), v.DiscountAmountKobo)
}

func TestEvaluate_FixedCappedAtBalance(t *testing.T) {
	now := time.Now()
	cp := activeCoupon(couponModel.DiscountTypeFixed, 10_000_00)

	v := Evaluate(cp, 50_000_00, now)
	require.True(t, v.Valid)
	assert.Equal(t, int64(10_000_00), v.DiscountAmountKobo)

	v = Evaluate(cp, 4_000_00, now)
	require.True(t, v.Valid)
	assert.Equal(t, int64(4_000_00), v.DiscountAmountKobo)
}

func TestEvaluate_FreeCoversBalance(t *testing.T) {
	cp := activeCoupon(couponModel.DiscountTypeFree, 0)
	v := Evaluate(cp, 37_500_00, time.Now())
	require.True(t, v.Valid)
	assert.Equal(t, int64(37_500_00), v.DiscountAmountKobo)
}

func TestEvaluate_Rejections(t *testing.T) {
	now := time.Now()

	inactive := activeCoupon(couponModel.DiscountTypePercentage, 10)
	inactive.CouponIsActive = false

	expired := activeCoupon(couponModel.DiscountTypePercentage, 10)
	expired.CouponExpiryDate = now.Add(-time.Hour)

	exhausted := activeCoupon(couponModel.DiscountTypePercentage, 10)
	exhausted.CouponUsedCount = exhausted.CouponMaxUses

	for name, cp := range map[string]couponModel.Coupon{
		"inactive":  inactive,
		"expired":   expired,
		"exhausted": exhausted,
	} {
		v := Evaluate(cp, 10_000_00, now)
		assert.Falsef(t, v.Valid, "case=%s", name)
		assert.Equalf(t, "coupon is invalid or expired", v.Message, "case=%s", name)
		assert.Zerof(t, v.DiscountAmountKobo, "case=%s", name)
	}

	v := Evaluate(activeCoupon(couponModel.DiscountTypePercentage, 10), 0, now)
	assert.False(t, v.Valid)
}
