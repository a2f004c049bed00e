// file: internals/features/finance/coupons/dto/coupon_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	couponModel "schoolhub_backend/internals/features/finance/coupons/model"
)

////////////////////////////////////////////////////////////////////////////////
// COUPONS — DTO
////////////////////////////////////////////////////////////////////////////////

type CouponCreateDTO struct {
	CouponCode          string    `json:"coupon_code" validate:"required,min=3,max=20"`
	CouponDiscountType  string    `json:"coupon_discount_type" validate:"required,oneof=percentage fixed free"`
	CouponDiscountValue int64     `json:"coupon_discount_value" validate:"min=0"`
	CouponMaxUses       int       `json:"coupon_max_uses" validate:"required,min=1"`
	CouponExpiryDate    time.Time `json:"coupon_expiry_date" validate:"required"`
}

// Update (partial) — code and usage counters are not editable
type CouponUpdateDTO struct {
	CouponDiscountValue *int64     `json:"coupon_discount_value,omitempty" validate:"omitempty,min=0"`
	CouponMaxUses       *int       `json:"coupon_max_uses,omitempty" validate:"omitempty,min=1"`
	CouponExpiryDate    *time.Time `json:"coupon_expiry_date,omitempty"`
	CouponIsActive      *bool      `json:"coupon_is_active,omitempty"`
}

type CouponValidateDTO struct {
	CouponCode  string `json:"coupon_code" validate:"required"`
	BalanceKobo int64  `json:"balance_kobo" validate:"required,min=1"`
}

type CouponResponse struct {
	CouponID            uuid.UUID `json:"coupon_id"`
	CouponCode          string    `json:"coupon_code"`
	CouponDiscountType  string    `json:"coupon_discount_type"`
	CouponDiscountValue int64     `json:"coupon_discount_value"`
	CouponMaxUses       int       `json:"coupon_max_uses"`
	CouponUsedCount     int       `json:"coupon_used_count"`
	CouponExpiryDate    time.Time `json:"coupon_expiry_date"`
	CouponIsActive      bool      `json:"coupon_is_active"`
	CouponCreatedAt     time.Time `json:"coupon_created_at"`
	CouponUpdatedAt     time.Time `json:"coupon_updated_at"`
}

func ToCouponResponse(m couponModel.Coupon) CouponResponse {
	return CouponResponse{
		CouponID:            m.CouponID,
		CouponCode:          m.CouponCode,
		CouponDiscountType:  string(m.CouponDiscountType),
		CouponDiscountValue: m.CouponDiscountValue,
		CouponMaxUses:       m.CouponMaxUses,
		CouponUsedCount:     m.CouponUsedCount,
		CouponExpiryDate:    m.CouponExpiryDate,
		CouponIsActive:      m.CouponIsActive,
		CouponCreatedAt:     m.CouponCreatedAt,
		CouponUpdatedAt:     m.CouponUpdatedAt,
	}
}

func ToCouponResponses(list []couponModel.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToCouponResponse(v))
	}
	return out
}

func ApplyCouponUpdate(m *couponModel.Coupon, d CouponUpdateDTO) {
	if d.CouponDiscountValue != nil {
		m.CouponDiscountValue = *d.CouponDiscountValue
	}
	if d.CouponMaxUses != nil {
		m.CouponMaxUses = *d.CouponMaxUses
	}
	if d.CouponExpiryDate != nil {
		m.CouponExpiryDate = *d.CouponExpiryDate
	}
	if d.CouponIsActive != nil {
		m.CouponIsActive = *d.CouponIsActive
	}
}
