// file: internals/features/finance/coupons/service/coupon_validator.go
package service

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	couponModel "schoolhub_backend/internals/features/finance/coupons/model"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,20}$`)

// NormalizeCode trims and uppercases a coupon code, returning an error for
// codes outside the allowed alphabet/length.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codePattern.MatchString(code) {
		return "", errors.New("coupon code must be 3-20 chars of A-Z, 0-9, underscore or hyphen")
	}
	return code, nil
}

// CouponValidation is the validator's verdict. DiscountAmountKobo is only
// meaningful when Valid is true.
type CouponValidation struct {
	Valid              bool   `json:"valid"`
	DiscountAmountKobo int64  `json:"discount_amount_kobo,omitempty"`
	Message            string `json:"message,omitempty"`
}

// Evaluate decides validity and discount for a coupon against an
// outstanding balance. Pure: no side effects, usage is recorded separately
// after the consuming payment succeeds.
func Evaluate(cp couponModel.Coupon, balanceKobo int64, now time.Time) CouponValidation {
	if !cp.CouponIsActive {
		return CouponValidation{Valid: false, Message: "coupon is invalid or expired"}
	}
	if now.After(cp.CouponExpiryDate) {
		return CouponValidation{Valid: false, Message: "coupon is invalid or expired"}
	}
	if cp.CouponUsedCount >= cp.CouponMaxUses {
		return CouponValidation{Valid: false, Message: "coupon is invalid or expired"}
	}
	if balanceKobo <= 0 {
		return CouponValidation{Valid: false, Message: "nothing left to discount"}
	}

	var discount int64
	switch cp.CouponDiscountType {
	case couponModel.DiscountTypePercentage:
		discount = balanceKobo * cp.CouponDiscountValue / 100
		if discount > balanceKobo {
			discount = balanceKobo
		}
	case couponModel.DiscountTypeFixed:
		discount = cp.CouponDiscountValue
		if discount > balanceKobo {
			discount = balanceKobo
		}
	case couponModel.DiscountTypeFree:
		discount = balanceKobo
	default:
		return CouponValidation{Valid: false, Message: "unknown discount type"}
	}

	return CouponValidation{Valid: true, DiscountAmountKobo: discount}
}

// ValidateCode looks a coupon up by its stored (uppercase) code and
// evaluates it against the balance. A missing coupon is reported the same
// way as an inactive/expired one.
func ValidateCode(db *gorm.DB, code string, balanceKobo int64) (CouponValidation, *couponModel.Coupon, error) {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return CouponValidation{Valid: false, Message: err.Error()}, nil, nil
	}

	var cp couponModel.Coupon
	if err := db.Where("coupon_code = ?", normalized).First(&cp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CouponValidation{Valid: false, Message: "coupon is invalid or expired"}, nil, nil
		}
		return CouponValidation{}, nil, err
	}

	v := Evaluate(cp, balanceKobo, time.Now())
	return v, &cp, nil
}

// RecordUsage increments used_count with the max-uses guard evaluated at
// write time, so concurrent consumers of a near-exhausted coupon cannot
// push it past the cap. Returns ErrUsageExhausted when the guard rejects.
var ErrUsageExhausted = errors.New("coupon usage limit reached")

func RecordUsage(db *gorm.DB, couponID uuid.UUID) error {
	res := db.Model(&couponModel.Coupon{}).
		Where("coupon_id = ? AND coupon_used_count < coupon_max_uses", couponID).
		UpdateColumn("coupon_used_count", gorm.Expr("coupon_used_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUsageExhausted
	}
	return nil
}
