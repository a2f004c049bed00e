// file: internals/features/finance/coupons/model/coupon_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — discount type
// =========================================================

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypeFree       DiscountType = "free"
)

// =========================================================
// MODEL
// =========================================================

// Coupon is a discount code for fee payments. Codes are stored uppercase
// (alnum/underscore/hyphen, 3–20 chars) and unique via index.
// usage recording must keep coupon_used_count <= coupon_max_uses.
type Coupon struct {
	CouponID uuid.UUID `gorm:"column:coupon_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"coupon_id"`

	CouponCode string `gorm:"column:coupon_code;type:varchar(20);not null;uniqueIndex:uniq_coupon_code" json:"coupon_code"`

	CouponDiscountType DiscountType `gorm:"column:coupon_discount_type;type:varchar(10);not null" json:"coupon_discount_type"`

	// percentage: percent points (1–100); fixed: kobo; free: ignored
	CouponDiscountValue int64 `gorm:"column:coupon_discount_value;not null;default:0;check:coupon_discount_value>=0" json:"coupon_discount_value"`

	CouponMaxUses   int `gorm:"column:coupon_max_uses;not null;check:coupon_max_uses>0" json:"coupon_max_uses"`
	CouponUsedCount int `gorm:"column:coupon_used_count;not null;default:0;check:coupon_used_count>=0" json:"coupon_used_count"`

	CouponExpiryDate time.Time `gorm:"column:coupon_expiry_date;not null" json:"coupon_expiry_date"`
	CouponIsActive   bool      `gorm:"column:coupon_is_active;not null;default:true;index:ix_coupon_active" json:"coupon_is_active"`

	CouponCreatedAt time.Time      `gorm:"column:coupon_created_at;not null;default:now()" json:"coupon_created_at"`
	CouponUpdatedAt time.Time      `gorm:"column:coupon_updated_at;not null;default:now()" json:"coupon_updated_at"`
	CouponDeletedAt gorm.DeletedAt `gorm:"column:coupon_deleted_at;index" json:"-"`
}

func (Coupon) TableName() string {
	return "coupons"
}

func (m *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.CouponCreatedAt.IsZero() {
		m.CouponCreatedAt = now
	}
	m.CouponUpdatedAt = now
	return nil
}

func (m *Coupon) BeforeUpdate(tx *gorm.DB) (err error) {
	m.CouponUpdatedAt = time.Now()
	return nil
}
