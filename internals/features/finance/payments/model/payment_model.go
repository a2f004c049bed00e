// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — payment method & status
// =========================================================

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodPOS      PaymentMethod = "pos"
	PaymentMethodPaystack PaymentMethod = "paystack"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// =========================================================
// MODEL
// =========================================================

// Payment is one entry in a fee record's append-only payment log.
// Completed rows are immutable; only pending gateway payments transition
// (to completed or failed). Never deleted, no soft-delete column.
type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	// FK → fees(fee_record_id); weak reference, no cascade
	PaymentFeeRecordID uuid.UUID `gorm:"column:payment_fee_record_id;type:uuid;not null;index:ix_payment_fee_record" json:"payment_fee_record_id"`

	PaymentStudentID   uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index:ix_payment_student" json:"payment_student_id"`
	PaymentStudentName string    `gorm:"column:payment_student_name;type:varchar(120);not null" json:"payment_student_name"`

	// Cash actually received (integer kobo); discounts are tracked apart.
	// Zero only when a coupon covers the whole outstanding balance.
	PaymentAmountKobo int64 `gorm:"column:payment_amount_kobo;not null;check:payment_amount_kobo>=0" json:"payment_amount_kobo"`

	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(10);not null" json:"payment_method"`
	PaymentDate   time.Time     `gorm:"column:payment_date;not null;default:now();index:ix_payment_date" json:"payment_date"`

	// Gateway reference (unique when present)
	PaymentTransactionRef *string `gorm:"column:payment_transaction_ref;type:varchar(64);uniqueIndex:uniq_payment_transaction_ref" json:"payment_transaction_ref,omitempty"`

	// Coupon application snapshot
	PaymentDiscountApplied    bool       `gorm:"column:payment_discount_applied;not null;default:false" json:"payment_discount_applied"`
	PaymentDiscountAmountKobo int64      `gorm:"column:payment_discount_amount_kobo;not null;default:0" json:"payment_discount_amount_kobo"`
	PaymentCouponID           *uuid.UUID `gorm:"column:payment_coupon_id;type:uuid;index" json:"payment_coupon_id,omitempty"`
	PaymentCouponCode         *string    `gorm:"column:payment_coupon_code;type:varchar(20)" json:"payment_coupon_code,omitempty"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(10);not null;default:'completed';index:ix_payment_status" json:"payment_status"`

	PaymentMetadata datatypes.JSON `gorm:"column:payment_metadata;type:jsonb" json:"payment_metadata,omitempty"`

	// FK → users(user_id), staff who recorded it (nil for gateway payments)
	PaymentRecordedBy *uuid.UUID `gorm:"column:payment_recorded_by;type:uuid" json:"payment_recorded_by,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null;default:now()" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;not null;default:now()" json:"payment_updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

func (m *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	if m.PaymentDate.IsZero() {
		m.PaymentDate = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *Payment) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
