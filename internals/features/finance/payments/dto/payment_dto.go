// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	paymentModel "schoolhub_backend/internals/features/finance/payments/model"
	helper "schoolhub_backend/internals/helpers"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type PaymentCreateDTO struct {
	PaymentFeeRecordID    uuid.UUID      `json:"payment_fee_record_id" validate:"required"`
	PaymentAmountKobo     int64          `json:"payment_amount_kobo" validate:"min=0"`
	PaymentMethod         string         `json:"payment_method" validate:"required,oneof=cash transfer pos paystack"`
	PaymentCouponCode     *string        `json:"payment_coupon_code,omitempty" validate:"omitempty,min=3,max=20"`
	PaymentTransactionRef *string        `json:"payment_transaction_ref,omitempty" validate:"omitempty,max=64"`
	PaymentMetadata       datatypes.JSON `json:"payment_metadata,omitempty"`
}

type PaymentResponse struct {
	PaymentID          uuid.UUID `json:"payment_id"`
	PaymentFeeRecordID uuid.UUID `json:"payment_fee_record_id"`
	PaymentStudentID   uuid.UUID `json:"payment_student_id"`
	PaymentStudentName string    `json:"payment_student_name"`

	PaymentAmountKobo  int64     `json:"payment_amount_kobo"`
	PaymentAmountNaira string    `json:"payment_amount_naira"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentDate        time.Time `json:"payment_date"`

	PaymentTransactionRef *string `json:"payment_transaction_ref,omitempty"`

	PaymentDiscountApplied    bool       `json:"payment_discount_applied"`
	PaymentDiscountAmountKobo int64      `json:"payment_discount_amount_kobo"`
	PaymentCouponID           *uuid.UUID `json:"payment_coupon_id,omitempty"`
	PaymentCouponCode         *string    `json:"payment_coupon_code,omitempty"`

	PaymentStatus     string         `json:"payment_status"`
	PaymentMetadata   datatypes.JSON `json:"payment_metadata,omitempty"`
	PaymentRecordedBy *uuid.UUID     `json:"payment_recorded_by,omitempty"`
	PaymentCreatedAt  time.Time      `json:"payment_created_at"`
}

func ToPaymentResponse(m paymentModel.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          m.PaymentID,
		PaymentFeeRecordID: m.PaymentFeeRecordID,
		PaymentStudentID:   m.PaymentStudentID,
		PaymentStudentName: m.PaymentStudentName,

		PaymentAmountKobo:  m.PaymentAmountKobo,
		PaymentAmountNaira: helper.FormatNaira(m.PaymentAmountKobo),
		PaymentMethod:      string(m.PaymentMethod),
		PaymentDate:        m.PaymentDate,

		PaymentTransactionRef: m.PaymentTransactionRef,

		PaymentDiscountApplied:    m.PaymentDiscountApplied,
		PaymentDiscountAmountKobo: m.PaymentDiscountAmountKobo,
		PaymentCouponID:           m.PaymentCouponID,
		PaymentCouponCode:         m.PaymentCouponCode,

		PaymentStatus:     string(m.PaymentStatus),
		PaymentMetadata:   m.PaymentMetadata,
		PaymentRecordedBy: m.PaymentRecordedBy,
		PaymentCreatedAt:  m.PaymentCreatedAt,
	}
}

func ToPaymentResponses(list []paymentModel.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToPaymentResponse(v))
	}
	return out
}
