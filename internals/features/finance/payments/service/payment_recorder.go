// file: internals/features/finance/payments/service/payment_recorder.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	couponService "schoolhub_backend/internals/features/finance/coupons/service"
	feeModel "schoolhub_backend/internals/features/finance/fees/model"
	paymentModel "schoolhub_backend/internals/features/finance/payments/model"
)

var (
	ErrFeeNotFound          = errors.New("fee record not found")
	ErrInvalidAmount        = errors.New("payment amount must be greater than zero")
	ErrAmountExceedsBalance = errors.New("payment exceeds outstanding balance")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentNotPending    = errors.New("payment is not pending")
)

// ErrCouponRejected wraps the validator's message for an unusable coupon.
type ErrCouponRejected struct {
	Reason string
}

func (e ErrCouponRejected) Error() string {
	return fmt.Sprintf("coupon rejected: %s", e.Reason)
}

// ApplyCredit computes the post-payment amounts for a fee record given the
// total credit (cash + discount). Pure; rejects instead of clamping.
// Zero cash is allowed only when a discount covers the credit, so a plain
// payment of zero stays invalid.
func ApplyCredit(amountKobo, amountPaidKobo, balanceKobo, cashKobo, discountKobo int64) (newPaid, newBalance int64, status feeModel.FeeStatus, err error) {
	if cashKobo < 0 || discountKobo < 0 {
		return 0, 0, "", ErrInvalidAmount
	}
	credit := cashKobo + discountKobo
	if credit <= 0 {
		return 0, 0, "", ErrInvalidAmount
	}
	if credit > balanceKobo {
		return 0, 0, "", ErrAmountExceedsBalance
	}

	newPaid = amountPaidKobo + credit
	newBalance = balanceKobo - credit
	// invariant: amount = paid + balance
	if amountKobo != newPaid+newBalance {
		return 0, 0, "", fmt.Errorf("fee arithmetic broken: %d != %d + %d", amountKobo, newPaid, newBalance)
	}
	return newPaid, newBalance, feeModel.DeriveFeeStatus(newPaid, newBalance), nil
}

// RecordPaymentInput is one user-initiated payment against a fee record.
type RecordPaymentInput struct {
	FeeRecordID    uuid.UUID
	AmountKobo     int64
	Method         paymentModel.PaymentMethod
	CouponCode     *string
	TransactionRef *string
	Metadata       datatypes.JSON
	RecordedBy     *uuid.UUID
}

// RecordPayment applies a payment to its fee record and appends the payment
// entry in ONE transaction, with the fee row locked for the duration.
// Coupon usage recording is a soft dependency: its failure is logged but
// never rolls the payment back.
func RecordPayment(db *gorm.DB, in RecordPaymentInput) (*feeModel.FeeRecord, *paymentModel.Payment, error) {
	var (
		fee feeModel.FeeRecord
		pay paymentModel.Payment
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fee, "fee_record_id = ?", in.FeeRecordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeeNotFound
			}
			return err
		}

		var (
			discountKobo int64
			couponID     *uuid.UUID
			couponCode   *string
		)
		if in.CouponCode != nil && *in.CouponCode != "" {
			v, cp, err := couponService.ValidateCode(tx, *in.CouponCode, fee.FeeRecordBalanceKobo)
			if err != nil {
				return err
			}
			if !v.Valid {
				return ErrCouponRejected{Reason: v.Message}
			}
			discountKobo = v.DiscountAmountKobo
			couponID = &cp.CouponID
			couponCode = &cp.CouponCode
		}

		newPaid, newBalance, newStatus, err := ApplyCredit(
			fee.FeeRecordAmountKobo,
			fee.FeeRecordAmountPaidKobo,
			fee.FeeRecordBalanceKobo,
			in.AmountKobo,
			discountKobo,
		)
		if err != nil {
			return err
		}

		fee.FeeRecordAmountPaidKobo = newPaid
		fee.FeeRecordBalanceKobo = newBalance
		fee.FeeRecordStatus = newStatus
		if err := tx.Save(&fee).Error; err != nil {
			return err
		}

		pay = paymentModel.Payment{
			PaymentFeeRecordID:        fee.FeeRecordID,
			PaymentStudentID:          fee.FeeRecordStudentID,
			PaymentStudentName:        fee.FeeRecordStudentName,
			PaymentAmountKobo:         in.AmountKobo,
			PaymentMethod:             in.Method,
			PaymentDate:               time.Now(),
			PaymentTransactionRef:     in.TransactionRef,
			PaymentDiscountApplied:    discountKobo > 0,
			PaymentDiscountAmountKobo: discountKobo,
			PaymentCouponID:           couponID,
			PaymentCouponCode:         couponCode,
			PaymentStatus:             paymentModel.PaymentStatusCompleted,
			PaymentMetadata:           in.Metadata,
			PaymentRecordedBy:         in.RecordedBy,
		}
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}

		// soft dependency: an exhausted guard (RowsAffected==0) does not
		// void the payment. A SQL-level failure of the UPDATE would still
		// abort the surrounding Postgres transaction; it shares the fee
		// row's connection, so it cannot run on a side transaction.
		if couponID != nil {
			if err := couponService.RecordUsage(tx, *couponID); err != nil {
				log.Printf("[WARN] coupon usage not recorded (coupon=%s payment=%s): %v", *couponID, pay.PaymentID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &fee, &pay, nil
}

/* =========================
   Gateway (pending → completed/failed) flow
========================= */

// CreatePendingPayment stores a gateway payment before checkout completes.
// The fee record is untouched until verification succeeds.
func CreatePendingPayment(db *gorm.DB, in RecordPaymentInput) (*paymentModel.Payment, error) {
	if in.TransactionRef == nil || *in.TransactionRef == "" {
		return nil, errors.New("transaction reference required for gateway payments")
	}
	if in.AmountKobo <= 0 {
		return nil, ErrInvalidAmount
	}

	var fee feeModel.FeeRecord
	if err := db.First(&fee, "fee_record_id = ?", in.FeeRecordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeNotFound
		}
		return nil, err
	}
	if in.AmountKobo > fee.FeeRecordBalanceKobo {
		return nil, ErrAmountExceedsBalance
	}

	pay := paymentModel.Payment{
		PaymentFeeRecordID:    fee.FeeRecordID,
		PaymentStudentID:      fee.FeeRecordStudentID,
		PaymentStudentName:    fee.FeeRecordStudentName,
		PaymentAmountKobo:     in.AmountKobo,
		PaymentMethod:         paymentModel.PaymentMethodPaystack,
		PaymentDate:           time.Now(),
		PaymentTransactionRef: in.TransactionRef,
		PaymentCouponCode:     in.CouponCode,
		PaymentStatus:         paymentModel.PaymentStatusPending,
		PaymentMetadata:       in.Metadata,
	}
	if err := db.Create(&pay).Error; err != nil {
		return nil, err
	}
	return &pay, nil
}

// CompletePendingPayment applies a verified gateway payment to its fee
// record. Idempotent: a reference that is already completed returns the
// stored rows unchanged. The coupon (if any) is re-validated against the
// balance at completion time.
func CompletePendingPayment(db *gorm.DB, reference string) (*feeModel.FeeRecord, *paymentModel.Payment, error) {
	var (
		fee feeModel.FeeRecord
		pay paymentModel.Payment
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&pay, "payment_transaction_ref = ?", reference).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if pay.PaymentStatus == paymentModel.PaymentStatusCompleted {
			return tx.First(&fee, "fee_record_id = ?", pay.PaymentFeeRecordID).Error
		}
		if pay.PaymentStatus != paymentModel.PaymentStatusPending {
			return ErrPaymentNotPending
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fee, "fee_record_id = ?", pay.PaymentFeeRecordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeeNotFound
			}
			return err
		}

		var (
			discountKobo int64
			couponID     *uuid.UUID
		)
		if pay.PaymentCouponCode != nil && *pay.PaymentCouponCode != "" {
			v, cp, err := couponService.ValidateCode(tx, *pay.PaymentCouponCode, fee.FeeRecordBalanceKobo)
			if err != nil {
				return err
			}
			if !v.Valid {
				return ErrCouponRejected{Reason: v.Message}
			}
			discountKobo = v.DiscountAmountKobo
			couponID = &cp.CouponID
		}

		newPaid, newBalance, newStatus, err := ApplyCredit(
			fee.FeeRecordAmountKobo,
			fee.FeeRecordAmountPaidKobo,
			fee.FeeRecordBalanceKobo,
			pay.PaymentAmountKobo,
			discountKobo,
		)
		if err != nil {
			return err
		}

		fee.FeeRecordAmountPaidKobo = newPaid
		fee.FeeRecordBalanceKobo = newBalance
		fee.FeeRecordStatus = newStatus
		if err := tx.Save(&fee).Error; err != nil {
			return err
		}

		pay.PaymentStatus = paymentModel.PaymentStatusCompleted
		pay.PaymentDate = time.Now()
		pay.PaymentDiscountApplied = discountKobo > 0
		pay.PaymentDiscountAmountKobo = discountKobo
		pay.PaymentCouponID = couponID
		if err := tx.Save(&pay).Error; err != nil {
			return err
		}

		// see RecordPayment: exhausted guard is soft, SQL failure aborts
		if couponID != nil {
			if err := couponService.RecordUsage(tx, *couponID); err != nil {
				log.Printf("[WARN] coupon usage not recorded (coupon=%s payment=%s): %v", *couponID, pay.PaymentID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &fee, &pay, nil
}

// FailPendingPayment marks a pending gateway payment failed. The fee record
// was never touched, so nothing to compensate.
func FailPendingPayment(db *gorm.DB, reference string) error {
	res := db.Model(&paymentModel.Payment{}).
		Where("payment_transaction_ref = ? AND payment_status = ?", reference, paymentModel.PaymentStatusPending).
		Update("payment_status", paymentModel.PaymentStatusFailed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotPending
	}
	return nil
}
