// file: internals/features/finance/fees/model/fee_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — fee record status
// =========================================================

type FeeStatus string

const (
	FeeStatusUnpaid  FeeStatus = "unpaid"
	FeeStatusPartial FeeStatus = "partial"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

// DeriveFeeStatus is the stored status: a pure function of the paid and
// outstanding amounts. Overdue is an effective (read-time) state, see
// EffectiveStatus.
func DeriveFeeStatus(amountPaidKobo, balanceKobo int64) FeeStatus {
	switch {
	case balanceKobo <= 0:
		return FeeStatusPaid
	case amountPaidKobo == 0:
		return FeeStatusUnpaid
	default:
		return FeeStatusPartial
	}
}

// =========================================================
// MODEL
// =========================================================

// FeeRecord is a student's obligation for one fee type/term.
// Invariant after every successful payment:
//
//	fee_record_amount_kobo = fee_record_amount_paid_kobo + fee_record_balance_kobo
//
// Mutated only by the payment recorder; never deleted once a payment exists.
type FeeRecord struct {
	// PK
	FeeRecordID uuid.UUID `gorm:"column:fee_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_record_id"`

	// FK → fee_structures(fee_structure_id), optional for manually created fees.
	// The composite unique index makes re-applying a structure idempotent.
	FeeRecordStructureID *uuid.UUID `gorm:"column:fee_record_structure_id;type:uuid;index;uniqueIndex:uniq_fee_record_structure_student" json:"fee_record_structure_id,omitempty"`

	// FK → students(student_id) + denormalized snapshots for statements
	FeeRecordStudentID   uuid.UUID  `gorm:"column:fee_record_student_id;type:uuid;not null;index:ix_fee_record_student;uniqueIndex:uniq_fee_record_structure_student" json:"fee_record_student_id"`
	FeeRecordStudentName string     `gorm:"column:fee_record_student_name;type:varchar(120);not null" json:"fee_record_student_name"`
	FeeRecordClassID     *uuid.UUID `gorm:"column:fee_record_class_id;type:uuid;index" json:"fee_record_class_id,omitempty"`

	FeeRecordFeeType string `gorm:"column:fee_record_fee_type;type:varchar(60);not null" json:"fee_record_fee_type"`

	// Amounts (integer kobo)
	FeeRecordAmountKobo     int64 `gorm:"column:fee_record_amount_kobo;not null;check:fee_record_amount_kobo>0" json:"fee_record_amount_kobo"`
	FeeRecordAmountPaidKobo int64 `gorm:"column:fee_record_amount_paid_kobo;not null;default:0;check:fee_record_amount_paid_kobo>=0" json:"fee_record_amount_paid_kobo"`
	FeeRecordBalanceKobo    int64 `gorm:"column:fee_record_balance_kobo;not null;check:fee_record_balance_kobo>=0" json:"fee_record_balance_kobo"`

	FeeRecordDueDate *time.Time `gorm:"column:fee_record_due_date;index:ix_fee_record_due_date" json:"fee_record_due_date,omitempty"`

	FeeRecordStatus FeeStatus `gorm:"column:fee_record_status;type:varchar(10);not null;default:'unpaid';index:ix_fee_record_status" json:"fee_record_status"`

	FeeRecordTerm         string `gorm:"column:fee_record_term;type:varchar(10);not null" json:"fee_record_term"`
	FeeRecordAcademicYear string `gorm:"column:fee_record_academic_year;type:varchar(9);not null;index:ix_fee_record_year" json:"fee_record_academic_year"`

	FeeRecordCreatedAt time.Time      `gorm:"column:fee_record_created_at;not null;default:now();index:ix_fee_record_created_at" json:"fee_record_created_at"`
	FeeRecordUpdatedAt time.Time      `gorm:"column:fee_record_updated_at;not null;default:now()" json:"fee_record_updated_at"`
	FeeRecordDeletedAt gorm.DeletedAt `gorm:"column:fee_record_deleted_at;index" json:"-"`
}

func (FeeRecord) TableName() string {
	return "fees"
}

// EffectiveStatus reports overdue for an unpaid/partial fee past its due
// date; the stored status stays a pure function of the amounts.
func (m FeeRecord) EffectiveStatus(now time.Time) FeeStatus {
	if m.FeeRecordStatus != FeeStatusPaid &&
		m.FeeRecordDueDate != nil && now.After(*m.FeeRecordDueDate) {
		return FeeStatusOverdue
	}
	return m.FeeRecordStatus
}

func (m *FeeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeRecordCreatedAt.IsZero() {
		m.FeeRecordCreatedAt = now
	}
	m.FeeRecordUpdatedAt = now
	return nil
}

func (m *FeeRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeRecordUpdatedAt = time.Now()
	return nil
}
