// file: internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	feeModel "schoolhub_backend/internals/features/finance/fees/model"
	helper "schoolhub_backend/internals/helpers"
)

////////////////////////////////////////////////////////////////////////////////
// FEE STRUCTURES — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeStructureCreateDTO struct {
	FeeStructureFeeType      string     `json:"fee_structure_fee_type" validate:"required,max=60"`
	FeeStructureClassLevel   string     `json:"fee_structure_class_level" validate:"required,max=20"`
	FeeStructureAmountKobo   int64      `json:"fee_structure_amount_kobo" validate:"required,min=1"`
	FeeStructureTerm         string     `json:"fee_structure_term" validate:"required,oneof=first second third"`
	FeeStructureAcademicYear string     `json:"fee_structure_academic_year" validate:"required,max=9"`
	FeeStructureDueDate      *time.Time `json:"fee_structure_due_date,omitempty"`
}

type FeeStructureResponse struct {
	FeeStructureID           uuid.UUID  `json:"fee_structure_id"`
	FeeStructureFeeType      string     `json:"fee_structure_fee_type"`
	FeeStructureClassLevel   string     `json:"fee_structure_class_level"`
	FeeStructureAmountKobo   int64      `json:"fee_structure_amount_kobo"`
	FeeStructureAmountNaira  string     `json:"fee_structure_amount_naira"`
	FeeStructureTerm         string     `json:"fee_structure_term"`
	FeeStructureAcademicYear string     `json:"fee_structure_academic_year"`
	FeeStructureDueDate      *time.Time `json:"fee_structure_due_date,omitempty"`
	FeeStructureCreatedAt    time.Time  `json:"fee_structure_created_at"`
}

func ToFeeStructureResponse(m feeModel.FeeStructure) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:           m.FeeStructureID,
		FeeStructureFeeType:      m.FeeStructureFeeType,
		FeeStructureClassLevel:   m.FeeStructureClassLevel,
		FeeStructureAmountKobo:   m.FeeStructureAmountKobo,
		FeeStructureAmountNaira:  helper.FormatNaira(m.FeeStructureAmountKobo),
		FeeStructureTerm:         m.FeeStructureTerm,
		FeeStructureAcademicYear: m.FeeStructureAcademicYear,
		FeeStructureDueDate:      m.FeeStructureDueDate,
		FeeStructureCreatedAt:    m.FeeStructureCreatedAt,
	}
}

func ToFeeStructureResponses(list []feeModel.FeeStructure) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeStructureResponse(v))
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////
// FEE RECORDS — DTO
////////////////////////////////////////////////////////////////////////////////

// Manual fee for one student, outside any structure.
type FeeRecordCreateDTO struct {
	FeeRecordStudentID    uuid.UUID  `json:"fee_record_student_id" validate:"required"`
	FeeRecordFeeType      string     `json:"fee_record_fee_type" validate:"required,max=60"`
	FeeRecordAmountKobo   int64      `json:"fee_record_amount_kobo" validate:"required,min=1"`
	FeeRecordTerm         string     `json:"fee_record_term" validate:"required,oneof=first second third"`
	FeeRecordAcademicYear string     `json:"fee_record_academic_year" validate:"required,max=9"`
	FeeRecordDueDate      *time.Time `json:"fee_record_due_date,omitempty"`
}

type FeeRecordResponse struct {
	FeeRecordID          uuid.UUID  `json:"fee_record_id"`
	FeeRecordStructureID *uuid.UUID `json:"fee_record_structure_id,omitempty"`
	FeeRecordStudentID   uuid.UUID  `json:"fee_record_student_id"`
	FeeRecordStudentName string     `json:"fee_record_student_name"`
	FeeRecordClassID     *uuid.UUID `json:"fee_record_class_id,omitempty"`

	FeeRecordFeeType string `json:"fee_record_fee_type"`

	FeeRecordAmountKobo     int64  `json:"fee_record_amount_kobo"`
	FeeRecordAmountPaidKobo int64  `json:"fee_record_amount_paid_kobo"`
	FeeRecordBalanceKobo    int64  `json:"fee_record_balance_kobo"`
	FeeRecordAmountNaira    string `json:"fee_record_amount_naira"`
	FeeRecordBalanceNaira   string `json:"fee_record_balance_naira"`

	FeeRecordDueDate *time.Time `json:"fee_record_due_date,omitempty"`

	// Stored status plus the due-date aware view of it
	FeeRecordStatus          string `json:"fee_record_status"`
	FeeRecordEffectiveStatus string `json:"fee_record_effective_status"`

	FeeRecordTerm         string    `json:"fee_record_term"`
	FeeRecordAcademicYear string    `json:"fee_record_academic_year"`
	FeeRecordCreatedAt    time.Time `json:"fee_record_created_at"`
	FeeRecordUpdatedAt    time.Time `json:"fee_record_updated_at"`
}

func ToFeeRecordResponse(m feeModel.FeeRecord, now time.Time) FeeRecordResponse {
	return FeeRecordResponse{
		FeeRecordID:          m.FeeRecordID,
		FeeRecordStructureID: m.FeeRecordStructureID,
		FeeRecordStudentID:   m.FeeRecordStudentID,
		FeeRecordStudentName: m.FeeRecordStudentName,
		FeeRecordClassID:     m.FeeRecordClassID,

		FeeRecordFeeType: m.FeeRecordFeeType,

		FeeRecordAmountKobo:     m.FeeRecordAmountKobo,
		FeeRecordAmountPaidKobo: m.FeeRecordAmountPaidKobo,
		FeeRecordBalanceKobo:    m.FeeRecordBalanceKobo,
		FeeRecordAmountNaira:    helper.FormatNaira(m.FeeRecordAmountKobo),
		FeeRecordBalanceNaira:   helper.FormatNaira(m.FeeRecordBalanceKobo),

		FeeRecordDueDate: m.FeeRecordDueDate,

		FeeRecordStatus:          string(m.FeeRecordStatus),
		FeeRecordEffectiveStatus: string(m.EffectiveStatus(now)),

		FeeRecordTerm:         m.FeeRecordTerm,
		FeeRecordAcademicYear: m.FeeRecordAcademicYear,
		FeeRecordCreatedAt:    m.FeeRecordCreatedAt,
		FeeRecordUpdatedAt:    m.FeeRecordUpdatedAt,
	}
}

func ToFeeRecordResponses(list []feeModel.FeeRecord, now time.Time) []FeeRecordResponse {
	out := make([]FeeRecordResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeRecordResponse(v, now))
	}
	return out
}
