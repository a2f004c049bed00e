// file: internals/features/finance/fees/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeStructure is the template an admin defines per fee type/class
// level/term; applying it to students stamps out FeeRecord rows.
type FeeStructure struct {
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_structure_id"`

	// e.g. "Tuition", "Boarding", "PTA Levy"
	FeeStructureFeeType    string `gorm:"column:fee_structure_fee_type;type:varchar(60);not null" json:"fee_structure_fee_type"`
	FeeStructureClassLevel string `gorm:"column:fee_structure_class_level;type:varchar(20);not null;index:ix_fee_structure_level" json:"fee_structure_class_level"`

	FeeStructureAmountKobo int64 `gorm:"column:fee_structure_amount_kobo;not null;check:fee_structure_amount_kobo>0" json:"fee_structure_amount_kobo"`

	FeeStructureTerm         string     `gorm:"column:fee_structure_term;type:varchar(10);not null" json:"fee_structure_term"`
	FeeStructureAcademicYear string     `gorm:"column:fee_structure_academic_year;type:varchar(9);not null" json:"fee_structure_academic_year"`
	FeeStructureDueDate      *time.Time `gorm:"column:fee_structure_due_date" json:"fee_structure_due_date,omitempty"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;not null;default:now()" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;not null;default:now()" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"-"`
}

func (FeeStructure) TableName() string {
	return "fee_structures"
}

func (m *FeeStructure) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeStructureCreatedAt.IsZero() {
		m.FeeStructureCreatedAt = now
	}
	m.FeeStructureUpdatedAt = now
	return nil
}

func (m *FeeStructure) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeStructureUpdatedAt = time.Now()
	return nil
}
