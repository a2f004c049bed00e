// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — student status
// =========================================================

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusWithdrawn StudentStatus = "withdrawn"
)

// =========================================================
// MODEL
// =========================================================

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	StudentAdmissionNo string `gorm:"column:student_admission_no;type:varchar(30);not null;uniqueIndex:uniq_student_admission_no" json:"student_admission_no"`
	StudentFirstName   string `gorm:"column:student_first_name;type:varchar(60);not null" json:"student_first_name"`
	StudentLastName    string `gorm:"column:student_last_name;type:varchar(60);not null" json:"student_last_name"`
	StudentGender      string `gorm:"column:student_gender;type:varchar(10)" json:"student_gender"`

	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`

	// FK → classes(class_id)
	StudentClassID *uuid.UUID `gorm:"column:student_class_id;type:uuid;index:ix_student_class" json:"student_class_id,omitempty"`

	StudentGuardianName  *string `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:varchar(20)" json:"student_guardian_phone,omitempty"`
	StudentEmail         *string `gorm:"column:student_email;type:varchar(120)" json:"student_email,omitempty"`

	StudentStatus StudentStatus `gorm:"column:student_status;type:varchar(20);not null;default:'active';index:ix_student_status" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now();index:ix_student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// FullName joins first and last name for denormalized snapshots on fee
// records, payments and results.
func (m Student) FullName() string {
	return m.StudentFirstName + " " + m.StudentLastName
}

// =========================================================
// HOOKS — explicit timestamps
// =========================================================

func (m *Student) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}
