// file: internals/features/school/classes/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subject struct {
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`

	SubjectName string `gorm:"column:subject_name;type:varchar(80);not null" json:"subject_name"`
	SubjectCode string `gorm:"column:subject_code;type:varchar(20);not null;uniqueIndex:uniq_subject_code" json:"subject_code"`

	// FK → teachers(teacher_id), subject teacher (optional)
	SubjectTeacherID *uuid.UUID `gorm:"column:subject_teacher_id;type:uuid;index" json:"subject_teacher_id,omitempty"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;not null;default:now()" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;not null;default:now()" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"-"`
}

func (Subject) TableName() string {
	return "subjects"
}

func (m *Subject) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.SubjectCreatedAt.IsZero() {
		m.SubjectCreatedAt = now
	}
	m.SubjectUpdatedAt = now
	return nil
}

func (m *Subject) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SubjectUpdatedAt = time.Now()
	return nil
}
