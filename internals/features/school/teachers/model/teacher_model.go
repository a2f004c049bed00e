// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherStatus string

const (
	TeacherStatusActive   TeacherStatus = "active"
	TeacherStatusOnLeave  TeacherStatus = "on_leave"
	TeacherStatusResigned TeacherStatus = "resigned"
)

type Teacher struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`

	TeacherStaffNo   string  `gorm:"column:teacher_staff_no;type:varchar(30);not null;uniqueIndex:uniq_teacher_staff_no" json:"teacher_staff_no"`
	TeacherFirstName string  `gorm:"column:teacher_first_name;type:varchar(60);not null" json:"teacher_first_name"`
	TeacherLastName  string  `gorm:"column:teacher_last_name;type:varchar(60);not null" json:"teacher_last_name"`
	TeacherEmail     *string `gorm:"column:teacher_email;type:varchar(120)" json:"teacher_email,omitempty"`
	TeacherPhone     *string `gorm:"column:teacher_phone;type:varchar(20)" json:"teacher_phone,omitempty"`

	// main subject taught, free text
	TeacherSpecialty *string `gorm:"column:teacher_specialty;type:varchar(80)" json:"teacher_specialty,omitempty"`

	TeacherStatus TeacherStatus `gorm:"column:teacher_status;type:varchar(20);not null;default:'active';index:ix_teacher_status" json:"teacher_status"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;default:now()" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;default:now()" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (Teacher) TableName() string {
	return "teachers"
}

func (m *Teacher) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.TeacherCreatedAt.IsZero() {
		m.TeacherCreatedAt = now
	}
	m.TeacherUpdatedAt = now
	return nil
}

func (m *Teacher) BeforeUpdate(tx *gorm.DB) (err error) {
	m.TeacherUpdatedAt = time.Now()
	return nil
}
