// file: internals/features/academics/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — attendance status
// =========================================================

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

// =========================================================
// MODEL
// =========================================================

type AttendanceRecord struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`

	// FK → students(student_id); one row per student per day
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index;uniqueIndex:uniq_attendance_student_date,priority:1" json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID `gorm:"column:attendance_class_id;type:uuid;not null;index:ix_attendance_class" json:"attendance_class_id"`

	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uniq_attendance_student_date,priority:2;index:ix_attendance_date" json:"attendance_date"`

	AttendanceStatus AttendanceStatus `gorm:"column:attendance_status;type:varchar(10);not null;index:ix_attendance_status" json:"attendance_status"`

	// FK → users(user_id), who marked it
	AttendanceMarkedBy *uuid.UUID `gorm:"column:attendance_marked_by;type:uuid" json:"attendance_marked_by,omitempty"`
	AttendanceNote     *string    `gorm:"column:attendance_note" json:"attendance_note,omitempty"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;not null;default:now()" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;not null;default:now()" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance"
}

func (m *AttendanceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AttendanceCreatedAt.IsZero() {
		m.AttendanceCreatedAt = now
	}
	m.AttendanceUpdatedAt = now
	return nil
}

func (m *AttendanceRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AttendanceUpdatedAt = time.Now()
	return nil
}
