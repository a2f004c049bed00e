// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Class struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`

	// e.g. "JSS1A", "SS3B"
	ClassName  string `gorm:"column:class_name;type:varchar(30);not null;uniqueIndex:uniq_class_name" json:"class_name"`
	ClassLevel string `gorm:"column:class_level;type:varchar(20);not null" json:"class_level"`

	// FK → teachers(teacher_id), form teacher
	ClassTeacherID *uuid.UUID `gorm:"column:class_teacher_id;type:uuid;index" json:"class_teacher_id,omitempty"`

	ClassCapacity int `gorm:"column:class_capacity;not null;default:40;check:class_capacity>0" json:"class_capacity"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;default:now()" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;default:now()" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (Class) TableName() string {
	return "classes"
}

func (m *Class) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ClassCreatedAt.IsZero() {
		m.ClassCreatedAt = now
	}
	m.ClassUpdatedAt = now
	return nil
}

func (m *Class) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ClassUpdatedAt = time.Now()
	return nil
}
