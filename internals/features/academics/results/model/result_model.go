// file: internals/features/academics/results/model/result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — result status & term
// =========================================================

type ResultStatus string

const (
	ResultStatusDraft     ResultStatus = "draft"
	ResultStatusPublished ResultStatus = "published"
)

type Term string

const (
	TermFirst  Term = "first"
	TermSecond Term = "second"
	TermThird  Term = "third"
)

// =========================================================
// MODEL
// =========================================================

type Result struct {
	// PK
	ResultID uuid.UUID `gorm:"column:result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"result_id"`

	// FK → students(student_id); one result per student/term/year
	ResultStudentID   uuid.UUID `gorm:"column:result_student_id;type:uuid;not null;index;uniqueIndex:uniq_result_student_term_year,priority:1" json:"result_student_id"`
	ResultStudentName string    `gorm:"column:result_student_name;type:varchar(120);not null" json:"result_student_name"`

	// FK → classes(class_id)
	ResultClassID uuid.UUID `gorm:"column:result_class_id;type:uuid;not null;index:ix_result_class" json:"result_class_id"`

	ResultTerm         Term   `gorm:"column:result_term;type:varchar(10);not null;uniqueIndex:uniq_result_student_term_year,priority:2" json:"result_term"`
	ResultAcademicYear string `gorm:"column:result_academic_year;type:varchar(9);not null;uniqueIndex:uniq_result_student_term_year,priority:3" json:"result_academic_year"`

	// Aggregates over subject scores
	ResultTotalScore   int     `gorm:"column:result_total_score;not null;default:0" json:"result_total_score"`
	ResultAverageScore float64 `gorm:"column:result_average_score;type:decimal(5,2);not null;default:0" json:"result_average_score"`

	// Class-wide stats, filled at publish time
	ResultPosition     int     `gorm:"column:result_position;not null;default:0" json:"result_position"`
	ResultClassAverage float64 `gorm:"column:result_class_average;type:decimal(5,2);not null;default:0" json:"result_class_average"`

	ResultTeacherRemarks   *string `gorm:"column:result_teacher_remarks" json:"result_teacher_remarks,omitempty"`
	ResultPrincipalRemarks *string `gorm:"column:result_principal_remarks" json:"result_principal_remarks,omitempty"`

	ResultStatus ResultStatus `gorm:"column:result_status;type:varchar(10);not null;default:'draft';index:ix_result_status" json:"result_status"`

	ResultSubjects []SubjectScore `gorm:"foreignKey:SubjectScoreResultID;references:ResultID" json:"result_subjects,omitempty"`

	ResultCreatedAt time.Time      `gorm:"column:result_created_at;not null;default:now();index:ix_result_created_at" json:"result_created_at"`
	ResultUpdatedAt time.Time      `gorm:"column:result_updated_at;not null;default:now()" json:"result_updated_at"`
	ResultDeletedAt gorm.DeletedAt `gorm:"column:result_deleted_at;index" json:"-"`
}

func (Result) TableName() string {
	return "results"
}

func (m *Result) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ResultCreatedAt.IsZero() {
		m.ResultCreatedAt = now
	}
	m.ResultUpdatedAt = now
	return nil
}

func (m *Result) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ResultUpdatedAt = time.Now()
	return nil
}
