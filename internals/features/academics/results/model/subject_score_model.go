// file: internals/features/academics/results/model/subject_score_model.go
package model

import (
	"github.com/google/uuid"
)

// SubjectScore is one graded subject inside a result. Rows are rewritten
// wholesale with their parent result, so no standalone timestamps.
type SubjectScore struct {
	SubjectScoreID uuid.UUID `gorm:"column:subject_score_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_score_id"`

	// FK → results(result_id)
	SubjectScoreResultID uuid.UUID `gorm:"column:subject_score_result_id;type:uuid;not null;index:ix_subject_score_result" json:"subject_score_result_id"`

	SubjectScoreSubjectName string `gorm:"column:subject_score_subject_name;type:varchar(80);not null" json:"subject_score_subject_name"`

	// Continuous assessment (0–15 each) + exam (0–70)
	SubjectScoreCA1  int `gorm:"column:subject_score_ca1;not null;check:subject_score_ca1>=0" json:"subject_score_ca1"`
	SubjectScoreCA2  int `gorm:"column:subject_score_ca2;not null;check:subject_score_ca2>=0" json:"subject_score_ca2"`
	SubjectScoreExam int `gorm:"column:subject_score_exam;not null;check:subject_score_exam>=0" json:"subject_score_exam"`

	// total = ca1+ca2+exam; grade/remarks pure functions of total
	SubjectScoreTotal   int    `gorm:"column:subject_score_total;not null" json:"subject_score_total"`
	SubjectScoreGrade   string `gorm:"column:subject_score_grade;type:varchar(2);not null" json:"subject_score_grade"`
	SubjectScoreRemarks string `gorm:"column:subject_score_remarks;type:varchar(20);not null" json:"subject_score_remarks"`
}

func (SubjectScore) TableName() string {
	return "subject_scores"
}
