// file: internals/features/academics/results/dto/result_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	resultModel "schoolhub_backend/internals/features/academics/results/model"
)

////////////////////////////////////////////////////////////////////////////////
// RESULTS — DTO
////////////////////////////////////////////////////////////////////////////////

type SubjectScoreEntryDTO struct {
	SubjectName string `json:"subject_name" validate:"required,min=2,max=80"`
	CA1         int    `json:"ca1" validate:"min=0,max=15"`
	CA2         int    `json:"ca2" validate:"min=0,max=15"`
	Exam        int    `json:"exam" validate:"min=0,max=70"`
}

type ResultCreateDTO struct {
	ResultStudentID    uuid.UUID              `json:"result_student_id" validate:"required"`
	ResultClassID      uuid.UUID              `json:"result_class_id" validate:"required"`
	ResultTerm         string                 `json:"result_term" validate:"required,oneof=first second third"`
	ResultAcademicYear string                 `json:"result_academic_year" validate:"required,min=4,max=9"`
	Subjects           []SubjectScoreEntryDTO `json:"subjects" validate:"required,min=1,dive"`
	TeacherRemarks     *string                `json:"teacher_remarks,omitempty"`
	PrincipalRemarks   *string                `json:"principal_remarks,omitempty"`
}

// Update (draft only) — replaces subjects when provided
type ResultUpdateDTO struct {
	Subjects         []SubjectScoreEntryDTO `json:"subjects,omitempty" validate:"omitempty,min=1,dive"`
	TeacherRemarks   *string                `json:"teacher_remarks,omitempty"`
	PrincipalRemarks *string                `json:"principal_remarks,omitempty"`
}

type SubjectScoreResponse struct {
	SubjectScoreID uuid.UUID `json:"subject_score_id"`
	SubjectName    string    `json:"subject_name"`
	CA1            int       `json:"ca1"`
	CA2            int       `json:"ca2"`
	Exam           int       `json:"exam"`
	Total          int       `json:"total"`
	Grade          string    `json:"grade"`
	Remarks        string    `json:"remarks"`
}

type ResultResponse struct {
	ResultID           uuid.UUID              `json:"result_id"`
	ResultStudentID    uuid.UUID              `json:"result_student_id"`
	ResultStudentName  string                 `json:"result_student_name"`
	ResultClassID      uuid.UUID              `json:"result_class_id"`
	ResultTerm         string                 `json:"result_term"`
	ResultAcademicYear string                 `json:"result_academic_year"`
	ResultTotalScore   int                    `json:"result_total_score"`
	ResultAverageScore float64                `json:"result_average_score"`
	ResultPosition     int                    `json:"result_position"`
	ResultClassAverage float64                `json:"result_class_average"`
	TeacherRemarks     *string                `json:"teacher_remarks,omitempty"`
	PrincipalRemarks   *string                `json:"principal_remarks,omitempty"`
	ResultStatus       string                 `json:"result_status"`
	Subjects           []SubjectScoreResponse `json:"subjects,omitempty"`
	ResultCreatedAt    time.Time              `json:"result_created_at"`
	ResultUpdatedAt    time.Time              `json:"result_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToSubjectScoreResponse(m resultModel.SubjectScore) SubjectScoreResponse {
	return SubjectScoreResponse{
		SubjectScoreID: m.SubjectScoreID,
		SubjectName:    m.SubjectScoreSubjectName,
		CA1:            m.SubjectScoreCA1,
		CA2:            m.SubjectScoreCA2,
		Exam:           m.SubjectScoreExam,
		Total:          m.SubjectScoreTotal,
		Grade:          m.SubjectScoreGrade,
		Remarks:        m.SubjectScoreRemarks,
	}
}

func ToResultResponse(m resultModel.Result) ResultResponse {
	subjects := make([]SubjectScoreResponse, 0, len(m.ResultSubjects))
	for _, s := range m.ResultSubjects {
		subjects = append(subjects, ToSubjectScoreResponse(s))
	}
	return ResultResponse{
		ResultID:           m.ResultID,
		ResultStudentID:    m.ResultStudentID,
		ResultStudentName:  m.ResultStudentName,
		ResultClassID:      m.ResultClassID,
		ResultTerm:         string(m.ResultTerm),
		ResultAcademicYear: m.ResultAcademicYear,
		ResultTotalScore:   m.ResultTotalScore,
		ResultAverageScore: m.ResultAverageScore,
		ResultPosition:     m.ResultPosition,
		ResultClassAverage: m.ResultClassAverage,
		TeacherRemarks:     m.ResultTeacherRemarks,
		PrincipalRemarks:   m.ResultPrincipalRemarks,
		ResultStatus:       string(m.ResultStatus),
		Subjects:           subjects,
		ResultCreatedAt:    m.ResultCreatedAt,
		ResultUpdatedAt:    m.ResultUpdatedAt,
	}
}

func ToResultResponses(list []resultModel.Result) []ResultResponse {
	out := make([]ResultResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToResultResponse(v))
	}
	return out
}
