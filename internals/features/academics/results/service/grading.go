// file: internals/features/academics/results/service/grading.go
package service

import (
	"fmt"
	"math"

	resultModel "schoolhub_backend/internals/features/academics/results/model"
)

// Score bounds: two continuous assessments out of 15 each, exam out of 70.
const (
	MaxCA   = 15
	MaxExam = 70
)

// =========================================================
// GRADE BANDING — fixed thresholds on total out of 100
// =========================================================

// GradeForTotal maps a subject total to its grade letter and remarks.
// Bands are inclusive and exhaustive over 0–100.
func GradeForTotal(total int) (grade string, remarks string) {
	switch {
	case total >= 80:
		return "A", "Excellent"
	case total >= 70:
		return "B", "Very Good"
	case total >= 60:
		return "C", "Good"
	case total >= 50:
		return "D", "Fair"
	case total >= 40:
		return "E", "Pass"
	default:
		return "F", "Fail"
	}
}

// ValidateScores checks the CA/exam bounds. Out-of-range input is a
// validation error, never clamped.
func ValidateScores(ca1, ca2, exam int) error {
	if ca1 < 0 || ca1 > MaxCA {
		return fmt.Errorf("ca1 must be between 0 and %d", MaxCA)
	}
	if ca2 < 0 || ca2 > MaxCA {
		return fmt.Errorf("ca2 must be between 0 and %d", MaxCA)
	}
	if exam < 0 || exam > MaxExam {
		return fmt.Errorf("exam must be between 0 and %d", MaxExam)
	}
	return nil
}

// BuildSubjectScore computes total/grade/remarks for one subject.
func BuildSubjectScore(subjectName string, ca1, ca2, exam int) (resultModel.SubjectScore, error) {
	if err := ValidateScores(ca1, ca2, exam); err != nil {
		return resultModel.SubjectScore{}, err
	}
	total := ca1 + ca2 + exam
	grade, remarks := GradeForTotal(total)
	return resultModel.SubjectScore{
		SubjectScoreSubjectName: subjectName,
		SubjectScoreCA1:         ca1,
		SubjectScoreCA2:         ca2,
		SubjectScoreExam:        exam,
		SubjectScoreTotal:       total,
		SubjectScoreGrade:       grade,
		SubjectScoreRemarks:     remarks,
	}, nil
}

// Aggregate computes the student-level total and average over subjects.
// Average is rounded to 2 decimals for storage.
func Aggregate(subjects []resultModel.SubjectScore) (totalScore int, averageScore float64) {
	if len(subjects) == 0 {
		return 0, 0
	}
	for _, s := range subjects {
		totalScore += s.SubjectScoreTotal
	}
	averageScore = round2(float64(totalScore) / float64(len(subjects)))
	return totalScore, averageScore
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
