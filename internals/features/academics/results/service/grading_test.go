// file: internals/features/academics/results/service/grading_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resultModel "schoolhub_backend/internals/features/academics/results/model"
)

func TestGradeForTotal_Bands(t *testing.T) {
	cases := []struct {
		total   int
		grade   string
		remarks string
	}{
		{0, "F", "Fail"},
		{25, "F", "Fail"},
		{39, "F", "Fail"},
		{40, "E", "Pass"},
		{49, "E", "Pass"},
		{50, "D", "Fair"},
		{59, "D", "Fair"},
		{60, "C", "Good"},
		{69, "C", "Good"},
		{70, "B", "Very Good"},
		{79, "B", "Very Good"},
		{80, "A", "Excellent"},
		{88, "A", "Excellent"},
		{100, "A", "Excellent"},
	}
	for _, tc := range cases {
		grade, remarks := GradeForTotal(tc.total)
		assert.Equalf(t, tc.grade, grade, "total=%d", tc.total)
		assert.Equalf(t, tc.remarks, remarks, "total=%d", tc.total)
	}
}

func TestValidateScores(t *testing.T) {
	assert.NoError(t, ValidateScores(0, 0, 0))
	assert.NoError(t, ValidateScores(15, 15, 70))
	assert.NoError(t, ValidateScores(12, 10, 55))

	assert.Error(t, ValidateScores(-1, 0, 0))
	assert.Error(t, ValidateScores(16, 0, 0))
	assert.Error(t, ValidateScores(0, 18, 0))
	assert.Error(t, ValidateScores(0, 0, 71))
	assert.Error(t, ValidateScores(0, 0, -5))
}

func TestBuildSubjectScore(t *testing.T) {
	s, err := BuildSubjectScore("Mathematics", 12, 14, 62)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", s.SubjectScoreSubjectName)
	assert.Equal(t, 88, s.SubjectScoreTotal)
	assert.Equal(t, "A", s.SubjectScoreGrade)
	assert.Equal(t, "Excellent", s.SubjectScoreRemarks)

	// out-of-range input is rejected, not clamped
	_, err = BuildSubjectScore("English", 12, 18, 40)
	require.Error(t, err)
}

func TestAggregate(t *testing.T) {
	subjects := []resultModel.SubjectScore{
		{SubjectScoreTotal: 88},
		{SubjectScoreTotal: 71},
		{SubjectScoreTotal: 54},
	}
	total, avg := Aggregate(subjects)
	assert.Equal(t, 213, total)
	assert.Equal(t, 71.0, avg)

	// average keeps 2 decimals
	total, avg = Aggregate([]resultModel.SubjectScore{
		{SubjectScoreTotal: 50},
		{SubjectScoreTotal: 51},
		{SubjectScoreTotal: 51},
	})
	assert.Equal(t, 152, total)
	assert.Equal(t, 50.67, avg)

	total, avg = Aggregate(nil)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0.0, avg)
}
