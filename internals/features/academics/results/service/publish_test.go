// file: internals/features/academics/results/service/publish_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDensePositions(t *testing.T) {
	cases := []struct {
		name     string
		averages []float64
		want     []int
	}{
		{
			name:     "distinct averages rank in score order",
			averages: []float64{62.5, 88.0, 71.0},
			want:     []int{3, 1, 2},
		},
		{
			name:     "ties share a position, next increments by one",
			averages: []float64{90.0, 90.0, 80.0, 80.0, 70.0},
			want:     []int{1, 1, 2, 2, 3},
		},
		{
			name:     "single result",
			averages: []float64{54.33},
			want:     []int{1},
		},
		{
			name:     "all tied",
			averages: []float64{60.0, 60.0, 60.0},
			want:     []int{1, 1, 1},
		},
		{
			name:     "empty class",
			averages: nil,
			want:     []int{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DensePositions(tc.averages))
		})
	}
}

func TestClassAverage(t *testing.T) {
	assert.Equal(t, 71.0, ClassAverage([]float64{88.0, 71.0, 54.0}))
	assert.Equal(t, 54.33, ClassAverage([]float64{54.33}))

	// rounded to 2 decimals
	assert.Equal(t, 66.67, ClassAverage([]float64{60.0, 70.0, 70.0}))

	assert.Equal(t, 0.0, ClassAverage(nil))
}
