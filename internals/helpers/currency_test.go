// file: internals/helpers/currency_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNaira(t *testing.T) {
	cases := []struct {
		kobo int64
		want string
	}{
		{0, "₦0.00"},
		{50, "₦0.50"},
		{100, "₦1.00"},
		{1_234_567, "₦12,345.67"},
		{50_000_00, "₦50,000.00"},
		{123_456_789_01, "₦123,456,789.01"},
		{-2_500_50, "-₦2,500.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatNaira(tc.kobo))
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)

	p = BuildPaginationFromPage(45, 3, 20)
	assert.False(t, p.HasNext)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}
