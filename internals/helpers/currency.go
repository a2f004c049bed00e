// file: internals/helpers/currency.go
package helper

import (
	"fmt"
	"strconv"
)

// Amounts are stored as integer kobo everywhere. Conversion to naira happens
// only here, at the presentation boundary.

const KoboPerNaira = 100

// FormatNaira renders kobo as "₦12,345.67".
func FormatNaira(kobo int64) string {
	sign := ""
	if kobo < 0 {
		sign = "-"
		kobo = -kobo
	}
	naira := kobo / KoboPerNaira
	minor := kobo % KoboPerNaira
	return fmt.Sprintf("%s₦%s.%02d", sign, groupThousands(naira), minor)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
