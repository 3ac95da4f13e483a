package responder

import (
	"math"
	"strconv"
	"strings"
)

// formatMoney renders an amount with thousands grouping and two decimals,
// e.g. 45750.5 as "45,750.50".
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

// formatFixed1 renders a percentage with one decimal, e.g. "34.2".
func formatFixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// formatWhole renders an integer-valued float without decimals, sign
// dropped. Change percentages are quoted with their direction spelled out.
func formatWhole(v float64) string {
	return strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
}

// formatRate renders a pre-rounded exchange rate without trailing zeros.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func itoa(n int) string { return strconv.Itoa(n) }
