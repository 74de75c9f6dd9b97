package calcpad

import (
	"math"
	"strconv"
	"strings"
)

// formatValue renders a result within a nine-numeral display budget,
// falling back to scientific notation when fixed notation cannot carry the
// value.
func formatValue(v float64) string {
	if v == 0 {
		return "0"
	}

	// Legacy display convention: when the integer part already fills the
	// budget, a fraction starting at .95 or above carries the value up by
	// one whole unit before the fraction is truncated away.
	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if integerDigits(fixed) >= maxLiteralDigits && fractionCarries(fixed) {
		if v > 0 {
			v++
		} else {
			v--
		}
	}

	s := truncateBudget(strconv.FormatFloat(v, 'f', maxLiteralDigits, 64))
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	switch {
	case s == "0" || s == "-0":
		// nonzero value collapsed by fixed rendering
		return scientific(v)
	case strings.ContainsAny(s, "eE"):
		return scientific(v)
	case math.Abs(v) >= 1e10:
		return scientific(v)
	}
	return s
}

// integerDigits counts the numerals before the decimal point of a fixed
// rendering.
func integerDigits(fixed string) int {
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		fixed = fixed[:i]
	}
	return digitCount(fixed)
}

// fractionCarries reports whether the first two fractional digits read as
// 95 or more.
func fractionCarries(fixed string) bool {
	i := strings.IndexByte(fixed, '.')
	if i < 0 {
		return false
	}
	frac := fixed[i+1:] + "00"
	n, err := strconv.Atoi(frac[:2])
	return err == nil && n >= 95
}

// truncateBudget cuts fractional numerals beyond the display budget. The
// integer part always renders whole; only the fraction is truncated.
func truncateBudget(s string) string {
	var b strings.Builder
	digits, fraction := 0, false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			if fraction && digits >= maxLiteralDigits {
				break
			}
			digits++
		} else if r == '.' {
			fraction = true
			if digits >= maxLiteralDigits {
				break
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// scientific renders with a five-digit mantissa fraction, an uppercase
// exponent marker, no explicit plus, and no zero-padded exponent.
func scientific(v float64) string {
	s := strconv.FormatFloat(v, 'E', 5, 64)
	i := strings.IndexByte(s, 'E')
	mant, exp := s[:i], s[i+1:]

	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(exp, "+"), "-"), "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mant + "E" + exp
}
