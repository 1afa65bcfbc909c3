package quadratic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinels shown in the root slots.
const (
	NotComputed   = "0"
	NotApplicable = "N/A"
)

// Locale is the decimal format policy shared by parsing and display.
type Locale struct {
	Separator rune
	Precision int
}

// PtBR uses a comma separator and two fractional digits.
var PtBR = Locale{Separator: ',', Precision: 2}

// Parse reads a number typed in this locale. Surrounding whitespace is
// ignored and the first locale separator is read as a decimal point. Like a
// form field's numeric keyboard, only the longest leading decimal is read:
// "2x" is 2 and "1,5,3" is 1.5. Text with no leading digits and non-finite
// results are rejected.
func (l Locale) Parse(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if l.Separator != '.' && l.Separator != 0 {
		s = strings.Replace(s, string(l.Separator), ".", 1)
	}

	prefix := decimalPrefix(s)
	if prefix == "" {
		return 0, fmt.Errorf("parse %q: no leading number", text)
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", text, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse %q: not finite", text)
	}
	return v, nil
}

// decimalPrefix returns the longest prefix of s of the form
// [+-]digits[.digits][(e|E)[+-]digits] with at least one mantissa digit, or
// "" if there is none.
func decimalPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			end = j
		}
	}

	return s[:end]
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Format renders v with Precision fractional digits and the locale
// separator. Rounding is strconv's: correct for the exact binary value, ties
// to even. Zero never carries a sign; non-finite values render as
// NotApplicable.
func (l Locale) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotApplicable
	}
	if v == 0 {
		v = 0
	}

	s := strconv.FormatFloat(v, 'f', l.Precision, 64)
	if l.Separator != '.' && l.Separator != 0 {
		s = strings.Replace(s, ".", string(l.Separator), 1)
	}
	return s
}
