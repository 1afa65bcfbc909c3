package quadratic

import "strings"

// Coefficients are the parsed, finite values of a, b and c.
type Coefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

var fieldNames = [3]string{"a", "b", "c"}

// Validate checks the three raw texts using the PtBR locale.
func Validate(aText, bText, cText string) (Coefficients, error) {
	return PtBR.Validate(aText, bText, cText)
}

// Validate checks that all three texts are present, parse as finite numbers
// in this locale, and that a is non-zero. Checks run in that order across
// all fields, so an empty c is reported before a non-numeric a.
func (l Locale) Validate(aText, bText, cText string) (Coefficients, error) {
	texts := [3]string{aText, bText, cText}

	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return Coefficients{}, &ValidationError{Kind: ErrEmptyField, Field: fieldNames[i], Input: t}
		}
	}

	var vals [3]float64
	for i, t := range texts {
		v, err := l.Parse(t)
		if err != nil {
			return Coefficients{}, &ValidationError{Kind: ErrNotANumber, Field: fieldNames[i], Input: t}
		}
		vals[i] = v
	}

	if vals[0] == 0 {
		return Coefficients{}, &ValidationError{Kind: ErrZeroLeadingCoefficient, Field: "a", Input: aText}
	}

	return Coefficients{A: vals[0], B: vals[1], C: vals[2]}, nil
}
