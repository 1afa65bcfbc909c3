package quadratic

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyField             = errors.New("empty coefficient")
	ErrNotANumber             = errors.New("coefficient is not a number")
	ErrZeroLeadingCoefficient = errors.New("leading coefficient is zero")
)

// AlertTitle is the title shown with every validation alert.
const AlertTitle = "Erro"

const (
	msgEmptyField             = "Todos os campos (a, b, c) devem ser preenchidos."
	msgNotANumber             = "Por favor, insira números válidos para a, b e c."
	msgZeroLeadingCoefficient = "O coeficiente \"a\" não pode ser zero em uma equação de 2º grau."
)

// ValidationError reports which coefficient failed and why.
type ValidationError struct {
	Kind  error
	Field string
	Input string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s (%q)", e.Kind.Error(), e.Field, e.Input)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// UserMessage returns the fixed alert text for a validation failure, or ""
// if err is not one.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyField):
		return msgEmptyField
	case errors.Is(err, ErrNotANumber):
		return msgNotANumber
	case errors.Is(err, ErrZeroLeadingCoefficient):
		return msgZeroLeadingCoefficient
	}
	return ""
}

// KindName is a stable, machine-friendly name for the failure kind. It is
// used as a metric attribute and in JSON responses.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrEmptyField):
		return "empty_field"
	case errors.Is(err, ErrNotANumber):
		return "not_a_number"
	case errors.Is(err, ErrZeroLeadingCoefficient):
		return "zero_leading_coefficient"
	}
	return "unknown"
}
