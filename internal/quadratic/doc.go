// Package quadratic validates raw coefficient text and solves
// ax² + bx + c = 0 over the reals with the quadratic formula.
//
// Parsing and display share one Locale so the comma decimal separator is
// handled in a single place. Everything here is pure: no logging, no
// alerts. Callers decide how to surface a ValidationError.
package quadratic
