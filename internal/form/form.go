// Package form holds the state of one quadratic-equation screen: the three
// coefficient inputs, the two root slots, and the calculate/clear actions
// that move it between Idle, Computed and Rejected.
//
// A Form is owned by a single display surface and is not safe for
// concurrent use.
package form

import (
	"fmt"

	"bhaskara/internal/quadratic"
)

// Field names one of the three coefficient inputs.
type Field string

const (
	FieldA Field = "a"
	FieldB Field = "b"
	FieldC Field = "c"
)

// ParseField maps "a", "b" or "c" to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldA, FieldB, FieldC:
		return f, nil
	}
	return "", fmt.Errorf("unknown coefficient field %q", s)
}

// State is the screen state.
type State int

const (
	Idle State = iota
	Computed
	Rejected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Computed:
		return "computed"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Alert is a blocking, user-visible notification.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Notifier receives alerts raised by Calculate.
type Notifier interface {
	Notify(Alert)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Alert)

func (f NotifierFunc) Notify(a Alert) { f(a) }

// Option configures a Form.
type Option func(*Form)

// WithLocale overrides the PtBR parse/format policy.
func WithLocale(l quadratic.Locale) Option {
	return func(f *Form) { f.locale = l }
}

// Form is one screen instance.
type Form struct {
	notifier Notifier
	locale   quadratic.Locale

	a, b, c      string
	root1, root2 string
	state        State
	outcome      *quadratic.Outcome
}

// New returns an Idle form. A nil notifier discards alerts.
func New(n Notifier, opts ...Option) *Form {
	if n == nil {
		n = NotifierFunc(func(Alert) {})
	}
	f := &Form{notifier: n, locale: quadratic.PtBR}
	for _, opt := range opts {
		opt(f)
	}
	f.Clear()
	return f
}

// SetInput replaces the text of one coefficient.
func (f *Form) SetInput(field Field, text string) {
	switch field {
	case FieldA:
		f.a = text
	case FieldB:
		f.b = text
	case FieldC:
		f.c = text
	}
}

// Input returns the current text of one coefficient.
func (f *Form) Input(field Field) string {
	switch field {
	case FieldA:
		return f.a
	case FieldB:
		return f.b
	case FieldC:
		return f.c
	}
	return ""
}

// Calculate validates the current inputs and, if they are valid, replaces
// both root slots with the solution. On a validation failure it raises one
// alert, resets the roots to NotComputed and returns the error.
func (f *Form) Calculate() (quadratic.Outcome, error) {
	coeffs, err := f.locale.Validate(f.a, f.b, f.c)
	if err != nil {
		f.reset()
		f.state = Rejected
		f.notifier.Notify(Alert{
			Title:   quadratic.AlertTitle,
			Message: quadratic.UserMessage(err),
		})
		return quadratic.Outcome{}, err
	}

	out := quadratic.Solve(coeffs)
	f.root1, f.root2 = out.Display(f.locale)
	f.outcome = &out
	f.state = Computed
	return out, nil
}

// Clear empties all inputs and returns the form to Idle.
func (f *Form) Clear() {
	f.a, f.b, f.c = "", "", ""
	f.reset()
	f.state = Idle
}

func (f *Form) reset() {
	f.root1, f.root2 = quadratic.NotComputed, quadratic.NotComputed
	f.outcome = nil
}

// Roots returns the two display slots.
func (f *Form) Roots() (string, string) { return f.root1, f.root2 }

// State returns the current screen state.
func (f *Form) State() State { return f.state }

// Snapshot is a copy of everything a display surface renders.
type Snapshot struct {
	A       string `json:"a"`
	B       string `json:"b"`
	C       string `json:"c"`
	Root1   string `json:"root1"`
	Root2   string `json:"root2"`
	State   string `json:"state"`
	Outcome string `json:"outcome,omitempty"`
}

// Snapshot captures the current form.
func (f *Form) Snapshot() Snapshot {
	s := Snapshot{
		A:     f.a,
		B:     f.b,
		C:     f.c,
		Root1: f.root1,
		Root2: f.root2,
		State: f.state.String(),
	}
	if f.outcome != nil {
		s.Outcome = f.outcome.Kind.String()
	}
	return s
}
