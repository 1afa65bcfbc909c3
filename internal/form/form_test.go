package form

import (
	"errors"
	"testing"

	"bhaskara/internal/quadratic"
)

type alertRecorder struct {
	alerts []Alert
}

func (r *alertRecorder) Notify(a Alert) { r.alerts = append(r.alerts, a) }

func fill(f *Form, a, b, c string) {
	f.SetInput(FieldA, a)
	f.SetInput(FieldB, b)
	f.SetInput(FieldC, c)
}

func TestNewFormIsIdle(t *testing.T) {
	f := New(nil)

	if f.State() != Idle {
		t.Fatalf("expected state %s, got %s", Idle, f.State())
	}
	if r1, r2 := f.Roots(); r1 != "0" || r2 != "0" {
		t.Fatalf("expected roots (0, 0), got (%q, %q)", r1, r2)
	}
	if s := f.Snapshot(); s.A != "" || s.B != "" || s.C != "" {
		t.Fatalf("expected empty inputs, got %+v", s)
	}
}

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name         string
		a, b, c      string
		root1, root2 string
		outcome      string
	}{
		{name: "two roots", a: "1", b: "-3", c: "2", root1: "2,00", root2: "1,00", outcome: "two_roots"},
		{name: "repeated", a: "1", b: "2", c: "1", root1: "-1,00", root2: "-1,00", outcome: "repeated_root"},
		{name: "none", a: "1", b: "1", c: "1", root1: "N/A", root2: "N/A", outcome: "no_real_roots"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &alertRecorder{}
			f := New(rec)
			fill(f, tc.a, tc.b, tc.c)

			if _, err := f.Calculate(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			snap := f.Snapshot()
			if snap.Root1 != tc.root1 || snap.Root2 != tc.root2 {
				t.Fatalf("expected roots (%q, %q), got (%q, %q)", tc.root1, tc.root2, snap.Root1, snap.Root2)
			}
			if snap.State != "computed" || snap.Outcome != tc.outcome {
				t.Fatalf("expected computed/%s, got %s/%s", tc.outcome, snap.State, snap.Outcome)
			}
			if len(rec.alerts) != 0 {
				t.Fatalf("expected no alerts, got %v", rec.alerts)
			}
		})
	}
}

func TestCalculateRejectsAndResetsRoots(t *testing.T) {
	rec := &alertRecorder{}
	f := New(rec)

	fill(f, "1", "-3", "2")
	if _, err := f.Calculate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.SetInput(FieldA, "0")
	_, err := f.Calculate()
	if !errors.Is(err, quadratic.ErrZeroLeadingCoefficient) {
		t.Fatalf("expected zero leading coefficient error, got %v", err)
	}

	if f.State() != Rejected {
		t.Fatalf("expected state %s, got %s", Rejected, f.State())
	}
	if r1, r2 := f.Roots(); r1 != "0" || r2 != "0" {
		t.Fatalf("expected roots reset to (0, 0), got (%q, %q)", r1, r2)
	}
	if f.Snapshot().Outcome != "" {
		t.Fatalf("expected no outcome after rejection, got %q", f.Snapshot().Outcome)
	}

	if len(rec.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(rec.alerts))
	}
	want := Alert{Title: "Erro", Message: "O coeficiente \"a\" não pode ser zero em uma equação de 2º grau."}
	if rec.alerts[0] != want {
		t.Fatalf("expected alert %+v, got %+v", want, rec.alerts[0])
	}
}

func TestCalculateEmptyField(t *testing.T) {
	rec := &alertRecorder{}
	f := New(rec)
	fill(f, "", "1", "1")

	_, err := f.Calculate()
	if !errors.Is(err, quadratic.ErrEmptyField) {
		t.Fatalf("expected empty field error, got %v", err)
	}
	if len(rec.alerts) != 1 || rec.alerts[0].Message != "Todos os campos (a, b, c) devem ser preenchidos." {
		t.Fatalf("unexpected alerts: %+v", rec.alerts)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	f := New(nil)
	fill(f, "2", "-7", "3")

	if _, err := f.Calculate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := f.Snapshot()

	if _, err := f.Calculate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := f.Snapshot()

	if first != second {
		t.Fatalf("expected identical snapshots, got %+v and %+v", first, second)
	}
}

func TestClearFromEveryState(t *testing.T) {
	setups := map[string]func(*Form){
		"idle": func(f *Form) {},
		"computed": func(f *Form) {
			fill(f, "1", "-3", "2")
			f.Calculate()
		},
		"rejected": func(f *Form) {
			fill(f, "abc", "1", "1")
			f.Calculate()
		},
		"typing": func(f *Form) {
			fill(f, "1", "2", "")
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			f := New(nil)
			setup(f)
			f.Clear()

			want := Snapshot{Root1: "0", Root2: "0", State: "idle"}
			if got := f.Snapshot(); got != want {
				t.Fatalf("expected %+v, got %+v", want, got)
			}
		})
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"a", "b", "c"} {
		f, err := ParseField(s)
		if err != nil || string(f) != s {
			t.Fatalf("ParseField(%q) = %q, %v", s, f, err)
		}
	}

	if _, err := ParseField("d"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
