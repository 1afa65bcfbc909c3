package quadratic

import (
	"math"
	"testing"
)

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name         string
		a, b, c      string
		kind         Kind
		root1, root2 string
	}{
		{name: "two roots", a: "1", b: "-3", c: "2", kind: TwoRoots, root1: "2,00", root2: "1,00"},
		{name: "repeated root", a: "1", b: "2", c: "1", kind: RepeatedRoot, root1: "-1,00", root2: "-1,00"},
		{name: "no real roots", a: "1", b: "1", c: "1", kind: NoRealRoots, root1: "N/A", root2: "N/A"},
		{name: "negative a keeps plus branch first", a: "-1", b: "0", c: "4", kind: TwoRoots, root1: "-2,00", root2: "2,00"},
		{name: "comma input", a: "0,5", b: "-1,5", c: "1", kind: TwoRoots, root1: "2,00", root2: "1,00"},
		{name: "zero roots are unsigned", a: "3", b: "0", c: "0", kind: RepeatedRoot, root1: "0,00", root2: "0,00"},
		{name: "irrational", a: "1", b: "0", c: "-2", kind: TwoRoots, root1: "1,41", root2: "-1,41"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coeffs, err := Validate(tc.a, tc.b, tc.c)
			if err != nil {
				t.Fatalf("validate: %v", err)
			}

			out := Solve(coeffs)
			if out.Kind != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, out.Kind)
			}

			r1, r2 := out.Display(PtBR)
			if r1 != tc.root1 || r2 != tc.root2 {
				t.Fatalf("expected roots (%q, %q), got (%q, %q)", tc.root1, tc.root2, r1, r2)
			}
		})
	}
}

func TestSolveMatchesDiscriminantSign(t *testing.T) {
	vals := []float64{-7, -2.5, -1, 0.5, 1, 3, 10}

	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				out := Solve(Coefficients{A: a, B: b, C: c})
				delta := b*b - 4*a*c

				switch {
				case delta < 0:
					if out.Kind != NoRealRoots {
						t.Fatalf("a=%g b=%g c=%g: expected no real roots, got %s", a, b, c, out.Kind)
					}
				case delta == 0:
					want := -b / (2 * a)
					if out.Kind != RepeatedRoot || out.X1 != want || out.X2 != want {
						t.Fatalf("a=%g b=%g c=%g: expected repeated root %g, got %+v", a, b, c, want, out)
					}
				default:
					sq := math.Sqrt(delta)
					if out.Kind != TwoRoots {
						t.Fatalf("a=%g b=%g c=%g: expected two roots, got %s", a, b, c, out.Kind)
					}
					if out.X1 != (-b+sq)/(2*a) || out.X2 != (-b-sq)/(2*a) {
						t.Fatalf("a=%g b=%g c=%g: roots out of order: %+v", a, b, c, out)
					}
					if out.X1 == out.X2 {
						t.Fatalf("a=%g b=%g c=%g: expected distinct roots, got %+v", a, b, c, out)
					}
				}
			}
		}
	}
}

func TestSolveNonFiniteDiscriminantIsOverflow(t *testing.T) {
	tests := map[string]Coefficients{
		"infinite": {A: 1e-300, B: 1e300, C: 0},
		"nan":      {A: 1e300, B: 1e300, C: 1e300},
	}

	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			out := Solve(c)
			if out.Kind != Overflow {
				t.Fatalf("expected kind %s, got %s (discriminant %g)", Overflow, out.Kind, out.Discriminant)
			}

			r1, r2 := out.Display(PtBR)
			if r1 != NotApplicable || r2 != NotApplicable {
				t.Fatalf("expected (%q, %q), got (%q, %q)", NotApplicable, NotApplicable, r1, r2)
			}
		})
	}
}

func TestSolveOverflowingRootDisplaysNotApplicable(t *testing.T) {
	out := Solve(Coefficients{A: 1e-300, B: 1e10, C: 0})
	if out.Kind != TwoRoots {
		t.Fatalf("expected kind %s, got %s", TwoRoots, out.Kind)
	}

	r1, r2 := out.Display(PtBR)
	if r1 != "0,00" || r2 != NotApplicable {
		t.Fatalf("expected (%q, %q), got (%q, %q)", "0,00", NotApplicable, r1, r2)
	}
}
