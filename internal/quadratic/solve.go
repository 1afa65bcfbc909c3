package quadratic

import "math"

// Kind classifies the real roots of an equation.
type Kind int

const (
	NoRealRoots Kind = iota + 1
	RepeatedRoot
	TwoRoots
	// Overflow means b² − 4ac is not representable as a finite float64.
	// Both slots show NotApplicable.
	Overflow
)

func (k Kind) String() string {
	switch k {
	case NoRealRoots:
		return "no_real_roots"
	case RepeatedRoot:
		return "repeated_root"
	case TwoRoots:
		return "two_roots"
	case Overflow:
		return "overflow"
	}
	return "unknown"
}

// Outcome is the result of Solve. X1 and X2 are meaningful only when Kind
// is RepeatedRoot (X1 == X2) or TwoRoots (X1 is the +√Δ branch). A finite
// Δ can still give roots too large to represent; Display shows those as
// NotApplicable.
type Outcome struct {
	Kind         Kind
	Discriminant float64
	X1           float64
	X2           float64
}

// Solve applies the quadratic formula. c.A must be non-zero; Validate
// guarantees it.
func Solve(c Coefficients) Outcome {
	delta := c.B*c.B - 4*c.A*c.C

	switch {
	case math.IsNaN(delta) || math.IsInf(delta, 0):
		return Outcome{Kind: Overflow, Discriminant: delta}
	case delta < 0:
		return Outcome{Kind: NoRealRoots, Discriminant: delta}
	case delta == 0:
		x := -c.B / (2 * c.A)
		return Outcome{Kind: RepeatedRoot, Discriminant: delta, X1: x, X2: x}
	}

	sq := math.Sqrt(delta)
	return Outcome{
		Kind:         TwoRoots,
		Discriminant: delta,
		X1:           (-c.B + sq) / (2 * c.A),
		X2:           (-c.B - sq) / (2 * c.A),
	}
}

// Display returns the two root slots formatted in locale l.
func (o Outcome) Display(l Locale) (string, string) {
	if o.Kind == NoRealRoots || o.Kind == Overflow {
		return NotApplicable, NotApplicable
	}
	return l.Format(o.X1), l.Format(o.X2)
}
