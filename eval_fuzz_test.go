package descent_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/descent"
)

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("(1+2")
	f.Add("--5")
	f.Add("8/2*2")
	f.Add("1×2")
	ev := descent.New(descent.MaxLen(256))
	f.Fuzz(func(t *testing.T, s string) {
		a, aerr := ev.Eval(s)
		b, berr := ev.Eval(s)
		if (aerr == nil) != (berr == nil) {
			t.Fatalf("%q: errors differ between evaluations: %v, %v", s, aerr, berr)
		}
		if aerr == nil && a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
			t.Fatalf("%q: results differ between evaluations: %g, %g", s, a, b)
		}
		_, cerr := ev.EvalBig(s)
		var serr *descent.SyntaxError
		if errors.As(aerr, &serr) {
			var cs *descent.SyntaxError
			if !errors.As(cerr, &cs) || *cs != *serr {
				t.Fatalf("%q: float64 gave %v, big gave %v", s, aerr, cerr)
			}
		}
		if aerr == nil && cerr != nil && !errors.As(cerr, new(descent.DomainError)) {
			t.Fatalf("%q: big gave unexpected error %v", s, cerr)
		}
	})
}
