package descent

import "math/big"

// Evaluator evaluates expressions. Its configuration never changes after New,
// and each evaluation keeps its state to itself, so an Evaluator is safe to use
// concurrently.
type Evaluator struct {
	maxlen int
	chain  bool
	prec   uint
}

// New creates an evaluator. If no precision is given, the default is 64.
func New(opts ...Option) *Evaluator {
	e := Evaluator{prec: 64}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case maxlenopt:
			e.maxlen = int(opt)
		case chainopt:
			e.chain = true
		case precopt:
			e.prec = uint(opt)
		default:
			panic("descent: unknown option type")
		}
	}
	return &e
}

// Eval evaluates an expression in float64. If the expression is malformed,
// the result is 0 and the error is a *SyntaxError, or a *LengthError if the
// expression is too long. Division by zero and the like are not errors; they
// produce infinities and NaNs as usual.
func (e *Evaluator) Eval(src string) (float64, error) {
	if err := e.check(src); err != nil {
		return 0, err
	}
	p := parser[float64]{src: src, num: float64s{}, chain: e.chain}
	r := p.parse()
	if p.err != nil {
		return 0, p.err
	}
	return r, nil
}

// EvalBig evaluates an expression using arbitrary-precision arithmetic at the
// evaluator's precision. Syntax errors are reported as for Eval. If the
// expression is well formed but some operation has no value, e.g. 0/0, the
// result is nil and the error is a DomainError.
func (e *Evaluator) EvalBig(src string) (*big.Float, error) {
	if err := e.check(src); err != nil {
		return nil, err
	}
	num := bigs{prec: e.prec}
	p := parser[*big.Float]{src: src, num: &num, chain: e.chain}
	r := p.parse()
	if p.err != nil {
		return nil, p.err
	}
	if num.err != nil {
		return nil, num.err
	}
	return r, nil
}

// Prec returns the precision used by EvalBig.
func (e *Evaluator) Prec() uint {
	return e.prec
}

func (e *Evaluator) check(src string) error {
	if e.maxlen > 0 && len(src) > e.maxlen {
		return &LengthError{Len: len(src), Max: e.maxlen}
	}
	return nil
}

// Eval is a shortcut to create an evaluator and evaluate an expression.
func Eval(src string, opts ...Option) (float64, error) {
	return New(opts...).Eval(src)
}

// EvalBig is a shortcut to create an evaluator and evaluate an expression with
// arbitrary precision.
func EvalBig(src string, opts ...Option) (*big.Float, error) {
	return New(opts...).EvalBig(src)
}
