package descent

import "strconv"

// Option is an option used when creating an evaluator.
type Option interface {
	option()
}

type (
	maxlenopt int
	chainopt  struct{}
	precopt   uint
)

func (maxlenopt) option() {}
func (chainopt) option()  {}
func (precopt) option()   {}

// MaxLen limits the length in bytes of expressions the evaluator accepts.
// Longer inputs are rejected with a *LengthError before any parsing. Zero or
// negative means no limit, which is the default.
func MaxLen(n int) Option {
	return maxlenopt(n)
}

// ChainPow makes ^ right-associative, so that "2^3^2" is "2^(3^2)". Without it,
// a second ^ in a row is a syntax error.
func ChainPow() Option {
	return chainopt{}
}

// Prec sets the precision in bits of EvalBig. It has no effect on Eval, which
// always uses float64. Panics if prec is zero.
func Prec(prec uint) Option {
	if prec == 0 {
		panic("descent: invalid precision " + strconv.FormatUint(uint64(prec), 10))
	}
	return precopt(prec)
}
