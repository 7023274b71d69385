package descent

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// arith is the arithmetic the grammar folds values with.
type arith[T any] interface {
	// zero returns the placeholder value used after a syntax error.
	zero() T
	// parse converts a literal scanned by scanNum.
	parse(lit string) T
	neg(x T) T
	add(x, y T) T
	sub(x, y T) T
	mul(x, y T) T
	div(x, y T) T
	pow(x, y T) T
}

// float64s is IEEE double arithmetic. Nothing it does is an error.
type float64s struct{}

func (float64s) zero() float64 { return 0 }

func (float64s) parse(lit string) float64 {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// scanNum only produces valid literals.
		panic("descent: invalid number: " + lit + " (" + err.Error() + ")")
	}
	// Out of range literals are ±Inf, which ParseFloat has already given us.
	return f
}

func (float64s) neg(x float64) float64    { return -x }
func (float64s) add(x, y float64) float64 { return x + y }
func (float64s) sub(x, y float64) float64 { return x - y }
func (float64s) mul(x, y float64) float64 { return x * y }
func (float64s) div(x, y float64) float64 { return x / y }
func (float64s) pow(x, y float64) float64 { return math.Pow(x, y) }

// bigs is arbitrary-precision arithmetic. Since big.Float has no NaN, results
// that would be NaN are recorded as a DomainError and replaced with zero so
// that parsing can continue.
type bigs struct {
	prec uint
	err  error
}

func (b *bigs) zero() *big.Float {
	return new(big.Float).SetPrec(b.prec)
}

func (b *bigs) parse(lit string) *big.Float {
	r, _, err := b.zero().Parse(lit, 10)
	if err != nil {
		panic("descent: invalid number: " + lit + " (" + err.Error() + ")")
	}
	return r
}

func (b *bigs) neg(x *big.Float) *big.Float {
	return b.zero().Neg(x)
}

func (b *bigs) add(x, y *big.Float) *big.Float {
	return b.do("+", x, y, (*big.Float).Add)
}

func (b *bigs) sub(x, y *big.Float) *big.Float {
	return b.do("-", x, y, (*big.Float).Sub)
}

func (b *bigs) mul(x, y *big.Float) *big.Float {
	return b.do("*", x, y, (*big.Float).Mul)
}

func (b *bigs) div(x, y *big.Float) *big.Float {
	return b.do("/", x, y, (*big.Float).Quo)
}

func (b *bigs) pow(x, y *big.Float) *big.Float {
	switch {
	case x.IsInf():
		b.domain("^", x, 1)
		return b.zero()
	case y.IsInf():
		b.domain("^", y, 2)
		return b.zero()
	case y.Sign() == 0:
		return b.zero().SetInt64(1)
	case x.Sign() == 0:
		// -0 keeps its sign only for odd integer exponents.
		neg := x.Signbit() && oddInt(y)
		if y.Sign() < 0 {
			return b.zero().SetInf(neg)
		}
		r := b.zero()
		if neg {
			r.Neg(r)
		}
		return r
	}
	odd := false
	if x.Sign() < 0 {
		// Negative bases only have real powers for integer exponents.
		if !y.IsInt() {
			b.domain("^", x, 1)
			return b.zero()
		}
		odd = oddInt(y)
		x = b.zero().Abs(x)
	}
	r := b.do("^", x, y, bigfloat.Pow)
	if odd {
		r.Neg(r)
	}
	return r
}

// oddInt reports whether y is an odd integer.
func oddInt(y *big.Float) bool {
	if !y.IsInt() {
		return false
	}
	n, _ := y.Int(nil)
	return n.Bit(0) == 1
}

// do applies op to x and y, converting NaN panics into a DomainError.
func (b *bigs) do(name string, x, y *big.Float, op func(z, x, y *big.Float) *big.Float) (r *big.Float) {
	r = b.zero()
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if _, ok := e.(big.ErrNaN); !ok {
			panic(e)
		}
		b.domain(name, y, 2)
		r = b.zero()
	}()
	return op(r, x, y)
}

// domain records the first domain error.
func (b *bigs) domain(name string, x *big.Float, arg int) {
	if b.err == nil {
		b.err = DomainError{X: new(big.Float).Copy(x), Arg: arg, Func: name}
	}
}

// DomainError is an error returned when an operator is applied to operands
// for which the result has no arbitrary-precision value, e.g. 0/0 or a
// negative number to a fractional power.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Arg is the 1-based index of the operand.
	Arg int
	// Func is the operator.
	Func string
}

func (err DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (operand " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}
