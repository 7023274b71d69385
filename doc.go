// Package descent implements a single-pass calculator for arithmetic
// expressions.
//
// Expressions are parsed by recursive descent and folded into a value as they
// are read, so no syntax tree is ever built. The grammar, from the loosest
// binding tier to the tightest, is:
//
//	term    = factor { ("+" | "-") factor }
//	factor  = expo { ("*" | "/") expo }
//	expo    = unary [ "^" unary ]
//	unary   = "-" unary | primary
//	primary = number | "(" term ")"
//
// Operators of the same tier apply left to right in the order they appear, so
// "8/2*2" is 8. Negation binds tighter than "^", so "-2^2" is 4. By default
// "^" does not chain: "2^3^2" is a syntax error at the second "^". The
// ChainPow option makes it right-associative instead.
//
// Spaces and tabs between tokens are ignored. A number is a run of decimal
// digits optionally followed by a point and more digits.
//
// Eval works in float64 with the usual IEEE semantics: "1/0" is +Inf and
// "(-8)^0.5" is NaN. EvalBig runs the same grammar over *big.Float at a
// configurable precision.
package descent
