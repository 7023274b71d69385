package descent

// parser holds the state of one evaluation. Each call to Eval or EvalBig gets
// its own parser, so evaluations never share a cursor or an error.
type parser[T any] struct {
	// src is the input. It is never modified.
	src string
	// pos is the cursor, a byte index into src. It only moves forward, except
	// that fail moves it to the end.
	pos int
	// err is the first syntax error, if any. Values returned by the grammar
	// functions are placeholders once it is set.
	err *SyntaxError
	// num does the arithmetic.
	num arith[T]
	// chain makes ^ right-associative rather than non-associative.
	chain bool
}

// parse evaluates the whole input. Anything left after the outermost term is
// an error.
func (p *parser[T]) parse() T {
	v := p.term()
	p.skip()
	if p.pos < len(p.src) {
		p.unexpected()
	}
	return v
}

// term parses additions and subtractions, applied left to right in the order
// they appear.
func (p *parser[T]) term() T {
	v := p.factor()
	for {
		switch {
		case p.match('+'):
			v = p.num.add(v, p.factor())
		case p.match('-'):
			v = p.num.sub(v, p.factor())
		default:
			return v
		}
	}
}

// factor parses multiplications and divisions, applied left to right in the
// order they appear.
func (p *parser[T]) factor() T {
	v := p.expo()
	for {
		switch {
		case p.match('*'):
			v = p.num.mul(v, p.expo())
		case p.match('/'):
			v = p.num.div(v, p.expo())
		default:
			return v
		}
	}
}

// expo parses at most one exponentiation, or a right-associative chain of them
// if p.chain is set.
func (p *parser[T]) expo() T {
	v := p.unary()
	if !p.match('^') {
		return v
	}
	if p.chain {
		return p.num.pow(v, p.expo())
	}
	return p.num.pow(v, p.unary())
}

// unary parses any number of leading negations.
func (p *parser[T]) unary() T {
	if p.match('-') {
		return p.num.neg(p.unary())
	}
	return p.primary()
}

// primary parses a number or a parenthesized term.
func (p *parser[T]) primary() T {
	if p.match('(') {
		// The cursor is just past the parenthesis, which makes it the
		// parenthesis's 1-based column.
		open := p.pos
		v := p.term()
		if !p.match(')') {
			p.fail(UnbalancedParenthesis, open, "(")
			return p.num.zero()
		}
		return v
	}
	if digit(p.peek()) {
		return p.num.parse(p.scanNum())
	}
	p.unexpected()
	return p.num.zero()
}
