package descent

import "unicode/utf8"

// space reports whether c is skipped between tokens.
func space(c byte) bool {
	return c == ' ' || c == '\t'
}

func digit(c byte) bool {
	return '0' <= c && c <= '9'
}

// skip advances the cursor past any run of spaces.
func (p *parser[T]) skip() {
	for p.pos < len(p.src) && space(p.src[p.pos]) {
		p.pos++
	}
}

// match advances past spaces, then consumes c if it is the character under
// the cursor. The spaces are consumed even if the match fails. At the end of
// the input, nothing matches.
func (p *parser[T]) match(c byte) bool {
	p.skip()
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// peek returns the character under the cursor, or 0 at the end of the input.
func (p *parser[T]) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// scanNum scans the longest literal of the form digits [ "." digits ] starting
// at the cursor and moves the cursor to the first character after it. The
// cursor must be on a digit.
func (p *parser[T]) scanNum() string {
	start := p.pos
	for p.pos < len(p.src) && digit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.src) && digit(p.src[p.pos]) {
			p.pos++
		}
	}
	return p.src[start:p.pos]
}

// unexpected fails on whatever is under the cursor: the end of the input or
// an unexpected character.
func (p *parser[T]) unexpected() {
	if p.pos >= len(p.src) {
		p.fail(UnexpectedEnd, p.pos+1, "")
		return
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	p.fail(UnexpectedCharacter, p.pos+1, string(r))
}

// fail records a syntax error and forces the cursor to the end of the input,
// abandoning the rest of it. Only the first error is kept.
func (p *parser[T]) fail(kind ErrorKind, col int, text string) {
	if p.err == nil {
		p.err = &SyntaxError{Kind: kind, Col: col, Text: text}
	}
	p.pos = len(p.src)
}
