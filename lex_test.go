package descent

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		src  string
		pos  int
		c    byte
		ok   bool
		want int
	}{
		{"", 0, '+', false, 0},
		{"+", 0, '+', true, 1},
		{"+", 1, '+', false, 1},
		{"   +", 0, '+', true, 4},
		{"\t +", 0, '+', true, 3},
		{"   -", 0, '+', false, 3},
		{"   ", 0, '+', false, 3},
		{"1 + 2", 1, '+', true, 3},
		{"1 + 2", 1, '*', false, 2},
		{"1 + 2", 5, '+', false, 5},
		{"((", 1, '(', true, 2},
	}
	for _, c := range cases {
		p := parser[float64]{src: c.src, pos: c.pos, num: float64s{}}
		if ok := p.match(c.c); ok != c.ok {
			t.Errorf("matching %q in %q at %d: want %t, got %t", c.c, c.src, c.pos, c.ok, ok)
		}
		if p.pos != c.want {
			t.Errorf("matching %q in %q at %d: want cursor %d, got %d", c.c, c.src, c.pos, c.want, p.pos)
		}
		if p.err != nil {
			t.Errorf("matching %q in %q at %d: unexpected error %v", c.c, c.src, c.pos, p.err)
		}
	}
}

func TestScanNum(t *testing.T) {
	cases := []struct {
		src  string
		lit  string
		rest string
	}{
		{"0", "0", ""},
		{"9876543210", "9876543210", ""},
		{"1.5", "1.5", ""},
		{"5.", "5.", ""},
		{"1.2.3", "1.2", ".3"},
		{"12+3", "12", "+3"},
		{"1 2", "1", " 2"},
		{"1e3", "1", "e3"},
		{"3.14)", "3.14", ")"},
	}
	for _, c := range cases {
		p := parser[float64]{src: c.src, num: float64s{}}
		lit := p.scanNum()
		if lit != c.lit {
			t.Errorf("scanning %q: want literal %q, got %q", c.src, c.lit, lit)
		}
		if rest := c.src[p.pos:]; rest != c.rest {
			t.Errorf("scanning %q: want %q left, got %q", c.src, c.rest, rest)
		}
	}
}

func TestFailKeepsFirstError(t *testing.T) {
	p := parser[float64]{src: "1 $ 2", pos: 2, num: float64s{}}
	p.unexpected()
	if p.pos != len(p.src) {
		t.Errorf("cursor not forced to end: %d", p.pos)
	}
	p.fail(UnbalancedParenthesis, 1, "(")
	want := SyntaxError{Kind: UnexpectedCharacter, Col: 3, Text: "$"}
	if p.err == nil || *p.err != want {
		t.Errorf("wrong error: want %+v, got %+v", want, p.err)
	}
}
