package descent

import "strconv"

// ErrorKind classifies syntax errors.
type ErrorKind int

const (
	// UnexpectedCharacter is a character where a value or an operator was
	// required and none matched.
	UnexpectedCharacter ErrorKind = iota + 1
	// UnbalancedParenthesis is an open parenthesis with no close parenthesis.
	UnbalancedParenthesis
	// UnexpectedEnd is the end of the input where a value was required.
	UnexpectedEnd
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnbalancedParenthesis:
		return "UnbalancedParenthesis"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// SyntaxError is an error indicating input that does not follow the grammar.
// Parsing stops at the first one. It implements InputError.
type SyntaxError struct {
	// Kind is the kind of error.
	Kind ErrorKind
	// Col is the 1-based column of the offending character. For
	// UnbalancedParenthesis, it is the column of the open parenthesis. For
	// UnexpectedEnd, it is one past the last column.
	Col int
	// Text is the offending character, "(" for UnbalancedParenthesis, or empty
	// for UnexpectedEnd.
	Text string
}

func (err *SyntaxError) Error() string {
	switch err.Kind {
	case UnexpectedCharacter:
		return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
	case UnbalancedParenthesis:
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	case UnexpectedEnd:
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "unexpected end of expression")
	default:
		return errpos(err.Col, "syntax error ("+err.Kind.String()+")")
	}
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// LengthError is an error indicating an input longer than an evaluator
// accepts. It implements InputError.
type LengthError struct {
	// Len is the length of the input in bytes.
	Len int
	// Max is the maximum length.
	Max int
}

func (err *LengthError) Error() string {
	return errpos(err.Max+1, "expression of "+strconv.Itoa(err.Len)+" bytes is longer than the limit of "+strconv.Itoa(err.Max))
}

func (err *LengthError) Pos() int {
	return err.Max + 1
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column at which the input became invalid.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LengthError)(nil)
)
