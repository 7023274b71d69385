// Package repl runs the calculator's read-evaluate-print loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zephyrtronium/descent"
	"github.com/zephyrtronium/descent/internal/term"
)

// Recorder records lines as they are evaluated.
type Recorder interface {
	Add(text string) (int, error)
}

// Session is one run of the loop.
type Session struct {
	// In is read one line at a time.
	In io.Reader
	// Out receives results. Err receives diagnostics.
	Out, Err io.Writer
	// Eval evaluates a line. The result must be printable with Format.
	Eval func(line string) (any, error)
	// Prompt is printed to Out before each line if it is not empty.
	Prompt string
	// Format is the fmt verb for results.
	Format string
	// Color styles results and diagnostics with ANSI escapes.
	Color bool
	// ResultColor and ErrorColor are the colors used when Color is set. Zero
	// means green and red respectively.
	ResultColor, ErrorColor term.Color
	// Width is the width of the terminal, or zero if Out is not one. When the
	// column of a syntax error fits within it, a caret marks the column under
	// the echoed input.
	Width int
	// History records each evaluated line if it is not nil.
	History Recorder
}

// Run reads, evaluates, and prints lines until In is exhausted or ctx is
// cancelled. Empty lines are skipped. The returned error is nil at the end of
// the input, ctx.Err() if ctx is cancelled, or the error from reading In.
//
// Lines are read in a separate goroutine. A Read on In cannot be interrupted,
// so after ctx is cancelled that goroutine stays blocked until the Read
// returns, e.g. until In is closed or the process exits.
func (s *Session) Run(ctx context.Context) error {
	lines := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- scan(ctx, s.In, lines)
		close(lines)
	}()
	for {
		if s.Prompt != "" {
			io.WriteString(s.Out, s.Prompt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-done
			}
			s.Line(line)
		}
	}
}

// scan sends lines from r until it ends or ctx is cancelled.
func scan(ctx context.Context, r io.Reader, lines chan<- string) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return sc.Err()
}

// Line evaluates and prints one line. It reports whether the line evaluated
// successfully. An empty line does nothing and counts as success.
func (s *Session) Line(line string) bool {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return true
	}
	if s.History != nil {
		if _, err := s.History.Add(line); err != nil {
			s.diag("history: " + err.Error())
		}
	}
	r, err := s.Eval(line)
	if err != nil {
		s.fail(line, err)
		return false
	}
	out := fmt.Sprintf(s.Format, r)
	if s.Color {
		out = term.Text(out, or(s.ResultColor, term.Green), term.None).String()
	}
	fmt.Fprintln(s.Out, out)
	return true
}

func (s *Session) fail(line string, err error) {
	var ierr descent.InputError
	if s.Prompt != "" && errors.As(err, &ierr) {
		// The terminal echoed the input after the prompt, so the caret goes
		// under the offending column.
		col := caretCol(s.Prompt, line, ierr.Pos())
		if col < s.Width {
			caret := strings.Repeat(" ", col) + "^"
			if s.Color {
				caret = term.Text(caret, or(s.ErrorColor, term.Red), term.Bold).String()
			}
			fmt.Fprintln(s.Err, caret)
		}
	}
	s.diag("could not evaluate expression: " + err.Error())
}

// tabWidth is the distance between the terminal's tab stops.
const tabWidth = 8

// caretCol returns the 0-based screen column of the 1-based input column pos
// when line is echoed after prompt. Tabs advance to the next tab stop.
func caretCol(prompt, line string, pos int) int {
	n := pos - 1
	if n > len(line) {
		n = len(line)
	}
	col := len(prompt)
	for i := 0; i < n; i++ {
		if line[i] == '\t' {
			col = (col/tabWidth + 1) * tabWidth
			continue
		}
		col++
	}
	return col
}

func (s *Session) diag(msg string) {
	if s.Color {
		msg = term.Text(msg, or(s.ErrorColor, term.Red), term.None).String()
	}
	fmt.Fprintln(s.Err, msg)
}

func or(c, def term.Color) term.Color {
	if c == 0 {
		return def
	}
	return c
}
