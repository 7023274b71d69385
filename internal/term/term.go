// Package term provides what the calculator needs from a terminal: styled text
// as ANSI escape sequences, terminal detection, and the size of the window.
package term

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// Color is an SGR foreground color code.
type Color uint8

const (
	Black Color = 30 + iota
	Red
	Green
	Orange
	Blue
	Purple
	Cyan
	White
)

// Default is the terminal's own foreground color.
const Default Color = 39

var colorNames = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"orange":  Orange,
	"blue":    Blue,
	"purple":  Purple,
	"cyan":    Cyan,
	"white":   White,
	"default": Default,
}

// ParseColor returns the color with the given name, e.g. "red" or "default".
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(name)]
	if !ok {
		return 0, errors.New("unknown color " + strconv.Quote(name))
	}
	return c, nil
}

// Attr is an SGR text attribute.
type Attr uint8

const (
	None Attr = 0
	Bold Attr = 1
)

// Cell is one glyph and its style.
type Cell struct {
	Glyph rune
	Color Color
	Attr  Attr
}

// Row is a line of cells.
type Row []Cell

// Text creates a row showing s in one style.
func Text(s string, c Color, a Attr) Row {
	row := make(Row, 0, len(s))
	for _, r := range s {
		row = append(row, Cell{Glyph: r, Color: c, Attr: a})
	}
	return row
}

// String renders the cell with its style, followed by a reset.
func (c Cell) String() string {
	var b strings.Builder
	c.sgr(&b)
	b.WriteRune(c.Glyph)
	b.WriteString(reset)
	return b.String()
}

// String renders the row. Consecutive cells with the same style share one
// escape sequence.
func (r Row) String() string {
	var b strings.Builder
	for i, c := range r {
		if i == 0 || c.Color != r[i-1].Color || c.Attr != r[i-1].Attr {
			if i > 0 {
				b.WriteString(reset)
			}
			c.sgr(&b)
		}
		b.WriteRune(c.Glyph)
	}
	if len(r) > 0 {
		b.WriteString(reset)
	}
	return b.String()
}

// Plain returns the glyphs of the row without any styling.
func (r Row) Plain() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteRune(c.Glyph)
	}
	return b.String()
}

const reset = "\033[0m"

func (c Cell) sgr(b *strings.Builder) {
	b.WriteString("\033[")
	b.WriteString(strconv.Itoa(int(c.Attr)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.Color)))
	b.WriteByte('m')
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Size returns the number of rows and columns of the terminal f refers to, or
// -1, -1 if f is not a terminal.
func Size(f *os.File) (rows, cols int) {
	return winSize(f)
}
