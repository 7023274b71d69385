package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zephyrtronium/descent"
	"github.com/zephyrtronium/descent/internal/config"
	"github.com/zephyrtronium/descent/internal/history"
	"github.com/zephyrtronium/descent/internal/repl"
	"github.com/zephyrtronium/descent/internal/term"
)

func main() {
	log.SetFlags(0)
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		cfgname, inname string
		showHistory     bool
		prec, recallSeq int
	)
	cfg := config.Default()
	flag.StringVar(&cfgname, "config", "", "YAML settings file")
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfg.Format, "fmt", cfg.Format, "result formatting string")
	flag.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "prompt shown before each line on a terminal")
	flag.IntVar(&prec, "p", int(cfg.Prec), "precision of -precise calculations in bits")
	flag.BoolVar(&cfg.Precise, "precise", cfg.Precise, "calculate with arbitrary precision")
	flag.BoolVar(&cfg.ChainPow, "chainpow", cfg.ChainPow, "make ^ right-associative")
	flag.BoolVar(&cfg.Color, "color", cfg.Color, "color output on terminals")
	flag.IntVar(&cfg.MaxLen, "maxlen", cfg.MaxLen, "longest expression evaluated, in bytes (0 for no limit)")
	flag.IntVar(&cfg.Cache, "cache", cfg.Cache, "number of results to remember (0 to disable)")
	flag.StringVar(&cfg.History, "histfile", cfg.History, "history database (empty to disable)")
	flag.BoolVar(&showHistory, "history", false, "print the history and exit")
	flag.IntVar(&recallSeq, "recall", 0, "evaluate history line `n` instead of reading input")
	flag.Parse()

	if cfgname != "" {
		// Settings from the file apply unless a flag overrides them.
		fc, err := config.Load(cfgname)
		if err != nil {
			return err
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cfg = merge(fc, cfg, set)
		if !set["p"] {
			prec = int(fc.Prec)
		}
	}
	if prec <= 0 {
		return fmt.Errorf("precision (%d) must be positive", prec)
	}
	cfg.Prec = uint(prec)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var hist *history.Store
	if cfg.History != "" {
		h, err := history.Open(cfg.History)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer h.Close()
		hist = h
	}
	if showHistory {
		if hist == nil {
			return errors.New("no history file given")
		}
		return printHistory(os.Stdout, hist)
	}

	args := flag.Args()
	if recallSeq != 0 {
		text, err := recall(hist, recallSeq)
		if err != nil {
			return err
		}
		inname, args = "", []string{text}
	}
	in, interactive, err := input(inname, args)
	if err != nil {
		return err
	}
	defer in.Close()
	eval, err := evaluator(cfg)
	if err != nil {
		return err
	}
	// Both colors were checked by Validate.
	rc, _ := term.ParseColor(cfg.ResultColor)
	ec, _ := term.ParseColor(cfg.ErrorColor)
	s := repl.Session{
		In:          in,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Eval:        eval,
		Format:      cfg.Format,
		Color:       cfg.Color && term.IsTerminal(os.Stdout),
		ResultColor: rc,
		ErrorColor:  ec,
	}
	if hist != nil {
		s.History = hist
	}
	if interactive || cfg.ForcePrompt {
		s.Prompt = cfg.Prompt
	}
	if term.IsTerminal(os.Stdout) {
		_, s.Width = term.Size(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = s.Run(ctx)
	if s.Prompt != "" {
		fmt.Println()
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// merge applies the flags named in set from flags onto file.
func merge(file, flags config.Config, set map[string]bool) config.Config {
	c := file
	if set["fmt"] {
		c.Format = flags.Format
	}
	if set["prompt"] {
		c.Prompt = flags.Prompt
	}
	if set["precise"] {
		c.Precise = flags.Precise
	}
	if set["chainpow"] {
		c.ChainPow = flags.ChainPow
	}
	if set["color"] {
		c.Color = flags.Color
	}
	if set["maxlen"] {
		c.MaxLen = flags.MaxLen
	}
	if set["cache"] {
		c.Cache = flags.Cache
	}
	if set["histfile"] {
		c.History = flags.History
	}
	return c
}

type readCloser struct {
	io.Reader
	io.Closer
}

// input chooses where lines come from: the named file, the arguments, or
// stdin. It reports whether the input is an interactive terminal.
func input(inname string, args []string) (io.ReadCloser, bool, error) {
	var (
		ins []io.Reader
		c   io.Closer = io.NopCloser(nil)
	)
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		ins = append(ins, f)
		c = f
	case inname == "-", len(args) == 0:
		if len(args) == 0 {
			return io.NopCloser(os.Stdin), term.IsTerminal(os.Stdin), nil
		}
		ins = append(ins, os.Stdin)
	}
	if len(args) > 0 {
		ins = append(ins, strings.NewReader(strings.Join(args, "\n")+"\n"))
	}
	return readCloser{io.MultiReader(ins...), c}, false, nil
}

func evaluator(cfg config.Config) (func(string) (any, error), error) {
	opts := []descent.Option{descent.Prec(cfg.Prec), descent.MaxLen(cfg.MaxLen)}
	if cfg.ChainPow {
		opts = append(opts, descent.ChainPow())
	}
	ev := descent.New(opts...)
	if cfg.Precise {
		return func(line string) (any, error) {
			r, err := ev.EvalBig(line)
			if err != nil {
				return nil, err
			}
			return r, nil
		}, nil
	}
	if cfg.Cache <= 0 {
		return func(line string) (any, error) { return ev.Eval(line) }, nil
	}
	m, err := descent.NewMemo(ev, cfg.Cache)
	if err != nil {
		return nil, err
	}
	return func(line string) (any, error) { return m.Eval(line) }, nil
}

// recall returns the history line with sequence number seq.
func recall(h *history.Store, seq int) (string, error) {
	if h == nil {
		return "", errors.New("no history file given")
	}
	text, err := h.Line(seq)
	if err != nil {
		return "", fmt.Errorf("recalling line %d: %w", seq, err)
	}
	return text, nil
}

func printHistory(w io.Writer, h *history.Store) error {
	next, err := h.NextSeq()
	if err != nil {
		return err
	}
	lines, err := h.Lines(1, next)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintf(w, "%5d  %s\n", l.Seq, l.Text)
	}
	return nil
}
