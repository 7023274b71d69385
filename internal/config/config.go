// Package config loads the calculator's settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/descent/internal/term"
)

// Config holds the settings of the calculator's host loop.
type Config struct {
	// Prompt is printed before reading each line.
	Prompt string `yaml:"prompt"`
	// ForcePrompt prints the prompt even when input is not a terminal.
	ForcePrompt bool `yaml:"force_prompt"`
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// Color colors results and diagnostics when output is a terminal.
	Color bool `yaml:"color"`
	// ResultColor and ErrorColor name the colors of results and diagnostics.
	ResultColor string `yaml:"result_color"`
	ErrorColor  string `yaml:"error_color"`
	// Precise evaluates with arbitrary precision instead of float64.
	Precise bool `yaml:"precise"`
	// Prec is the precision in bits of precise evaluation.
	Prec uint `yaml:"prec"`
	// ChainPow makes ^ right-associative.
	ChainPow bool `yaml:"chain_pow"`
	// MaxLen is the longest line evaluated, in bytes. Zero means no limit.
	MaxLen int `yaml:"max_len"`
	// Cache is the number of float64 results remembered. Zero disables it.
	Cache int `yaml:"cache"`
	// History is the path of the history database. Empty disables history.
	History string `yaml:"history"`
}

// Default returns the settings used when nothing else is specified.
func Default() Config {
	return Config{
		Prompt:      "> ",
		Format:      "%g",
		Color:       true,
		ResultColor: "green",
		ErrorColor:  "red",
		Prec:        64,
	}
}

// Decode reads settings from YAML. Settings not present keep their defaults.
// Unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads settings from the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks that settings are usable.
func (c Config) Validate() error {
	switch {
	case c.Prec == 0:
		return errors.New("precision must be positive")
	case c.MaxLen < 0:
		return fmt.Errorf("max_len (%d) must not be negative", c.MaxLen)
	case c.Cache < 0:
		return fmt.Errorf("cache (%d) must not be negative", c.Cache)
	case c.Format == "":
		return errors.New("format must not be empty")
	}
	if _, err := term.ParseColor(c.ResultColor); err != nil {
		return fmt.Errorf("result_color: %w", err)
	}
	if _, err := term.ParseColor(c.ErrorColor); err != nil {
		return fmt.Errorf("error_color: %w", err)
	}
	return nil
}
