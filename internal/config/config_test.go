package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Config
	}{
		{"empty", "", Default()},
		{
			"some",
			"prompt: 'calc> '\nprecise: true\nprec: 128\n",
			func() Config {
				c := Default()
				c.Prompt = "calc> "
				c.Precise = true
				c.Prec = 128
				return c
			}(),
		},
		{
			"all",
			`
prompt: ""
force_prompt: true
format: "%.3f"
color: false
result_color: cyan
error_color: orange
precise: false
prec: 53
chain_pow: true
max_len: 1024
cache: 64
history: /tmp/hist.db
`,
			Config{
				Prompt:      "",
				ForcePrompt: true,
				Format:      "%.3f",
				Color:       false,
				ResultColor: "cyan",
				ErrorColor:  "orange",
				Prec:        53,
				ChainPow:    true,
				MaxLen:      1024,
				Cache:       64,
				History:     "/tmp/hist.db",
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(c.src))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("wrong config (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unknown", "colour: true\n"},
		{"type", "prec: lots\n"},
		{"zero-prec", "prec: 0\n"},
		{"neg-len", "max_len: -1\n"},
		{"neg-cache", "cache: -5\n"},
		{"no-format", "format: ''\n"},
		{"bad-result-color", "result_color: mauve\n"},
		{"bad-error-color", "error_color: ''\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got, err := Decode(strings.NewReader(c.src)); err == nil {
				t.Errorf("no error; got %+v", got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descent.yaml")
	if err := os.WriteFile(path, []byte("cache: 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Cache != 16 {
		t.Errorf("want cache 16, got %d", c.Cache)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("no error for missing file")
	}
}
