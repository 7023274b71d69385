package history

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func open(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return s, path
}

func TestAddAndLines(t *testing.T) {
	s, _ := open(t)
	defer s.Close()

	if seq, err := s.NextSeq(); err != nil || seq != 1 {
		t.Errorf("empty store: want next seq 1, got %d, %v", seq, err)
	}
	for i, text := range []string{"2+3*4", "(1+2", "--5"} {
		seq, err := s.Add(text)
		if err != nil {
			t.Fatal(err)
		}
		if seq != i+1 {
			t.Errorf("%q: want seq %d, got %d", text, i+1, seq)
		}
	}
	if seq, err := s.NextSeq(); err != nil || seq != 4 {
		t.Errorf("want next seq 4, got %d, %v", seq, err)
	}

	lines, err := s.Lines(0, 100)
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{{1, "2+3*4"}, {2, "(1+2"}, {3, "--5"}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("wrong lines (-want +got):\n%s", diff)
	}

	lines, err = s.Lines(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Line{{2, "(1+2"}}, lines); diff != "" {
		t.Errorf("wrong range (-want +got):\n%s", diff)
	}
}

func TestLine(t *testing.T) {
	s, _ := open(t)
	defer s.Close()
	if _, err := s.Add("1/0"); err != nil {
		t.Fatal(err)
	}
	if text, err := s.Line(1); err != nil || text != "1/0" {
		t.Errorf("want %q, got %q, %v", "1/0", text, err)
	}
	if _, err := s.Line(2); !errors.Is(err, ErrNoLine) {
		t.Errorf("want ErrNoLine, got %v", err)
	}
}

func TestReopen(t *testing.T) {
	s, path := open(t)
	if _, err := s.Add("8/2*2"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	seq, err := s.Add("2^3")
	if err != nil {
		t.Fatal(err)
	}
	if seq != 2 {
		t.Errorf("sequence restarted: got %d", seq)
	}
}
