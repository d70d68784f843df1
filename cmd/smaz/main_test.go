package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	lines := []string{"this is a simple test", "the end"}
	for _, test := range []struct {
		name string
		opts options
		want string
	}{
		{
			name: "summary",
			want: "lines 2, bytes in 28, bytes out 13, level 54%\n",
		},
		{
			name: "verbose",
			opts: options{verbose: true, check: true, workers: 1},
			want: "53\t21\t10\tthis is a simple test\n" +
				"58\t7\t3\tthe end\n" +
				"lines 2, bytes in 28, bytes out 13, level 54%\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), &out, lines, test.opts); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, out.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunNoLines(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, nil, options{check: true}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "lines 0, bytes in 0, bytes out 0, level 0%\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("one\r\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("three"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readInputs([]string{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := readInputs([]string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Fatal("missing file: got nil error")
	}
}

func TestReadLinesTooLong(t *testing.T) {
	long := strings.Repeat("x", maxLineLen+1)
	if _, err := readLines(strings.NewReader(long)); err == nil {
		t.Fatal("over-long line: got nil error")
	}
}

func TestRunCorpus(t *testing.T) {
	lines, err := readInputs([]string{"../../testdata/lines.txt"})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run(context.Background(), &out, lines, options{check: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "lines 26, ") {
		t.Fatalf("unexpected summary %q", out.String())
	}
}
