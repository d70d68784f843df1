package smaz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		in   string
		want Stats
	}{
		{"", Stats{}},
		{"Hello, World!", Stats{
			EncodedLen: 13, DecodedLen: 13,
			Codes: 7, SingleASCII: 3, VerbatimBytes: 3,
		}},
		{"not-a-g00d-Exampl333", Stats{
			EncodedLen: 23, DecodedLen: 20,
			Codes: 12, SingleASCII: 1, VerbatimRuns: 2, VerbatimBytes: 6,
		}},
		{"héllo wörld", Stats{
			EncodedLen: 15, DecodedLen: 13,
			Codes: 7, UTF8Runs: 2, UTF8Bytes: 4,
		}},
	}
	for _, tt := range tests {
		got, err := Analyze(Compress(tt.in))
		if err != nil {
			t.Fatalf("Analyze(%q): %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Analyze(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestStatsAddLevel(t *testing.T) {
	a, err := Analyze(Compress("this is a simple test"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Analyze(Compress("the end"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Level() != 53 || b.Level() != 58 {
		t.Fatalf("levels = %d, %d; want 53, 58", a.Level(), b.Level())
	}

	sum := a.Add(b)
	if sum.EncodedLen != 13 || sum.DecodedLen != 28 {
		t.Fatalf("sum = %+v", sum)
	}
	if sum.Level() != 54 {
		t.Fatalf("sum.Level() = %d, want 54", sum.Level())
	}
	if (Stats{}).Level() != 0 || Level("") != 0 {
		t.Fatalf("level of empty input is not 0")
	}
}

func TestLevelMatchesStats(t *testing.T) {
	for _, s := range []string{"foobar", "http://google.com", "ᚠᛇᚻ", digits(300)} {
		st, err := Analyze(Compress(s))
		if err != nil {
			t.Fatal(err)
		}
		if st.Level() != Level(s) {
			t.Fatalf("%q: Stats.Level() = %d, Level = %d", s, st.Level(), Level(s))
		}
		if st.DecodedLen != len(s) {
			t.Fatalf("%q: DecodedLen = %d, want %d", s, st.DecodedLen, len(s))
		}
	}
}
