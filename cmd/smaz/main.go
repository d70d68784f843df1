// Command smaz reports how well the lines of text files compress with the
// smaz codebook.
//
// Usage:
//
//	smaz [flags] [file ...]
//
// With no files, smaz reads standard input. Each line is compressed on its
// own, the way smaz is meant to be used. The flags are:
//
//	-v
//	    print level, input bytes, output bytes and the line itself for every line
//	-check
//	    decompress every line and fail if it does not match the input
//	-workers=0
//	    number of lines compressed concurrently; 0 means GOMAXPROCS
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/axiomhq/smaz"
)

var (
	verbose = flag.Bool("v", false, "print the compression level of every line")
	check   = flag.Bool("check", false, "decompress every line and verify the round trip")
	workers = flag.Int("workers", 0, "number of lines compressed concurrently (0 means GOMAXPROCS)")
)

// maxLineLen bounds a single input line.
const maxLineLen = 1 << 20

func main() {
	log.SetFlags(0)
	log.SetPrefix("smaz: ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lines, err := readInputs(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	opts := options{verbose: *verbose, check: *check, workers: *workers}
	if err := run(ctx, os.Stdout, lines, opts); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	verbose bool
	check   bool
	workers int
}

// run compresses lines and writes a report to w.
func run(ctx context.Context, w io.Writer, lines []string, opts options) error {
	compressed, err := smaz.CompressAll(ctx, lines, opts.workers)
	if err != nil {
		return err
	}
	if opts.check {
		decoded, err := smaz.DecompressAll(ctx, compressed, opts.workers)
		if err != nil {
			return err
		}
		for i := range lines {
			if decoded[i] != lines[i] {
				return fmt.Errorf("line %d: round trip mismatch: got %q, want %q", i+1, decoded[i], lines[i])
			}
		}
	}

	var total smaz.Stats
	for i, c := range compressed {
		st, err := smaz.Analyze(c)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if opts.verbose {
			fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", st.Level(), st.DecodedLen, st.EncodedLen, lines[i])
		}
		total = total.Add(st)
	}
	_, err = fmt.Fprintf(w, "lines %d, bytes in %d, bytes out %d, level %d%%\n",
		len(lines), total.DecodedLen, total.EncodedLen, total.Level())
	return err
}

// readInputs returns the lines of the named files, or of standard input
// when there are none.
func readInputs(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return readLines(os.Stdin)
	}
	var lines []string
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		ls, err := readLines(f)
		// Ignore the error from Close, the file was only read.
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		lines = append(lines, ls...)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
