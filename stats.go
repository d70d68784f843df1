package smaz

// Stats tallies how a compressed stream spends its bytes.
//
// Escapes carry their payload verbatim, so every byte of DecodedLen comes
// from exactly one of the codebook expansions, VerbatimBytes or UTF8Bytes.
type Stats struct {
	EncodedLen int // compressed bytes
	DecodedLen int // bytes after decompression

	Codes         int // codebook opcodes
	SingleASCII   int // single-character escapes
	VerbatimRuns  int // multi-character escapes
	VerbatimBytes int // ASCII bytes carried by either verbatim escape
	UTF8Runs      int // UTF-8 escapes
	UTF8Bytes     int // raw bytes carried by UTF-8 escapes
}

// Analyze walks the compressed stream b without decompressing it and
// returns its Stats. It fails on the same inputs as Decompress.
func Analyze(b []byte) (Stats, error) {
	st := Stats{EncodedLen: len(b)}
	c := cursor{src: b}
	for c.more() {
		code, lit, err := c.next()
		if err != nil {
			return Stats{}, err
		}
		switch code {
		case codeUTF8Ahead:
			st.UTF8Runs++
			st.UTF8Bytes += len(lit)
		case codeSingleASCII:
			st.SingleASCII++
			st.VerbatimBytes++
		case codeMultiASCII:
			st.VerbatimRuns++
			st.VerbatimBytes += len(lit)
		default:
			st.Codes++
			st.DecodedLen += len(reverseCodebook[code])
		}
	}
	st.DecodedLen += st.VerbatimBytes + st.UTF8Bytes
	return st, nil
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	s.EncodedLen += o.EncodedLen
	s.DecodedLen += o.DecodedLen
	s.Codes += o.Codes
	s.SingleASCII += o.SingleASCII
	s.VerbatimRuns += o.VerbatimRuns
	s.VerbatimBytes += o.VerbatimBytes
	s.UTF8Runs += o.UTF8Runs
	s.UTF8Bytes += o.UTF8Bytes
	return s
}

// Level returns the percentage of bytes saved, see the package-level Level.
func (s Stats) Level() int {
	return level(s.EncodedLen, s.DecodedLen)
}

// Level returns the percentage of bytes saved by compressing s:
// 100 - 100*len(Compress(s))/len(s), rounded toward zero. Text that grows
// under compression has a negative level. Level("") is 0.
func Level(s string) int {
	return level(len(Compress(s)), len(s))
}

func level(compressed, original int) int {
	if original == 0 {
		return 0
	}
	return 100 - (100*compressed)/original
}
