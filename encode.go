package smaz

import (
	"unicode/utf8"
	"unsafe"
)

// Compress returns the compressed form of s. It never fails: text the
// codebook does not cover is stored as verbatim ASCII runs or raw UTF-8.
// Compress("") returns an empty slice.
func Compress(s string) []byte {
	return Encode(make([]byte, 0, len(s)), unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Encode compresses src, reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
// Returns the compressed data (may have different backing array than buf).
//
// Match order at each ASCII byte:
// 1) longest codebook literal, 7 bytes down to 1
// 2) otherwise the byte joins the pending verbatim run
//
// A run of non-ASCII bytes flushes the verbatim run and is copied through
// as one or more UTF-8 escapes.
func Encode(buf, src []byte) []byte {
	dst := buf[:0]
	verb := 0 // start of the pending verbatim run, always src[verb:i]

	for i := 0; i < len(src); {
		if src[i] > maxASCII {
			dst = appendVerbatim(dst, src[verb:i])
			end := i + 1
			for end < len(src) && src[end] > maxASCII {
				end++
			}
			dst = appendUTF8(dst, src[i:end])
			i, verb = end, end
			continue
		}

		if code, n, ok := findLongest(src[i:]); ok {
			dst = appendVerbatim(dst, src[verb:i])
			dst = append(dst, code)
			i += n
			verb = i
			continue
		}

		i++
		if i-verb == maxVerbatimLen {
			dst = appendVerbatim(dst, src[verb:i])
			verb = i
		}
	}
	return appendVerbatim(dst, src[verb:])
}

// appendVerbatim emits run as literal ASCII. len(run) must not exceed
// maxVerbatimLen.
func appendVerbatim(dst, run []byte) []byte {
	switch len(run) {
	case 0:
		return dst
	case 1:
		return append(dst, codeSingleASCII, run[0])
	}
	// 256 wraps to 0 in the length byte.
	dst = append(dst, codeMultiASCII, byte(len(run)))
	return append(dst, run...)
}

// appendUTF8 emits run as raw bytes behind codeUTF8Ahead, splitting it at
// rune boundaries into payloads of at most maxUTF8Len bytes.
func appendUTF8(dst, run []byte) []byte {
	for len(run) > 0 {
		n := len(run)
		if n > maxUTF8Len {
			n = maxUTF8Len
			for n > 0 && !utf8.RuneStart(run[n]) {
				n--
			}
			if n == 0 {
				// No rune starts in the window; the run is not UTF-8.
				n = maxUTF8Len
			}
		}
		dst = append(dst, codeUTF8Ahead, byte(n))
		dst = append(dst, run[:n]...)
		run = run[n:]
	}
	return dst
}
