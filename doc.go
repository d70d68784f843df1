// Package smaz compresses short strings with a static dictionary.
//
// # Overview
//
// Smaz replaces frequent English and web substrings ("the", " of",
// "http://", "\r\n") with single-byte opcodes taken from a fixed codebook of
// 253 entries. Nothing is learned or stored alongside the output: the
// codebook is compiled into the package, so a compressed string is just
// bytes, with no header or length prefix.
//
// # When to Use Smaz
//
// Smaz pays off when many short, independent strings must be stored or
// sent one at a time, and a few bytes per string matter:
//   - URLs and host names
//   - Log lines and short messages
//   - Keys and labels in English-like text
//
// Typical savings on such input are 30-60%.
//
// # When NOT to Use Smaz
//
//   - Long documents (use gzip or zstd, which adapt to the input)
//   - Binary, random or encrypted data (every byte escapes and grows)
//   - Text in non-Latin scripts (stored as raw UTF-8 plus escape bytes)
//
// # Stream Format
//
// Every byte of a compressed stream is an opcode:
//
//	0-252  expands to the codebook entry with that index
//	253    next byte N (1-255), then N bytes of raw UTF-8
//	254    next byte is one literal ASCII character
//	255    next byte N (0 stands for 256), then N literal ASCII bytes
//
// The encoder scans left to right and, at every ASCII byte, emits the
// longest codebook entry (up to 7 bytes) that matches. Bytes with no match
// collect into verbatim runs of at most 256 bytes. Consecutive non-ASCII
// bytes are copied through behind 253, split into runs of at most 255
// bytes at rune boundaries.
//
// # Basic Usage
//
//	compressed := smaz.Compress("http://github.com/antirez/smaz")
//	original, err := smaz.Decompress(compressed)
//
//	// Or reuse buffers across calls
//	buf = smaz.Encode(buf, line)
//	out, err = smaz.Decode(out, buf)
//
//	// Compress many strings on a bounded number of goroutines
//	blobs, err := smaz.CompressAll(ctx, lines, 8)
//
// # Errors
//
// Compression never fails. Decompression checks bounds: a stream whose
// escape lengths run past the end of the input yields an error wrapping
// ErrMalformedInput rather than a panic or a partial result.
//
// # Concurrency
//
// The codebook is read-only after package initialisation. All functions
// are safe for concurrent use.
package smaz
