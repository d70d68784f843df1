package smaz

import (
	"fmt"
	"unsafe"
)

// Decompress decompresses b, the output of Compress, back into a string.
func Decompress(b []byte) (string, error) {
	return DecompressRange(b, 0, len(b))
}

// DecompressRange decompresses the length bytes of b starting at offset,
// without copying them out of b first. Errors report offsets relative to b.
func DecompressRange(b []byte, offset, length int) (string, error) {
	if offset < 0 || length < 0 || offset > len(b) || length > len(b)-offset {
		return "", fmt.Errorf("%w: offset %d length %d in %d bytes", ErrInvalidRange, offset, length, len(b))
	}
	out, err := decode(make([]byte, 0, 2*length), b[offset:offset+length], offset)
	if err != nil {
		return "", err
	}
	return unsafe.String(unsafe.SliceData(out), len(out)), nil
}

// Decode decompresses src, reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
// Returns the decompressed data (may have different backing array than buf),
// or nil and an error wrapping ErrMalformedInput.
func Decode(buf, src []byte) ([]byte, error) {
	return decode(buf[:0], src, 0)
}

// DecodeString is like Decode for a compressed stream held in a string.
func DecodeString(s string) ([]byte, error) {
	return decode(nil, unsafe.Slice(unsafe.StringData(s), len(s)), 0)
}

func decode(dst, src []byte, base int) ([]byte, error) {
	c := cursor{src: src, base: base}
	for c.more() {
		code, lit, err := c.next()
		if err != nil {
			return nil, err
		}
		if code < numCodes {
			dst = append(dst, reverseCodebook[code]...)
		} else {
			dst = append(dst, lit...)
		}
	}
	return dst, nil
}

// cursor walks a compressed stream one opcode at a time.
type cursor struct {
	src  []byte
	pos  int
	base int // offset of src within the caller's buffer, for errors
}

func (c *cursor) more() bool { return c.pos < len(c.src) }

// next consumes one opcode and its operands. For escapes it returns the
// literal payload; for codebook opcodes lit is nil.
func (c *cursor) next() (code byte, lit []byte, err error) {
	start := c.pos
	code = c.src[start]
	if code < numCodes {
		c.pos++
		return code, nil, nil
	}
	if start+1 >= len(c.src) {
		if code == codeSingleASCII {
			return 0, nil, malformed("truncated literal", c.base+start)
		}
		return 0, nil, malformed("truncated length", c.base+start)
	}
	if code == codeSingleASCII {
		c.pos += 2
		return code, c.src[start+1 : start+2], nil
	}

	n := int(c.src[start+1])
	if n == 0 {
		if code == codeUTF8Ahead {
			return 0, nil, malformed("empty UTF-8 run", c.base+start)
		}
		n = maxVerbatimLen
	}
	payload := start + 2
	if n > len(c.src)-payload {
		return 0, nil, malformed(fmt.Sprintf("%d byte run past end of input", n), c.base+start)
	}
	c.pos = payload + n
	return code, c.src[payload:c.pos], nil
}
