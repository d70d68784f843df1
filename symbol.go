package smaz

// Stream format constants.
const (
	codeUTF8Ahead   = 253 // next byte N (1-255), then N raw UTF-8 bytes
	codeSingleASCII = 254 // next byte is one literal ASCII character
	codeMultiASCII  = 255 // next byte N (0 means 256), then N literal ASCII bytes

	// Opcodes [0, numCodes) index reverseCodebook; the rest are escapes.
	numCodes = codeUTF8Ahead

	hashSize  = 241 // prime modulus of the forward codebook
	maxWindow = 7   // longest codebook literal ("http://")

	maxASCII       = 0x7f
	maxVerbatimLen = 256 // longest run behind codeMultiASCII, stored as 0
	maxUTF8Len     = 255 // longest payload behind codeUTF8Ahead
)

// entry is a forward codebook record: a literal and the opcode it encodes to.
type entry struct {
	lit  string
	code byte
}

// windowHashes returns the bucket indexes of the 1, 2 and 3 byte windows
// starting at src[0]. Missing bytes contribute nothing; windows longer than
// three bytes share the third bucket.
func windowHashes(src []byte) (h1, h2, h3 int) {
	h1 = int(src[0]) << 3
	h2 = h1
	if len(src) > 1 {
		h2 += int(src[1])
	}
	if len(src) > 2 {
		h3 = h2 ^ int(src[2])
	}
	return h1 % hashSize, h2 % hashSize, h3 % hashSize
}

// bucketOf returns the bucket a codebook literal belongs to.
func bucketOf(lit string) int {
	h1, h2, h3 := windowHashes([]byte(lit))
	switch len(lit) {
	case 1:
		return h1
	case 2:
		return h2
	}
	return h3
}
