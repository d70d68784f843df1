package smaz

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates a compressed stream that no encoder could
	// have produced, such as an escape whose declared length runs past the
	// end of the input.
	ErrMalformedInput = errors.New("smaz: malformed input")

	// ErrInvalidRange indicates an offset and length that do not describe a
	// sub-range of the buffer passed to DecompressRange.
	ErrInvalidRange = errors.New("smaz: invalid range")
)

func malformed(what string, offset int) error {
	return fmt.Errorf("%w: %s at offset %d", ErrMalformedInput, what, offset)
}
