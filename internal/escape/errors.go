package escape

import (
	"errors"
	"fmt"
)

// Syntax error categories. A *SyntaxError unwraps to exactly one of these.
var (
	ErrTruncated    = errors.New("truncated escape")
	ErrInvalidHex   = errors.New("invalid hex digit in escape")
	ErrUnescaped    = errors.New("character must be escaped")
	ErrNonCanonical = errors.New("escaped character must appear literally")
)

// SyntaxError reports malformed escaped text.
type SyntaxError struct {
	Offset int   // byte offset of the offending character
	Err    error // one of the Err* categories
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("escape syntax error at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
