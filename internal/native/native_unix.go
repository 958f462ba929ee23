//go:build !windows

package native

import "github.com/roach88/pathabs/internal/escape"

// Unit is one element of a native path representation.
type Unit = byte

// Width is the hex digit count of one escaped Unit.
const Width = escape.ByteWidth

// Extract returns the bytes of s. Go strings already hold the raw bytes the
// kernel uses, valid UTF-8 or not.
func Extract(s string) []Unit {
	return []byte(s)
}

// Reconstitute is the inverse of Extract.
func Reconstitute(units []Unit) string {
	return string(units)
}

// Encode escapes a native unit sequence.
func Encode(units []Unit) string {
	return escape.EncodeBytes(units)
}

// Decode unescapes text produced by Encode.
func Decode(text string) ([]Unit, error) {
	return escape.DecodeBytes(text)
}
