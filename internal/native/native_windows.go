//go:build windows

package native

import (
	"slices"
	"unicode/utf16"

	"golang.org/x/sys/windows"

	"github.com/roach88/pathabs/internal/escape"
)

// Unit is one element of a native path representation.
type Unit = uint16

// Width is the hex digit count of one escaped Unit.
const Width = escape.WideWidth

// Extract returns the UTF-16 code units of s. Strings obtained from the
// Windows API carry unpaired surrogates as WTF-8, which UTF16FromString
// maps back to the original units.
func Extract(s string) []Unit {
	u, err := windows.UTF16FromString(s)
	if err != nil {
		// s contains NUL, which no valid path does.
		return utf16.Encode([]rune(s))
	}
	return u[:len(u)-1]
}

// Reconstitute is the inverse of Extract.
func Reconstitute(units []Unit) string {
	if slices.Contains(units, 0) {
		// UTF16ToString stops at NUL; keep it so path validation rejects it.
		return string(utf16.Decode(units))
	}
	return windows.UTF16ToString(units)
}

// Encode escapes a native unit sequence.
func Encode(units []Unit) string {
	return escape.EncodeWide(units)
}

// Decode unescapes text produced by Encode.
func Decode(text string) ([]Unit, error) {
	return escape.DecodeWide(text)
}
