package escape

import "strings"

// Introducer marks the start of a hex-escaped unit.
const Introducer = '%'

// Hex digit counts per unit width.
const (
	ByteWidth = 2 // 8-bit units
	WideWidth = 4 // 16-bit units
)

const hexDigits = "0123456789ABCDEF"

type unit interface {
	~uint8 | ~uint16
}

// EncodeBytes escapes a sequence of 8-bit units. It never fails.
func EncodeBytes(units []byte) string {
	return encode(units, ByteWidth)
}

// DecodeBytes reverses EncodeBytes.
func DecodeBytes(text string) ([]byte, error) {
	return decode[byte](text, ByteWidth)
}

// EncodeWide escapes a sequence of 16-bit units. Unpaired surrogates are
// escaped like any other non-ASCII unit.
func EncodeWide(units []uint16) string {
	return encode(units, WideWidth)
}

// DecodeWide reverses EncodeWide.
func DecodeWide(text string) ([]uint16, error) {
	return decode[uint16](text, WideWidth)
}

// safe reports whether u is written verbatim.
func safe[U unit](u U) bool {
	return u >= 0x20 && u <= 0x7E && u != Introducer && u != '"' && u != '\\'
}

func encode[U unit](units []U, width int) string {
	var b strings.Builder
	b.Grow(len(units))
	for _, u := range units {
		if safe(u) {
			b.WriteByte(byte(u))
			continue
		}
		b.WriteByte(Introducer)
		for shift := (width - 1) * 4; shift >= 0; shift -= 4 {
			b.WriteByte(hexDigits[int(u>>shift)&0xF])
		}
	}
	return b.String()
}

func decode[U unit](text string, width int) ([]U, error) {
	out := make([]U, 0, len(text))
	for i := 0; i < len(text); {
		c := text[i]
		if c != Introducer {
			if !safe(c) {
				return nil, &SyntaxError{Offset: i, Err: ErrUnescaped}
			}
			out = append(out, U(c))
			i++
			continue
		}
		v, err := readEscape(text, i, width, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, U(v))
		i += 1 + width
	}
	return out, nil
}

// readEscape parses the escape starting at s[at], which must be the
// introducer. Offsets in returned errors are shifted by base.
func readEscape[S ~string | ~[]byte](s S, at, width, base int) (uint16, error) {
	var v uint16
	for k := 1; k <= width; k++ {
		j := at + k
		if j >= len(s) {
			return 0, &SyntaxError{Offset: base + at, Err: ErrTruncated}
		}
		d, ok := fromHex(s[j])
		if !ok {
			return 0, &SyntaxError{Offset: base + j, Err: ErrInvalidHex}
		}
		v = v<<4 | uint16(d)
	}
	if safe(v) {
		return 0, &SyntaxError{Offset: base + at, Err: ErrNonCanonical}
	}
	return v, nil
}

func fromHex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
