package escape

import "golang.org/x/text/transform"

// NewByteEncoder returns a streaming form of EncodeBytes.
func NewByteEncoder() transform.Transformer {
	return byteEncoder{}
}

// NewByteDecoder returns a streaming form of DecodeBytes. Offsets in syntax
// errors count from the start of the stream, or from the last Reset.
func NewByteDecoder() transform.Transformer {
	return &byteDecoder{}
}

type byteEncoder struct {
	transform.NopResetter
}

func (byteEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if safe(c) {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if nDst+1+ByteWidth > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = Introducer
		dst[nDst+1] = hexDigits[c>>4]
		dst[nDst+2] = hexDigits[c&0xF]
		nDst += 1 + ByteWidth
		nSrc++
	}
	return nDst, nSrc, nil
}

type byteDecoder struct {
	pos int
}

func (d *byteDecoder) Reset() {
	d.pos = 0
}

func (d *byteDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() { d.pos += nSrc }()

	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := src[nSrc]
		if c != Introducer {
			if !safe(c) {
				return nDst, nSrc, &SyntaxError{Offset: d.pos + nSrc, Err: ErrUnescaped}
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if len(src)-nSrc < 1+ByteWidth && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		v, err := readEscape(src, nSrc, ByteWidth, d.pos)
		if err != nil {
			return nDst, nSrc, err
		}
		dst[nDst] = byte(v)
		nDst++
		nSrc += 1 + ByteWidth
	}
	return nDst, nSrc, nil
}
