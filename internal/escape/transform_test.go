package escape

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestByteEncoderMatchesEncodeBytes(t *testing.T) {
	in := []byte("/tmp/\xff\xfe/100%/\"quoted\"\n")

	got, _, err := transform.Bytes(NewByteEncoder(), in)
	require.NoError(t, err)
	assert.Equal(t, EncodeBytes(in), string(got))
}

func TestByteDecoderMatchesDecodeBytes(t *testing.T) {
	text := "/tmp/%FF%FE/100%25/%22quoted%22%0A"

	got, _, err := transform.String(NewByteDecoder(), text)
	require.NoError(t, err)

	want, err := DecodeBytes(text)
	require.NoError(t, err)
	assert.Equal(t, string(want), got)
}

func TestByteDecoderAcrossChunkBoundaries(t *testing.T) {
	text := "%00%FF/a%25b%80"
	want, err := DecodeBytes(text)
	require.NoError(t, err)

	// OneByteReader splits every escape across reads.
	r := transform.NewReader(iotest.OneByteReader(bytes.NewReader([]byte(text))), NewByteDecoder())
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestByteEncoderStream(t *testing.T) {
	in := bytes.Repeat([]byte{0x00, 'a', '%', 0xFF}, 4096)

	r := transform.NewReader(bytes.NewReader(in), NewByteEncoder())
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, EncodeBytes(in), string(got))
}

func TestByteDecoderSyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   error
		offset int
	}{
		{"truncated at end of stream", "/abc%F", ErrTruncated, 4},
		{"invalid hex", "/abc%FG", ErrInvalidHex, 6},
		{"unescaped", "/abc\n", ErrUnescaped, 4},
		{"non canonical", "/abc%2F", ErrNonCanonical, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := transform.NewReader(iotest.OneByteReader(bytes.NewReader([]byte(tt.input))), NewByteDecoder())
			_, err := io.ReadAll(r)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var synErr *SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.Equal(t, tt.offset, synErr.Offset)
		})
	}
}

func TestByteDecoderReset(t *testing.T) {
	dec := NewByteDecoder()

	_, _, err := transform.String(dec, "/ok")
	require.NoError(t, err)

	// transform.String resets the transformer, so offsets restart at zero.
	_, _, err = transform.String(dec, "\n")
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 0, synErr.Offset)
}
