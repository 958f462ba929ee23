//go:build windows

package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoneSurrogateSurvives(t *testing.T) {
	units := []Unit{'C', ':', '\\', 0xD800, 'a'}
	text := Encode(units)
	assert.Equal(t, "C:%005C%D800a", text)

	got, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, units, got)
	assert.Equal(t, units, Extract(Reconstitute(got)))
}

func TestWideWidth(t *testing.T) {
	assert.Equal(t, 4, Width)
}
