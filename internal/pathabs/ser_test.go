package pathabs_test

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pathabs/internal/escape"
	"github.com/roach88/pathabs/internal/native"
	"github.com/roach88/pathabs/internal/pathabs"
	"github.com/roach88/pathabs/internal/testutil"
)

// sep is the escaped path separator for the build target.
var sep = native.Encode(native.Extract(string(filepath.Separator)))

func TestSerializeDeserialize(t *testing.T) {
	dir := testutil.TempAbs(t)

	p, err := pathabs.CreateFile(dir.Join("foo.txt"))
	require.NoError(t, err)

	text := pathabs.Serialize(p)
	assert.Equal(t, pathabs.Serialize(dir)+sep+"foo.txt", text)

	got, err := pathabs.Deserialize(text)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestJSONArrayScenario(t *testing.T) {
	dir, paths := testutil.ScenarioTree(t)

	data, err := json.Marshal(paths)
	require.NoError(t, err)

	base := pathabs.Serialize(dir)
	expected := fmt.Sprintf(`["%[1]s%[2]sfoo.txt","%[1]s%[2]sbar","%[1]s%[2]sfoo%[2]sbar"]`, base, sep)
	assert.Equal(t, expected, string(data))

	var decoded []pathabs.Path
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, paths, decoded)
}

func TestJSONStructField(t *testing.T) {
	_, paths := testutil.ScenarioTree(t)

	type record struct {
		Name string       `json:"name"`
		Path pathabs.Path `json:"path"`
	}
	in := record{Name: "foo", Path: paths[0]}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestDeserializeSyntaxError(t *testing.T) {
	p, err := pathabs.Deserialize("/tmp/%")
	require.Error(t, err)
	assert.True(t, p.IsZero())

	var decErr *pathabs.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "/tmp/%", decErr.Text)

	var synErr *escape.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.ErrorIs(t, err, escape.ErrTruncated)
}

func TestDeserializeValidationErrors(t *testing.T) {
	dir := testutil.TempAbs(t)

	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", pathabs.ErrInvalidPath},
		{"relative", "foo/bar.txt", pathabs.ErrNotAbsolute},
		{"missing", pathabs.Serialize(dir) + sep + "missing", pathabs.ErrNotFound},
		{"escaped nul", pathabs.Serialize(dir) + sep + native.Encode([]native.Unit{0}), pathabs.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pathabs.Deserialize(tt.text)
			require.Error(t, err)
			assert.True(t, p.IsZero())
			assert.ErrorIs(t, err, tt.want)

			var decErr *pathabs.DecodeError
			assert.ErrorAs(t, err, &decErr)
		})
	}
}

func TestUnmarshalJSONRejectsNonStrings(t *testing.T) {
	for _, data := range []string{`null`, `42`, `["/tmp"]`, `{"path":"/tmp"}`, `"unterminated`} {
		var p pathabs.Path
		err := p.UnmarshalJSON([]byte(data))
		require.Error(t, err, data)
		assert.True(t, p.IsZero())

		var decErr *pathabs.DecodeError
		assert.ErrorAs(t, err, &decErr, data)
	}
}

func TestUnmarshalJSONFailFastInArray(t *testing.T) {
	dir := testutil.TempAbs(t)
	good := pathabs.Serialize(dir)
	data := fmt.Sprintf(`[%q,%q]`, good, good+sep+"missing")

	var out []pathabs.Path
	err := json.Unmarshal([]byte(data), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, pathabs.ErrNotFound)
}

func TestUnmarshalJSONAcceptsForeignStringEscapes(t *testing.T) {
	dir := testutil.TempAbs(t)

	// Another producer may escape '/' as \/; the JSON layer undoes it first.
	quoted := `"` + strings.ReplaceAll(pathabs.Serialize(dir), "/", `\/`) + `"`

	var p pathabs.Path
	require.NoError(t, json.Unmarshal([]byte(quoted), &p))
	assert.Equal(t, dir, p)
}

func TestTextMarshaler(t *testing.T) {
	dir := testutil.TempAbs(t)

	text, err := dir.MarshalText()
	require.NoError(t, err)

	var p pathabs.Path
	require.NoError(t, p.UnmarshalText(text))
	assert.Equal(t, dir, p)

	err = p.UnmarshalText([]byte("relative"))
	assert.ErrorIs(t, err, pathabs.ErrNotAbsolute)
	assert.Equal(t, dir, p, "failed decode must not modify the target")
}

func TestSerializeConcurrent(t *testing.T) {
	_, paths := testutil.ScenarioTree(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range paths {
				got, err := pathabs.Deserialize(pathabs.Serialize(p))
				assert.NoError(t, err)
				assert.Equal(t, p, got)
			}
		}()
	}
	wg.Wait()
}
