package pathabs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pathabs/internal/pathabs"
	"github.com/roach88/pathabs/internal/testutil"
)

func TestNewRejectsInvalidInput(t *testing.T) {
	dir := testutil.TempAbs(t)

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"empty", "", pathabs.ErrInvalidPath},
		{"nul", dir.String() + "/a\x00b", pathabs.ErrInvalidPath},
		{"relative", "foo/bar", pathabs.ErrNotAbsolute},
		{"dot relative", "./foo", pathabs.ErrNotAbsolute},
		{"missing", dir.Join("missing"), pathabs.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pathabs.New(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, p.IsZero())
		})
	}
}

func TestNewCleansPath(t *testing.T) {
	dir := testutil.TempAbs(t)
	require.NoError(t, os.Mkdir(dir.Join("sub"), 0o755))

	p, err := pathabs.New(dir.String() + string(filepath.Separator) + "sub" + string(filepath.Separator) + ".")
	require.NoError(t, err)
	assert.Equal(t, dir.Join("sub"), p.String())
}

func TestAbsResolvesAgainstWorkingDirectory(t *testing.T) {
	dir := testutil.TempAbs(t)
	t.Chdir(dir.String())
	require.NoError(t, os.WriteFile("rel.txt", nil, 0o644))

	p, err := pathabs.Abs("rel.txt")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p.String()))
	assert.Equal(t, "rel.txt", filepath.Base(p.String()))

	_, err = pathabs.Abs("")
	assert.ErrorIs(t, err, pathabs.ErrInvalidPath)
}

func TestCreateHelpers(t *testing.T) {
	dir, paths := testutil.ScenarioTree(t)
	require.Len(t, paths, 3)

	info, err := os.Stat(paths[0].String())
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	for _, p := range paths[1:] {
		info, err := os.Stat(p.String())
		require.NoError(t, err)
		assert.True(t, info.IsDir(), p.String())
	}

	assert.Equal(t, dir.Join("foo", "bar"), paths[2].String())
}

func TestCreateDirFailsWhenPresent(t *testing.T) {
	dir := testutil.TempAbs(t)
	_, err := pathabs.CreateDir(dir.Join("x"))
	require.NoError(t, err)

	_, err = pathabs.CreateDir(dir.Join("x"))
	assert.Error(t, err)
}

func TestCreateRequiresAbsolute(t *testing.T) {
	_, err := pathabs.CreateFile("rel.txt")
	assert.ErrorIs(t, err, pathabs.ErrNotAbsolute)
	_, err = pathabs.CreateDir("rel")
	assert.ErrorIs(t, err, pathabs.ErrNotAbsolute)
	_, err = pathabs.CreateDirAll("rel/a")
	assert.ErrorIs(t, err, pathabs.ErrNotAbsolute)
}

func TestZeroPath(t *testing.T) {
	var p pathabs.Path
	assert.True(t, p.IsZero())
	assert.Equal(t, "", p.String())
}
