// Package testutil holds filesystem fixtures and deterministic generators
// shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/pathabs/internal/pathabs"
)

// NonUTF8Name is a file name whose bytes are not valid UTF-8.
const NonUTF8Name = "bad-\xff\xfe.bin"

// TempAbs returns a fresh temporary directory as a Path.
func TempAbs(t *testing.T) pathabs.Path {
	t.Helper()
	dir, err := pathabs.New(t.TempDir())
	require.NoError(t, err)
	return dir
}

// ScenarioTree creates foo.txt, bar and foo/bar under a fresh temporary
// directory and returns the directory plus the three paths in that order.
func ScenarioTree(t *testing.T) (pathabs.Path, []pathabs.Path) {
	t.Helper()
	dir := TempAbs(t)

	foo, err := pathabs.CreateFile(dir.Join("foo.txt"))
	require.NoError(t, err)
	bar, err := pathabs.CreateDir(dir.Join("bar"))
	require.NoError(t, err)
	fooBar, err := pathabs.CreateDirAll(dir.Join("foo", "bar"))
	require.NoError(t, err)

	return dir, []pathabs.Path{foo, bar, fooBar}
}

// NonUTF8File creates NonUTF8Name inside dir. The test is skipped on
// filesystems that only accept UTF-8 names.
func NonUTF8File(t *testing.T, dir pathabs.Path) pathabs.Path {
	t.Helper()
	raw := filepath.Join(dir.String(), NonUTF8Name)
	if err := os.WriteFile(raw, nil, 0o644); err != nil {
		t.Skipf("filesystem rejects non-UTF-8 names: %v", err)
	}
	p, err := pathabs.New(raw)
	require.NoError(t, err)
	return p
}
