package filesystem_test

import (
	"testing"

	"github.com/arthur-debert/scfldr/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_WriteAndRead(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	err := fs.MkdirAll("project/src", 0755)
	require.NoError(t, err)

	err = fs.WriteFile("project/src/main.go", []byte("package main\n"), 0644)
	require.NoError(t, err)

	data, err := fs.ReadFile("project/src/main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(data))

	info, err := fs.Stat("project/src")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAferoFS_AppendFile(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.WriteFile("notes.txt", []byte("one\n"), 0644))
	require.NoError(t, fs.AppendFile("notes.txt", []byte("two\n"), 0644))

	data, err := fs.ReadFile("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestAferoFS_AppendFileCreatesMissing(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.AppendFile("fresh.txt", []byte("hello"), 0644))

	data, err := fs.ReadFile("fresh.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestAferoFS_ReadFileOnDirectory(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("adir", 0755))

	_, err := fs.ReadFile("adir")
	assert.Error(t, err)
}

func TestAferoFS_ReadDir(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("root/sub", 0755))
	require.NoError(t, fs.WriteFile("root/a.txt", []byte("a"), 0644))

	entries, err := fs.ReadDir("root")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestOSFS_RoundTrip(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	require.NoError(t, fs.MkdirAll(dir+"/nested/deep", 0755))
	require.NoError(t, fs.WriteFile(dir+"/nested/deep/f.txt", []byte("x"), 0644))
	require.NoError(t, fs.AppendFile(dir+"/nested/deep/f.txt", []byte("y"), 0644))

	data, err := fs.ReadFile(dir + "/nested/deep/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "xy", string(data))
}
