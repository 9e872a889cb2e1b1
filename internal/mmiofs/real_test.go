package mmiofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Real_OpenFile_CreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")
	r := NewReal()

	f, err := r.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	info, err := r.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(0), info.Size())
}

func Test_Real_Truncate_ChangesSize(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")
	r := NewReal()

	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
	require.NoError(t, r.Truncate(path, 10))

	info, err := r.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(10), info.Size())
}

func Test_Real_Rename_MovesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	r := NewReal()
	require.NoError(t, r.Rename(src, dst))

	_, err := os.Stat(src)
	require.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "x", string(data))
}

func Test_Real_Remove_DeletesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := NewReal()
	require.NoError(t, r.Remove(path))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
