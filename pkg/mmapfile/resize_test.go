package mmapfile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Resize_GrowsAndPreservesPrefix(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	require.NoError(t, mf.UpdateRegion(0, []byte("hello")))
	require.NoError(t, mf.Resize(32))
	require.Equal(t, uint64(32), mf.Len())

	buf := make([]byte, 5)
	require.NoError(t, mf.ReadInto(0, buf))
	require.Equal(t, "hello", string(buf))
}

func Test_Resize_RejectsZeroSize(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	err = mf.Resize(0)
	require.True(t, errors.Is(err, ErrResizeFailed))
}

func Test_Resize_RequiresReadWriteMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	require.NoError(t, mf.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	err = ro.Resize(32)
	require.True(t, errors.Is(err, ErrInvalidMode))
}
