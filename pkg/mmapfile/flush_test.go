package mmapfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Flush_ResetsAccumulators(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 64)
	require.NoError(t, err)
	defer mf.Close()

	require.NoError(t, mf.UpdateRegion(0, []byte("abc")))
	require.Equal(t, uint64(3), mf.bytesSinceFlush)

	require.NoError(t, mf.Flush())
	require.Equal(t, uint64(0), mf.bytesSinceFlush)
	require.Equal(t, uint64(0), mf.writesSinceFlush)
}

func Test_Flush_NoopOnReadOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 64)
	require.NoError(t, err)
	require.NoError(t, mf.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	require.NoError(t, ro.Flush())
}

func Test_FlushRange_ZeroLengthIsNoop(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 64)
	require.NoError(t, err)
	defer mf.Close()

	require.NoError(t, mf.FlushRange(0, 0))
}

func Test_AlwaysFlush_FlushesOnEveryWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := NewBuilder(path).Mode(ReadWrite).Size(64).FlushPolicy(AlwaysFlush()).Build()
	require.NoError(t, err)
	defer mf.Close()

	require.NoError(t, mf.UpdateRegion(0, []byte("x")))
	require.Equal(t, uint64(0), mf.bytesSinceFlush)
}
