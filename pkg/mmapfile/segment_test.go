package mmapfile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewSegment_RejectsOutOfBounds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	require.NoError(t, mf.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	_, err = NewSegment(ro, 10, 10)
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

func Test_Segment_Bytes_ReflectsOwnerContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	require.NoError(t, mf.UpdateRegion(0, []byte("abcdefgh")))
	require.NoError(t, mf.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	seg, err := NewSegment(ro, 2, 4)
	require.NoError(t, err)

	b, err := seg.Bytes()
	require.NoError(t, err)
	require.Equal(t, "cdef", string(b))
}

func Test_SegmentMut_Write_UpdatesOwner(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	seg, err := NewSegmentMut(mf, 4, 8)
	require.NoError(t, err)

	require.NoError(t, seg.Write(0, []byte("wxyz")))

	buf := make([]byte, 4)
	require.NoError(t, mf.ReadInto(4, buf))
	require.Equal(t, "wxyz", string(buf))
}

func Test_SegmentMut_Write_RejectsOutOfSegmentBounds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	seg, err := NewSegmentMut(mf, 4, 4)
	require.NoError(t, err)

	err = seg.Write(2, []byte("abcd"))
	require.True(t, errors.Is(err, ErrOutOfBounds))
}
