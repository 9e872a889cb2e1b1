package mmapfile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Advise_ZeroLengthIsNoop(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	require.NoError(t, mf.Advise(0, 0, AdviseSequential))
}

func Test_Advise_AcceptsFullRange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 4096)
	require.NoError(t, err)
	defer mf.Close()

	require.NoError(t, mf.Advise(0, mf.Len(), AdviseWillNeed))
}

func Test_Advise_RejectsOutOfBounds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	err = mf.Advise(10, 10, AdviseRandom)
	require.Error(t, err)
}

func Test_Advise_AfterUnusable_ReturnsIOErrorNotAdviceFailed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	// Simulate the state a failed Resize leaves behind (resize.go) without
	// depending on actually forcing an OS-level remap failure.
	mf.unusable = true

	err = mf.Advise(0, mf.Len(), AdviseWillNeed)
	require.True(t, errors.Is(err, ErrIO))
	require.False(t, errors.Is(err, ErrAdviceFailed))
}
