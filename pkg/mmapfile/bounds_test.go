package mmapfile

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_EnsureInBounds_Accepts_Range_Within_Total(t *testing.T) {
	t.Parallel()

	err := ensureInBounds("Test", "f", 90, 10, 100)
	require.NoError(t, err)
}

func Test_EnsureInBounds_Rejects_Range_Exceeding_Total(t *testing.T) {
	t.Parallel()

	err := ensureInBounds("Test", "f", 90, 20, 100)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfBounds))

	var mErr *Error
	require.True(t, errors.As(err, &mErr))
	require.Equal(t, uint64(90), mErr.Offset)
	require.Equal(t, uint64(20), mErr.Len)
	require.Equal(t, uint64(100), mErr.Total)
}

func Test_EnsureInBounds_Treats_Overflow_As_OutOfBounds(t *testing.T) {
	t.Parallel()

	err := ensureInBounds("Test", "f", math.MaxUint64-1, 10, math.MaxUint64)
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

func Test_SliceRange_Returns_Start_And_End(t *testing.T) {
	t.Parallel()

	start, end, err := sliceRange("Test", "f", 10, 5, 100)
	require.NoError(t, err)
	require.Equal(t, uint64(10), start)
	require.Equal(t, uint64(15), end)
}

func Test_AlignUp_PowerOfTwo_FastPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(0), alignUp(0, 8))
	require.Equal(t, uint64(8), alignUp(1, 8))
	require.Equal(t, uint64(8), alignUp(8, 8))
	require.Equal(t, uint64(16), alignUp(9, 8))
}

func Test_AlignUp_NonPowerOfTwo(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(0), alignUp(0, 3))
	require.Equal(t, uint64(3), alignUp(1, 3))
	require.Equal(t, uint64(6), alignUp(4, 3))
}

func Test_AlignUp_RejectsZeroAlignment(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { alignUp(1, 0) })
}

func Test_IsAligned(t *testing.T) {
	t.Parallel()

	require.True(t, isAligned(0, 4))
	require.True(t, isAligned(8, 4))
	require.False(t, isAligned(6, 4))
}
