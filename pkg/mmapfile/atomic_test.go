package mmapfile

import (
	"encoding/binary"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AtomicU32_RejectsMisalignedOffset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	_, err = mf.AtomicU32(1)
	require.True(t, errors.Is(err, ErrMisaligned))
}

func Test_AtomicU32_StoreIsVisibleThroughReadInto(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	cell, err := mf.AtomicU32(0)
	require.NoError(t, err)

	cell.Store(0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), cell.Load())

	buf := make([]byte, 4)
	require.NoError(t, mf.ReadInto(0, buf))
	require.Equal(t, uint32(0xDEADBEEF), binary.NativeEndian.Uint32(buf))
}

func Test_AtomicU64_RejectsOutOfBounds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 8)
	require.NoError(t, err)
	defer mf.Close()

	_, err = mf.AtomicU64(8)
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

func Test_AtomicU32Slice_ReturnsContiguousCells(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	cells, err := mf.AtomicU32Slice(0, 4)
	require.NoError(t, err)
	require.Len(t, cells, 4)

	cells[3].Store(7)

	buf := make([]byte, 4)
	require.NoError(t, mf.ReadInto(12, buf))
	require.Equal(t, uint32(7), cells[3].Load())
	require.Equal(t, uint32(7), binary.NativeEndian.Uint32(buf))
}

func Test_AtomicU32Slice_RejectsCountThatOverflowsByteLength(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	// n*4 wraps a uint64 for n this large; must be rejected as out of
	// bounds rather than silently passing a wrapped, tiny "total" check.
	const n = 1<<62 + 1

	_, err = mf.AtomicU32Slice(0, n)
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

func Test_AtomicU32_ConcurrentAddFromFourGoroutines_NeverLosesAnUpdate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 4)
	require.NoError(t, err)
	defer mf.Close()

	cell, err := mf.AtomicU32(0)
	require.NoError(t, err)

	const goroutines = 4
	const perGoroutine = 10_000

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			for range perGoroutine {
				cell.Add(1)
			}
		}()
	}

	wg.Wait()

	require.Equal(t, uint32(goroutines*perGoroutine), cell.Load())
}
