package mmapfile

import (
	"sync/atomic"
	"unsafe"
)

// AtomicU32 returns an *atomic.Uint32 overlaying the mapping bytes at
// offset, bypassing the mu exclusion entirely: callers coordinate among
// themselves using the returned atomic's own Load/Store/CAS/Add methods.
// offset must be 4-byte aligned and within bounds, both checked once at
// construction; the returned pointer remains valid until the next Resize or
// Close of mf.
func (mf *MappedFile) AtomicU32(offset uint64) (*atomic.Uint32, error) {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("AtomicU32"); err != nil {
		return nil, err
	}

	if !isAligned(offset, 4) {
		return nil, misaligned("AtomicU32", mf.path, offset, 4)
	}

	if err := ensureInBounds("AtomicU32", mf.path, offset, 4, mf.cachedLen); err != nil {
		return nil, err
	}

	b := mf.mapping.bytes()[offset : offset+4]

	return (*atomic.Uint32)(unsafe.Pointer(&b[0])), nil
}

// AtomicU64 returns an *atomic.Uint64 overlaying the mapping bytes at
// offset. offset must be 8-byte aligned and within bounds.
func (mf *MappedFile) AtomicU64(offset uint64) (*atomic.Uint64, error) {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("AtomicU64"); err != nil {
		return nil, err
	}

	if !isAligned(offset, 8) {
		return nil, misaligned("AtomicU64", mf.path, offset, 8)
	}

	if err := ensureInBounds("AtomicU64", mf.path, offset, 8, mf.cachedLen); err != nil {
		return nil, err
	}

	b := mf.mapping.bytes()[offset : offset+8]

	return (*atomic.Uint64)(unsafe.Pointer(&b[0])), nil
}

// AtomicU32Slice returns n contiguous *atomic.Uint32 cells starting at
// offset, each 4-byte aligned. offset must itself be 4-byte aligned.
func (mf *MappedFile) AtomicU32Slice(offset, n uint64) ([]*atomic.Uint32, error) {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("AtomicU32Slice"); err != nil {
		return nil, err
	}

	if !isAligned(offset, 4) {
		return nil, misaligned("AtomicU32Slice", mf.path, offset, 4)
	}

	total, err := checkedMul64("AtomicU32Slice", mf.path, n, 4)
	if err != nil {
		return nil, err
	}

	if err := ensureInBounds("AtomicU32Slice", mf.path, offset, total, mf.cachedLen); err != nil {
		return nil, err
	}

	b := mf.mapping.bytes()[offset : offset+total]

	out := make([]*atomic.Uint32, n)
	for i := uint64(0); i < n; i++ {
		out[i] = (*atomic.Uint32)(unsafe.Pointer(&b[i*4]))
	}

	return out, nil
}
