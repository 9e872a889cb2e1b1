package mmapfile

import "sync"

// UpdateRegion copies data into the mapping at offset under an exclusive
// acquisition, then updates the flush accumulators, then consults the
// flush policy to possibly flush. Requires ReadWrite mode.
func (mf *MappedFile) UpdateRegion(offset uint64, data []byte) error {
	mf.mu.Lock()
	defer mf.mu.Unlock()

	if err := mf.checkUsable("UpdateRegion"); err != nil {
		return err
	}

	if mf.mode != ReadWrite {
		return invalidMode("UpdateRegion", mf.path, mf.mode)
	}

	length := uint64(len(data))

	start, end, err := sliceRange("UpdateRegion", mf.path, offset, length, mf.cachedLen)
	if err != nil {
		return err
	}

	copy(mf.mapping.bytes()[start:end], data)

	mf.bytesSinceFlush += length
	mf.writesSinceFlush++

	if mf.policy.shouldFlush(mf.bytesSinceFlush, mf.writesSinceFlush) {
		if err := mf.flushLocked(0, mf.cachedLen); err != nil {
			return err
		}
	}

	return nil
}

// MutableView is a scoped exclusive guard over a byte range of a
// MappedFile, returned by [MappedFile.AsSliceMut]. While the guard is
// alive, all other mutating and flushing operations on the same MappedFile
// block. The guard must be released (Release) before calling Flush on the
// same MappedFile from the same goroutine — otherwise the caller
// self-deadlocks; this is a documented contract, not enforced dynamically.
type MutableView struct {
	mf       *MappedFile
	start    uint64
	end      uint64
	released bool
	once     sync.Once
}

// Bytes returns the mutable byte view [offset, offset+len) this guard protects.
func (v *MutableView) Bytes() []byte {
	return v.mf.mapping.bytes()[v.start:v.end]
}

// Release ends the exclusive acquisition. Idempotent; safe to call once via
// defer even if the caller already released it explicitly.
func (v *MutableView) Release() {
	v.once.Do(func() {
		v.released = true
		v.mf.mu.Unlock()
	})
}

// AsSliceMut returns a scoped exclusive guard exposing a mutable byte view
// of [offset, offset+length). Requires ReadWrite mode. The guard must be
// released with Release.
func (mf *MappedFile) AsSliceMut(offset, length uint64) (*MutableView, error) {
	mf.mu.Lock()

	if err := mf.checkUsable("AsSliceMut"); err != nil {
		mf.mu.Unlock()

		return nil, err
	}

	if mf.mode != ReadWrite {
		mf.mu.Unlock()

		return nil, invalidMode("AsSliceMut", mf.path, mf.mode)
	}

	start, end, err := sliceRange("AsSliceMut", mf.path, offset, length, mf.cachedLen)
	if err != nil {
		mf.mu.Unlock()

		return nil, err
	}

	return &MutableView{mf: mf, start: start, end: end}, nil
}
