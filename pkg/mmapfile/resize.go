package mmapfile

import "errors"

// Resize changes the length of the backing file and remaps it. Requires
// ReadWrite mode and newSize > 0. Acquired exclusively: no other read or
// write may be in progress.
//
// If the file truncate succeeds but the remap fails, the MappedFile is
// marked unusable and every subsequent call returns KindIO; the caller must
// Close and reopen. This mirrors the teacher's convention of failing loud
// rather than leaving a half-remapped file silently mapped over stale memory.
func (mf *MappedFile) Resize(newSize uint64) error {
	mf.mu.Lock()
	defer mf.mu.Unlock()

	if err := mf.checkUsable("Resize"); err != nil {
		return err
	}

	if mf.mode != ReadWrite {
		return invalidMode("Resize", mf.path, mf.mode)
	}

	if newSize == 0 {
		return resizeFailed("Resize", mf.path, errors.New("size must be > 0"))
	}

	if err := mf.mapping.unmap(); err != nil {
		mf.unusable = true

		return resizeFailed("Resize", mf.path, err)
	}

	if err := mf.file.Truncate(int64(newSize)); err != nil {
		mf.unusable = true

		return resizeFailed("Resize", mf.path, err)
	}

	m, err := mapFile(mf.file, newSize, ReadWrite, mf.hugePages)
	if err != nil {
		mf.unusable = true

		return resizeFailed("Resize", mf.path, err)
	}

	mf.mapping = m
	mf.cachedLen = newSize
	mf.bytesSinceFlush = 0
	mf.writesSinceFlush = 0

	return nil
}
