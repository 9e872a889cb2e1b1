package mmapfile

// Flush synchronizes the mapping to the backing file and resets the flush
// accumulators. No-op for ReadOnly or CopyOnWrite mode.
func (mf *MappedFile) Flush() error {
	mf.mu.Lock()
	defer mf.mu.Unlock()

	if err := mf.checkUsable("Flush"); err != nil {
		return err
	}

	if mf.mode != ReadWrite {
		return nil
	}

	return mf.flushLocked(0, mf.cachedLen)
}

// FlushRange synchronizes [offset, offset+length) to disk. Zero-length is a
// no-op. No-op for ReadOnly or CopyOnWrite mode.
func (mf *MappedFile) FlushRange(offset, length uint64) error {
	mf.mu.Lock()
	defer mf.mu.Unlock()

	if err := mf.checkUsable("FlushRange"); err != nil {
		return err
	}

	if mf.mode != ReadWrite {
		return nil
	}

	if length == 0 {
		return nil
	}

	if err := ensureInBounds("FlushRange", mf.path, offset, length, mf.cachedLen); err != nil {
		return err
	}

	return mf.flushLocked(offset, length)
}

// flushLocked performs the actual sync and resets the accumulators. Callers
// must hold mf.mu for writing.
func (mf *MappedFile) flushLocked(offset, length uint64) error {
	if length == 0 {
		mf.bytesSinceFlush = 0
		mf.writesSinceFlush = 0

		return nil
	}

	if err := mf.mapping.syncRange(offset, length); err != nil {
		return flushFailed("Flush", mf.path, err)
	}

	mf.bytesSinceFlush = 0
	mf.writesSinceFlush = 0

	return nil
}
