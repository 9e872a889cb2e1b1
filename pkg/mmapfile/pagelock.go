package mmapfile

// Lock pins [offset, offset+length) in physical memory, preventing it from
// being paged out. Failures surface as KindLockFailed; on platforms or under
// privilege levels that forbid it (commonly: no CAP_IPC_LOCK / RLIMIT_MEMLOCK
// headroom), that is the expected outcome.
func (mf *MappedFile) Lock(offset, length uint64) error {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("Lock"); err != nil {
		return err
	}

	if err := ensureInBounds("Lock", mf.path, offset, length, mf.cachedLen); err != nil {
		return err
	}

	if length == 0 {
		return nil
	}

	if err := mf.mapping.lockRange(offset, length); err != nil {
		return lockFailed("Lock", mf.path, err)
	}

	return nil
}

// Unlock reverses a prior Lock over the same range.
func (mf *MappedFile) Unlock(offset, length uint64) error {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("Unlock"); err != nil {
		return err
	}

	if err := ensureInBounds("Unlock", mf.path, offset, length, mf.cachedLen); err != nil {
		return err
	}

	if length == 0 {
		return nil
	}

	if err := mf.mapping.unlockRange(offset, length); err != nil {
		return unlockFailed("Unlock", mf.path, err)
	}

	return nil
}

// LockAll pins the entire mapping in physical memory.
func (mf *MappedFile) LockAll() error {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("LockAll"); err != nil {
		return err
	}

	if err := mf.mapping.lockAll(); err != nil {
		return lockFailed("LockAll", mf.path, err)
	}

	return nil
}

// UnlockAll reverses a prior LockAll.
func (mf *MappedFile) UnlockAll() error {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("UnlockAll"); err != nil {
		return err
	}

	if err := mf.mapping.unlockAll(); err != nil {
		return unlockFailed("UnlockAll", mf.path, err)
	}

	return nil
}
