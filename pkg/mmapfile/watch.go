package mmapfile

// ChangeKind classifies a ChangeEvent reported to a watch callback.
type ChangeKind int

const (
	// ChangeModified means the backing file's content or length changed.
	ChangeModified ChangeKind = iota
	// ChangeMetadata means only metadata (mode, mtime) changed.
	ChangeMetadata
	// ChangeRemoved means the backing file was removed or renamed away.
	ChangeRemoved
)

// ChangeEvent reports an observed change to a MappedFile's backing file.
// Offset and Len are nil unless the underlying watcher can report the
// specific changed range; most backends (including the polling fallback)
// can only report that "something changed."
type ChangeEvent struct {
	Offset *uint64
	Len    *uint64
	Kind   ChangeKind
}

// watcher is the per-platform backend behind Watch. It delivers ChangeEvent
// values to the callback on its own goroutine until Close is called.
type watcher interface {
	Close() error
}

// WatchHandle is returned by Watch; Close stops the watch. Calling Close
// more than once is safe.
type WatchHandle struct {
	w watcher
}

// Close stops the underlying watch. Idempotent.
func (h *WatchHandle) Close() error {
	if h.w == nil {
		return nil
	}

	return h.w.Close()
}

// Watch starts observing the backing file for external changes and invokes
// callback asynchronously for each ChangeEvent. This is a best-effort,
// out-of-band notification mechanism: a MappedFile never polls for external
// truncation or removal as a guarantee (that is an explicit Non-goal), but
// the watch adapter may report one if the platform watcher fires.
//
// The returned handle must be closed to stop the watch and release its
// goroutine; it does not require the MappedFile itself to be Closed.
func (mf *MappedFile) Watch(callback func(ChangeEvent)) (*WatchHandle, error) {
	mf.mu.RLock()
	path := mf.path
	usableErr := mf.checkUsable("Watch")
	mf.mu.RUnlock()

	if usableErr != nil {
		return nil, usableErr
	}

	w, err := startWatcher(path, callback)
	if err != nil {
		return nil, watchFailed("Watch", path, err)
	}

	return &WatchHandle{w: w}, nil
}
