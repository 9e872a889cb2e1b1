//go:build !linux

package mmapfile

// startWatcher is the portable fallback backend: it polls os.Stat on an
// interval and reports ChangeModified when the size differs from the last
// observation, ChangeMetadata when only the mtime differs, and ChangeRemoved
// when the file disappears. Darwin and
// Windows use this backend in this revision; only Linux gets the
// inotify-backed watcher.
func startWatcher(path string, callback func(ChangeEvent)) (watcher, error) {
	return newPollWatcher(path, callback)
}
