//go:build linux

package mmapfile

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// inotifyWatcher backs Watch on Linux via inotify(7), grounded in the
// teacher's direct-syscall style for platform primitives (pkg/slotcache's
// raw use of unix.Flock/unix.Mmap).
type inotifyWatcher struct {
	fd       int
	wd       int
	done     chan struct{}
	once     sync.Once
	closeErr error
}

const watchMask = unix.IN_MODIFY | unix.IN_ATTRIB | unix.IN_CLOSE_WRITE |
	unix.IN_DELETE_SELF | unix.IN_MOVE_SELF

func startWatcher(path string, callback func(ChangeEvent)) (watcher, error) {
	fd, err := unix.InotifyInit1(unix.IN_CLOEXEC)
	if err != nil {
		return nil, err
	}

	wd, err := unix.InotifyAddWatch(fd, path, watchMask)
	if err != nil {
		_ = unix.Close(fd)

		return nil, err
	}

	iw := &inotifyWatcher{fd: fd, wd: wd, done: make(chan struct{})}

	go iw.loop(callback)

	return iw, nil
}

func (iw *inotifyWatcher) loop(callback func(ChangeEvent)) {
	buf := make([]byte, unix.SizeofInotifyEvent+unix.PathMax+1)

	for {
		select {
		case <-iw.done:
			return
		default:
		}

		n, err := unix.Read(iw.fd, buf)
		if err != nil || n < unix.SizeofInotifyEvent {
			select {
			case <-iw.done:
				return
			default:
				continue
			}
		}

		offset := 0
		for offset+unix.SizeofInotifyEvent <= n {
			raw := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
			mask := raw.Mask
			offset += unix.SizeofInotifyEvent + int(raw.Len)

			switch {
			case mask&(unix.IN_DELETE_SELF|unix.IN_MOVE_SELF) != 0:
				callback(ChangeEvent{Kind: ChangeRemoved})
			case mask&unix.IN_ATTRIB != 0:
				callback(ChangeEvent{Kind: ChangeMetadata})
			case mask&(unix.IN_MODIFY|unix.IN_CLOSE_WRITE) != 0:
				callback(ChangeEvent{Kind: ChangeModified})
			}
		}
	}
}

func (iw *inotifyWatcher) Close() error {
	iw.once.Do(func() {
		close(iw.done)
		_, _ = unix.InotifyRmWatch(iw.fd, uint32(iw.wd))
		iw.closeErr = unix.Close(iw.fd)
	})

	return iw.closeErr
}
