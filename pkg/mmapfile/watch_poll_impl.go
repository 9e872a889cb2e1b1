package mmapfile

import (
	"os"
	"sync"
	"time"
)

// pollInterval is the fixed interval used by the polling watcher backend.
const pollInterval = 200 * time.Millisecond

// pollWatcher polls os.Stat on a ticker and diffs size/mtime against the
// last observation.
type pollWatcher struct {
	done     chan struct{}
	closeErr error
	once     sync.Once
}

func newPollWatcher(path string, callback func(ChangeEvent)) (*pollWatcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	pw := &pollWatcher{done: make(chan struct{})}

	lastSize := info.Size()
	lastMod := info.ModTime()

	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-pw.done:
				return
			case <-ticker.C:
				info, err := os.Stat(path)
				if err != nil {
					callback(ChangeEvent{Kind: ChangeRemoved})
					lastSize, lastMod = 0, time.Time{}

					continue
				}

				switch {
				case info.Size() != lastSize:
					callback(ChangeEvent{Kind: ChangeModified})
				case !info.ModTime().Equal(lastMod):
					callback(ChangeEvent{Kind: ChangeMetadata})
				}

				lastSize = info.Size()
				lastMod = info.ModTime()
			}
		}
	}()

	return pw, nil
}

func (pw *pollWatcher) Close() error {
	pw.once.Do(func() {
		close(pw.done)
	})

	return pw.closeErr
}
