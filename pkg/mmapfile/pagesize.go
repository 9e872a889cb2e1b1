package mmapfile

import "sync"

var (
	pageSizeOnce sync.Once
	cachedPageSz uint64
)

// pageSize returns the OS page size, queried once and cached for the
// process lifetime.
func pageSize() uint64 {
	pageSizeOnce.Do(func() {
		cachedPageSz = queryPageSize()
	})

	return cachedPageSz
}
