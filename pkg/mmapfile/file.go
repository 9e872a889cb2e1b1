package mmapfile

import (
	"errors"
	"os"
	"sync"
)

// errClosed marks operations attempted after Close.
var errClosed = errors.New("mmapfile: file is closed")

// MappedFile is a memory-mapped view of a backing file. It owns the OS
// mapping, the backing file handle, a cached length used for all bounds
// checks, and a flush policy.
//
// A MappedFile must be obtained via one of the package-level constructors
// (CreateReadWrite, OpenReadOnly, OpenReadWrite, OpenCopyOnWrite) or via
// [Builder.Build]; the zero value is not usable. Call Close when done; the
// mapping is released before the file handle is closed.
//
// MappedFile is safe for concurrent use: many readers may proceed
// concurrently, but mutation (UpdateRegion, AsSliceMut's guard lifetime,
// Resize, Flush, FlushRange) is serialized against readers and against
// other mutators by mu.
type MappedFile struct {
	_ [0]func() // makes MappedFile non-comparable

	mu sync.RWMutex

	path string
	mode Mode
	file *os.File

	mapping   osMapping
	cachedLen uint64

	policy           FlushPolicy
	bytesSinceFlush  uint64
	writesSinceFlush uint64

	hugePages bool
	closed    bool

	// unusable is set when a resize fails mid-remap (spec §7): the
	// MappedFile is permanently broken and every further call returns
	// KindIO until Close.
	unusable bool
}

// CreateReadWrite creates or truncates the file at path to size bytes,
// opens it read-write, and maps the full length. Fails if size == 0.
func CreateReadWrite(path string, size uint64) (*MappedFile, error) {
	return createReadWrite(path, size, ManualFlush(), false)
}

// OpenReadOnly opens the file at path and maps it read-only.
func OpenReadOnly(path string) (*MappedFile, error) {
	return openReadOnly(path, false)
}

// OpenReadWrite opens the file at path read-write. Fails if the file length is zero.
func OpenReadWrite(path string) (*MappedFile, error) {
	return openReadWrite(path, ManualFlush(), false)
}

// OpenCopyOnWrite opens the file at path read-only on disk and maps it
// privately; local writes (when exposed) never reach disk.
func OpenCopyOnWrite(path string) (*MappedFile, error) {
	return openCopyOnWrite(path, false)
}

func createReadWrite(path string, size uint64, policy FlushPolicy, hugePages bool) (*MappedFile, error) {
	if size == 0 {
		return nil, resizeFailed("CreateReadWrite", path, errors.New("size must be > 0"))
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, ioErr("CreateReadWrite", path, err)
	}

	if truncErr := f.Truncate(int64(size)); truncErr != nil {
		_ = f.Close()

		return nil, resizeFailed("CreateReadWrite", path, truncErr)
	}

	m, err := mapFile(f, size, ReadWrite, hugePages)
	if err != nil {
		_ = f.Close()

		return nil, ioErr("CreateReadWrite", path, err)
	}

	return &MappedFile{
		path:      path,
		mode:      ReadWrite,
		file:      f,
		mapping:   m,
		cachedLen: size,
		policy:    policy,
		hugePages: hugePages,
	}, nil
}

func openReadOnly(path string, hugePages bool) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr("OpenReadOnly", path, err)
	}

	size, err := fileSize(f)
	if err != nil {
		_ = f.Close()

		return nil, ioErr("OpenReadOnly", path, err)
	}

	if size == 0 {
		_ = f.Close()

		return nil, resizeFailed("OpenReadOnly", path, errors.New("zero-length mappings are not representable"))
	}

	m, err := mapFile(f, size, ReadOnly, hugePages)
	if err != nil {
		_ = f.Close()

		return nil, ioErr("OpenReadOnly", path, err)
	}

	return &MappedFile{
		path:      path,
		mode:      ReadOnly,
		file:      f,
		mapping:   m,
		cachedLen: size,
		policy:    ManualFlush(),
		hugePages: hugePages,
	}, nil
}

func openReadWrite(path string, policy FlushPolicy, hugePages bool) (*MappedFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, ioErr("OpenReadWrite", path, err)
	}

	size, err := fileSize(f)
	if err != nil {
		_ = f.Close()

		return nil, ioErr("OpenReadWrite", path, err)
	}

	if size == 0 {
		_ = f.Close()

		return nil, resizeFailed("OpenReadWrite", path, errors.New("file length is zero"))
	}

	m, err := mapFile(f, size, ReadWrite, hugePages)
	if err != nil {
		_ = f.Close()

		return nil, ioErr("OpenReadWrite", path, err)
	}

	return &MappedFile{
		path:      path,
		mode:      ReadWrite,
		file:      f,
		mapping:   m,
		cachedLen: size,
		policy:    policy,
		hugePages: hugePages,
	}, nil
}

func openCopyOnWrite(path string, hugePages bool) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr("OpenCopyOnWrite", path, err)
	}

	size, err := fileSize(f)
	if err != nil {
		_ = f.Close()

		return nil, ioErr("OpenCopyOnWrite", path, err)
	}

	if size == 0 {
		_ = f.Close()

		return nil, resizeFailed("OpenCopyOnWrite", path, errors.New("zero-length mappings are not representable"))
	}

	m, err := mapFile(f, size, CopyOnWrite, hugePages)
	if err != nil {
		_ = f.Close()

		return nil, ioErr("OpenCopyOnWrite", path, err)
	}

	return &MappedFile{
		path:      path,
		mode:      CopyOnWrite,
		file:      f,
		mapping:   m,
		cachedLen: size,
		policy:    ManualFlush(),
		hugePages: hugePages,
	}, nil
}

func fileSize(f *os.File) (uint64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	return uint64(info.Size()), nil
}

// Len returns the cached length in O(1).
func (mf *MappedFile) Len() uint64 {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	return mf.cachedLen
}

// IsEmpty reports whether Len() == 0. A live MappedFile can never actually
// observe this (zero-length mappings are not representable); it exists for
// symmetry with callers that treat Len()==0 generically.
func (mf *MappedFile) IsEmpty() bool {
	return mf.Len() == 0
}

// Path returns the stable path to the backing file.
func (mf *MappedFile) Path() string { return mf.path }

// Mode returns the access mode the file was opened or created with.
func (mf *MappedFile) Mode() Mode { return mf.mode }

// Close releases the mapping and the backing file handle. The mapping is
// unmapped before the file handle is closed, per spec. Close is idempotent.
func (mf *MappedFile) Close() error {
	mf.mu.Lock()
	defer mf.mu.Unlock()

	if mf.closed {
		return nil
	}

	mf.closed = true

	unmapErr := mf.mapping.unmap()
	closeErr := mf.file.Close()

	if unmapErr != nil {
		return ioErr("Close", mf.path, unmapErr)
	}

	if closeErr != nil {
		return ioErr("Close", mf.path, closeErr)
	}

	return nil
}

// checkUsable must be called under mf.mu (read or write lock held).
func (mf *MappedFile) checkUsable(op string) error {
	if mf.closed {
		return ioErr(op, mf.path, errClosed)
	}

	if mf.unusable {
		return ioErr(op, mf.path, errors.New("mmapfile: file is unusable after a failed resize"))
	}

	return nil
}
