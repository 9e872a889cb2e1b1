//go:build windows

package mmapfile

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// osMapping is the Windows mapping handle: a file-mapping object plus the
// view address it was mapped at, wrapped as a byte slice.
type osMapping struct {
	data        []byte
	fileMapping windows.Handle
	addr        uintptr
}

func mapFile(f *os.File, length uint64, mode Mode, _ bool) (osMapping, error) {
	// Windows has no MAP_HUGETLB equivalent wired up here; large-page
	// requests silently fall back to normal pages on this platform.
	var protect uint32

	var access uint32

	switch mode {
	case ReadOnly:
		protect = windows.PAGE_READONLY
		access = windows.FILE_MAP_READ
	case ReadWrite:
		protect = windows.PAGE_READWRITE
		access = windows.FILE_MAP_READ | windows.FILE_MAP_WRITE
	case CopyOnWrite:
		protect = windows.PAGE_WRITECOPY
		access = windows.FILE_MAP_COPY
	}

	sizeHigh := uint32(length >> 32)
	sizeLow := uint32(length & 0xFFFFFFFF)

	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, protect, sizeHigh, sizeLow, nil)
	if err != nil {
		return osMapping{}, err
	}

	addr, err := windows.MapViewOfFile(h, access, 0, 0, uintptr(length))
	if err != nil {
		_ = windows.CloseHandle(h)

		return osMapping{}, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)

	return osMapping{data: data, fileMapping: h, addr: addr}, nil
}

func (m osMapping) bytes() []byte { return m.data }

func (m osMapping) unmap() error {
	if m.addr == 0 {
		return nil
	}

	err := windows.UnmapViewOfFile(m.addr)
	if closeErr := windows.CloseHandle(m.fileMapping); err == nil {
		err = closeErr
	}

	return err
}

func (m osMapping) syncRange(offset, length uint64) error {
	return windows.FlushViewOfFile(m.addr+uintptr(offset), uintptr(length))
}

// adviseRange has no direct Windows equivalent for the advice kinds this
// library exposes; it is a documented no-op there (see advise_windows.go).
func (m osMapping) adviseRange(uint64, uint64, int) error { return nil }

func (m osMapping) lockRange(offset, length uint64) error {
	return windows.VirtualLock(m.addr+uintptr(offset), uintptr(length))
}

func (m osMapping) unlockRange(offset, length uint64) error {
	return windows.VirtualUnlock(m.addr+uintptr(offset), uintptr(length))
}

func (m osMapping) lockAll() error   { return m.lockRange(0, uint64(len(m.data))) }
func (m osMapping) unlockAll() error { return m.unlockRange(0, uint64(len(m.data))) }
