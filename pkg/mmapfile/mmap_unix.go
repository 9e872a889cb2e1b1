//go:build unix

package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// osMapping is the unix mapping handle: a single byte slice backed by
// mmap(2). unix.Mmap/unix.Munmap already perform the unsafe-pointer-to-slice
// conversion, so no further handle bookkeeping is needed beyond the slice
// itself.
type osMapping struct {
	data []byte
}

func mapFile(f *os.File, length uint64, mode Mode, hugePages bool) (osMapping, error) {
	prot := unix.PROT_READ
	flags := unix.MAP_SHARED

	switch mode {
	case ReadOnly:
		// prot/flags as above.
	case ReadWrite:
		prot |= unix.PROT_WRITE
	case CopyOnWrite:
		prot |= unix.PROT_WRITE
		flags = unix.MAP_PRIVATE
	}

	if hugePages {
		flags |= mapHugeTLBFlag()
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(length), prot, flags)
	if err != nil && hugePages {
		// Huge pages rejected: fall back to a normal mapping (spec §4.5).
		data, err = unix.Mmap(int(f.Fd()), 0, int(length), prot, flags&^mapHugeTLBFlag())
	}

	if err != nil {
		return osMapping{}, err
	}

	return osMapping{data: data}, nil
}

func (m osMapping) bytes() []byte { return m.data }

func (m osMapping) unmap() error {
	if m.data == nil {
		return nil
	}

	return unix.Munmap(m.data)
}

func (m osMapping) syncRange(offset, length uint64) error {
	return unix.Msync(m.data[offset:offset+length], unix.MS_SYNC)
}

func (m osMapping) adviseRange(offset, length uint64, advice int) error {
	return unix.Madvise(m.data[offset:offset+length], advice)
}

func (m osMapping) lockRange(offset, length uint64) error {
	return unix.Mlock(m.data[offset : offset+length])
}

func (m osMapping) unlockRange(offset, length uint64) error {
	return unix.Munlock(m.data[offset : offset+length])
}

func (m osMapping) lockAll() error   { return unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE) }
func (m osMapping) unlockAll() error { return unix.Munlockall() }
