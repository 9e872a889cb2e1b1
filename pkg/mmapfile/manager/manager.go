// Package manager provides a thin convenience layer over [mmapfile] and
// [mmiofs]: create-load-write-copy-delete on a path, plus context-aware
// asynchronous counterparts, without exposing the caller to MappedFile
// lifetime management directly.
package manager

import (
	"fmt"
	"os"

	"github.com/calvinalkan/mmapfile/internal/mmiofs"
	"github.com/calvinalkan/mmapfile/pkg/mmapfile"
)

// CreateMmap creates or truncates the file at path to size bytes on fsys,
// then opens and maps it read-write.
func CreateMmap(fsys mmiofs.FS, path string, size uint64, opts ...mmapfile.FlushPolicy) (*mmapfile.MappedFile, error) {
	f, err := fsys.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("manager: CreateMmap: %w", err)
	}

	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("manager: CreateMmap: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("manager: CreateMmap: %w", err)
	}

	policy := mmapfile.ManualFlush()
	if len(opts) > 0 {
		policy = opts[0]
	}

	b := mmapfile.NewBuilder(path).Mode(mmapfile.ReadWrite).FlushPolicy(policy)

	return b.Build()
}

// LoadMmap opens the file at path on fsys and maps it in mode. fsys is used
// only to check the file exists before delegating to mmapfile, which opens
// the path itself (the OS mapping primitives need a live *os.File, which
// mmiofs.File does not guarantee to be backed by).
func LoadMmap(fsys mmiofs.FS, path string, mode mmapfile.Mode) (*mmapfile.MappedFile, error) {
	if _, err := fsys.Stat(path); err != nil {
		return nil, fmt.Errorf("manager: LoadMmap: %w", err)
	}

	switch mode {
	case mmapfile.ReadOnly:
		return mmapfile.OpenReadOnly(path)
	case mmapfile.ReadWrite:
		return mmapfile.OpenReadWrite(path)
	case mmapfile.CopyOnWrite:
		return mmapfile.OpenCopyOnWrite(path)
	default:
		return nil, fmt.Errorf("manager: LoadMmap: unknown mode %v", mode)
	}
}

// WriteMmap opens path read-write, writes data at offset, flushes, and
// closes. Convenience wrapper for one-shot writes where the caller does not
// want to manage a MappedFile's lifetime.
func WriteMmap(fsys mmiofs.FS, path string, offset uint64, data []byte) error {
	mf, err := LoadMmap(fsys, path, mmapfile.ReadWrite)
	if err != nil {
		return fmt.Errorf("manager: WriteMmap: %w", err)
	}
	defer mf.Close()

	if err := mf.UpdateRegion(offset, data); err != nil {
		return fmt.Errorf("manager: WriteMmap: %w", err)
	}

	return mf.Flush()
}

// UpdateRegion writes data into an already-open mf at offset.
func UpdateRegion(mf *mmapfile.MappedFile, offset uint64, data []byte) error {
	return mf.UpdateRegion(offset, data)
}

// Flush synchronizes mf's mapping to disk.
func Flush(mf *mmapfile.MappedFile) error {
	return mf.Flush()
}

// CopyMmap performs a byte-for-byte copy of src to dst on fsys. It never
// duplicates mapping state (no MappedFile is created for either side); the
// write to dst happens atomically via mmiofs.CopyFile.
func CopyMmap(fsys mmiofs.FS, src, dst string) error {
	if err := mmiofs.CopyFile(fsys, src, dst); err != nil {
		return fmt.Errorf("manager: CopyMmap: %w", err)
	}

	return nil
}

// DeleteMmap removes the file at path on fsys. The caller is responsible
// for Closing any MappedFile still open over path first; DeleteMmap does
// not track live mappings.
func DeleteMmap(fsys mmiofs.FS, path string) error {
	if err := fsys.Remove(path); err != nil {
		return fmt.Errorf("manager: DeleteMmap: %w", err)
	}

	return nil
}
