// Package mmiofs provides the filesystem abstraction the mmapfile manager
// layer is built on: create-or-truncate, open, length query, truncate,
// byte-for-byte copy, and removal, behind an interface a test can swap for a
// fault-injecting implementation.
//
// Paths use OS semantics (like the os package and path/filepath), not the
// slash-separated paths used by the standard library io/fs package.
package mmiofs

import (
	"io"
	"os"
)

// File represents an OS-backed open file descriptor.
//
// This interface is satisfied by [os.File]. The intent is os-like behavior:
// implementations must behave like [os.File], including that [File.Fd]
// returns a valid OS file descriptor usable with syscalls until the file is
// closed.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type File interface {
	io.ReadWriteCloser
	io.Seeker

	// Fd returns the file descriptor. See [os.File.Fd].
	Fd() uintptr

	// Stat returns the [os.FileInfo] for this file. See [os.File.Stat].
	Stat() (os.FileInfo, error)

	// Sync commits the file's contents to disk. See [os.File.Sync].
	Sync() error

	// Truncate changes the size of the file. See [os.File.Truncate].
	Truncate(size int64) error
}

// FS defines the filesystem operations the mmapfile manager layer needs.
//
// Implementations in this package: [Real] for production use, [Chaos] for
// fault-injection tests.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type FS interface {
	// Open opens a file for reading. See [os.Open].
	Open(path string) (File, error)

	// OpenFile opens a file with specified flags and permissions. See [os.OpenFile].
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// Stat returns file info. See [os.Stat]. Returns [os.ErrNotExist] if the
	// file doesn't exist.
	Stat(path string) (os.FileInfo, error)

	// Truncate changes the size of the named file. See [os.Truncate].
	Truncate(path string, size int64) error

	// Remove deletes a file. See [os.Remove].
	Remove(path string) error

	// Rename moves/renames a file. See [os.Rename]. Atomic on the same
	// filesystem.
	Rename(oldpath, newpath string) error

	// ReadFile reads an entire file into memory. See [os.ReadFile]. Used by
	// CopyMmap to read the source before an atomic write of the destination.
	ReadFile(path string) ([]byte, error)
}

// Compile-time interface check.
var _ File = (*os.File)(nil)
