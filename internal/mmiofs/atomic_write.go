package mmiofs

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// CopyFile performs a byte-for-byte copy of src to dst, written atomically
// through a temp-file-plus-rename (github.com/natefinch/atomic): dst either
// ends up with the full contents of src, or is left untouched.
//
// This never duplicates mapping state: it operates on plain file bytes, so
// it is safe to call while src is concurrently mapped elsewhere, as long as
// the caller has flushed any pending writes it cares about seeing copied.
func CopyFile(fsys FS, src, dst string) error {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return fmt.Errorf("mmiofs: read %q: %w", src, err)
	}

	if err := atomic.WriteFile(dst, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("mmiofs: atomic write %q: %w", dst, err)
	}

	return nil
}
