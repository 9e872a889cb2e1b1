// Package mmapfile provides zero-copy, memory-mapped access to files.
//
// mmapfile is a building block for databases, caches, columnar stores, and
// other systems that need direct access to on-disk bytes without an
// intervening read/write copy. The central type is [MappedFile]: it owns an
// OS mapping, a backing file handle, a cached length used for all bounds
// checks, and a flush policy controlling when dirty bytes are synchronized
// to disk.
//
// # Basic usage
//
//	mf, err := mmapfile.CreateReadWrite("data.bin", 4096)
//	if err != nil {
//	    // handle error
//	}
//	defer mf.Close()
//
//	err = mf.UpdateRegion(100, []byte("hello"))
//	err = mf.Flush()
//
// # Concurrency
//
// mmapfile uses a multi-reader, single-writer model per [MappedFile]:
//   - Read operations ([MappedFile.ReadInto], [MappedFile.AsSlice]) are
//     safe for concurrent use.
//   - Mutating operations ([MappedFile.UpdateRegion], [MappedFile.AsSliceMut],
//     [MappedFile.Resize], [MappedFile.Flush]) are serialized against each
//     other and against readers.
//   - Atomic views ([MappedFile.AtomicU32], [MappedFile.AtomicU64]) bypass
//     this exclusion entirely; ordering is whatever the caller requests.
//
// # Error handling
//
// All failures are reported as *[Error] values carrying a [Kind] and enough
// context (offset, length, required alignment, wrapped OS error) to
// diagnose without additional logging. Classify errors with errors.Is
// against the Kind-only sentinels ([ErrOutOfBounds], [ErrInvalidMode], etc.)
// or errors.As against *Error for the full context.
package mmapfile
