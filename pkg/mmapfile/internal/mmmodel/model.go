// Package mmmodel is a minimal in-memory reference model of a MappedFile's
// mutation bookkeeping, used only by tests to metamorphically cross-check
// UpdateRegion/Flush/Resize sequences against the real implementation. It
// deliberately does not model the mapped bytes themselves, only the
// observable accounting: cached length, the dirty byte range accumulated
// since the last flush, and the flush count.
package mmmodel

// State mirrors the subset of MappedFile bookkeeping relevant to flush and
// resize behavior.
type State struct {
	CachedLen  uint64
	DirtyStart uint64
	DirtyEnd   uint64 // exclusive; DirtyStart == DirtyEnd means nothing dirty
	FlushCount uint64
	WriteCount uint64
}

// New returns a State for a freshly created or opened mapping of the given length.
func New(length uint64) *State {
	return &State{CachedLen: length}
}

// Write records a write of length bytes at offset, widening the dirty range
// to cover it.
func (s *State) Write(offset, length uint64) {
	end := offset + length

	if s.DirtyStart == s.DirtyEnd {
		s.DirtyStart, s.DirtyEnd = offset, end
	} else {
		if offset < s.DirtyStart {
			s.DirtyStart = offset
		}

		if end > s.DirtyEnd {
			s.DirtyEnd = end
		}
	}

	s.WriteCount++
}

// Flush clears the dirty range and bumps the flush count.
func (s *State) Flush() {
	s.DirtyStart, s.DirtyEnd = 0, 0
	s.FlushCount++
}

// Resize updates the cached length and clears the dirty range, mirroring
// MappedFile.Resize's accumulator reset.
func (s *State) Resize(newLen uint64) {
	s.CachedLen = newLen
	s.DirtyStart, s.DirtyEnd = 0, 0
}

// IsDirty reports whether any bytes are pending flush.
func (s *State) IsDirty() bool {
	return s.DirtyStart != s.DirtyEnd
}
