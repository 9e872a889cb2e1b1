package mmapfile

// Segment is a bounds-checked, re-validated immutable window onto a
// MappedFile. Unlike a slice returned by AsSlice, a Segment does not alias
// memory directly: every access re-derives the slice and re-checks the
// owner's current length, so a Segment survives a Resize of its owner
// (shrinking past it surfaces KindOutOfBounds on the next access rather than
// reading stale or out-of-range memory).
type Segment struct {
	owner  *MappedFile
	offset uint64
	length uint64
}

// NewSegment constructs a Segment over [offset, offset+length) of owner,
// validating bounds against the owner's length at construction time. Valid
// for owners in ReadOnly or CopyOnWrite mode.
func NewSegment(owner *MappedFile, offset, length uint64) (*Segment, error) {
	owner.mu.RLock()
	defer owner.mu.RUnlock()

	if err := owner.checkUsable("NewSegment"); err != nil {
		return nil, err
	}

	if owner.mode == ReadWrite {
		return nil, invalidMode("NewSegment", owner.path, owner.mode)
	}

	if err := ensureInBounds("NewSegment", owner.path, offset, length, owner.cachedLen); err != nil {
		return nil, err
	}

	return &Segment{owner: owner, offset: offset, length: length}, nil
}

// Len returns the segment's fixed length.
func (s *Segment) Len() uint64 { return s.length }

// Bytes returns an immutable view of the segment's current contents,
// re-validating bounds against the owner's current length.
func (s *Segment) Bytes() ([]byte, error) {
	s.owner.mu.RLock()
	defer s.owner.mu.RUnlock()

	if err := s.owner.checkUsable("Segment.Bytes"); err != nil {
		return nil, err
	}

	start, end, err := sliceRange("Segment.Bytes", s.owner.path, s.offset, s.length, s.owner.cachedLen)
	if err != nil {
		return nil, err
	}

	return s.owner.mapping.bytes()[start:end], nil
}

// SegmentMut is the mutable counterpart to Segment. Owner must be ReadWrite.
type SegmentMut struct {
	owner  *MappedFile
	offset uint64
	length uint64
}

// NewSegmentMut constructs a SegmentMut over [offset, offset+length) of
// owner, validating bounds at construction time. Requires ReadWrite mode.
func NewSegmentMut(owner *MappedFile, offset, length uint64) (*SegmentMut, error) {
	owner.mu.RLock()
	defer owner.mu.RUnlock()

	if err := owner.checkUsable("NewSegmentMut"); err != nil {
		return nil, err
	}

	if owner.mode != ReadWrite {
		return nil, invalidMode("NewSegmentMut", owner.path, owner.mode)
	}

	if err := ensureInBounds("NewSegmentMut", owner.path, offset, length, owner.cachedLen); err != nil {
		return nil, err
	}

	return &SegmentMut{owner: owner, offset: offset, length: length}, nil
}

// Len returns the segment's fixed length.
func (s *SegmentMut) Len() uint64 { return s.length }

// Write copies data into the segment at relOffset, re-validating bounds
// against both the segment's fixed window and the owner's current length.
func (s *SegmentMut) Write(relOffset uint64, data []byte) error {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	if err := s.owner.checkUsable("SegmentMut.Write"); err != nil {
		return err
	}

	n := uint64(len(data))
	if err := ensureInBounds("SegmentMut.Write", s.owner.path, relOffset, n, s.length); err != nil {
		return err
	}

	abs := s.offset + relOffset

	start, end, err := sliceRange("SegmentMut.Write", s.owner.path, abs, n, s.owner.cachedLen)
	if err != nil {
		return err
	}

	copy(s.owner.mapping.bytes()[start:end], data)

	s.owner.bytesSinceFlush += n
	s.owner.writesSinceFlush++

	if s.owner.policy.shouldFlush(s.owner.bytesSinceFlush, s.owner.writesSinceFlush) {
		return s.owner.flushLocked(0, s.owner.cachedLen)
	}

	return nil
}

// AsSliceMut returns a scoped exclusive guard over the segment's full range.
func (s *SegmentMut) AsSliceMut() (*MutableView, error) {
	return s.owner.AsSliceMut(s.offset, s.length)
}
