package mmapfile

// Chunks returns the successive n-byte fragments of the mapping's current
// length as a finite, single-pass slice of Segments; the last fragment may
// be shorter than n. Panics if n == 0. The returned slice is a snapshot: it
// does not track later Resize calls on mf.
func (mf *MappedFile) Chunks(n uint64) ([]*Segment, error) {
	if n == 0 {
		panic("mmapfile: Chunks requires n > 0")
	}

	mf.mu.RLock()
	total := mf.cachedLen
	mf.mu.RUnlock()

	var out []*Segment

	for off := uint64(0); off < total; off += n {
		length := n
		if off+length > total {
			length = total - off
		}

		seg, err := NewSegment(mf, off, length)
		if err != nil {
			return nil, err
		}

		out = append(out, seg)
	}

	return out, nil
}

// Pages is Chunks(pageSize()).
func (mf *MappedFile) Pages() ([]*Segment, error) {
	return mf.Chunks(pageSize())
}

// ChunksMut applies fn to each successive n-byte fragment in turn, each
// under its own exclusive acquisition. Fragments are processed in order; an
// error from fn stops iteration and is returned immediately.
func (mf *MappedFile) ChunksMut(n uint64, fn func(*MutableView) error) error {
	if n == 0 {
		panic("mmapfile: ChunksMut requires n > 0")
	}

	mf.mu.RLock()
	total := mf.cachedLen
	mf.mu.RUnlock()

	for off := uint64(0); off < total; off += n {
		length := n
		if off+length > total {
			length = total - off
		}

		view, err := mf.AsSliceMut(off, length)
		if err != nil {
			return err
		}

		err = fn(view)
		view.Release()

		if err != nil {
			return err
		}
	}

	return nil
}
