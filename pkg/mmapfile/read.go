package mmapfile

// AsSlice returns an immutable borrow of the mapping bytes [o, o+l). Valid
// only in ReadOnly or CopyOnWrite mode: in ReadWrite mode the call is
// rejected with KindInvalidMode in favor of ReadInto, because handing out a
// long-lived read borrow would block resize and mutation under the
// exclusion discipline.
//
// The returned slice aliases the mapping; it is only valid until the next
// Resize or Close.
func (mf *MappedFile) AsSlice(offset, length uint64) ([]byte, error) {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("AsSlice"); err != nil {
		return nil, err
	}

	if mf.mode == ReadWrite {
		return nil, invalidMode("AsSlice", mf.path, mf.mode)
	}

	start, end, err := sliceRange("AsSlice", mf.path, offset, length, mf.cachedLen)
	if err != nil {
		return nil, err
	}

	return mf.mapping.bytes()[start:end], nil
}

// ReadInto copies len(buf) bytes starting at offset into buf. Valid in any mode.
func (mf *MappedFile) ReadInto(offset uint64, buf []byte) error {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("ReadInto"); err != nil {
		return err
	}

	length := uint64(len(buf))

	start, end, err := sliceRange("ReadInto", mf.path, offset, length, mf.cachedLen)
	if err != nil {
		return err
	}

	copy(buf, mf.mapping.bytes()[start:end])

	return nil
}
